// This file is part of the reltrie library. See adapter.go for license.

package reladapter

import (
	"bytes"
	"hash/maphash"

	"github.com/holiman/uint256"
)

// Built-in DimComparer values for dimension element types that show up
// often enough in practice to warrant a ready-made comparer: variable-length
// byte strings (not directly comparable, so the zero-value fallback in
// resolveComparer can't handle them) and 256-bit unsigned integers, the
// common width for ledger-style amounts and identifiers.

// BytesComparer compares and hashes []byte dimensions by content.
func BytesComparer() DimComparer[[]byte] {
	return DimComparer[[]byte]{
		Equal: bytes.Equal,
		Hash: func(b []byte) uint64 {
			var h maphash.Hash
			h.SetSeed(defaultSeed)
			h.Write(b)
			return h.Sum64()
		},
	}
}

// StringComparer compares and hashes string dimensions. Equivalent to the
// zero-value fallback but spelled out for discoverability alongside
// BytesComparer and Uint256Comparer.
func StringComparer() DimComparer[string] {
	return DimComparer[string]{
		Equal: func(a, b string) bool { return a == b },
		Hash: func(s string) uint64 {
			var h maphash.Hash
			h.SetSeed(defaultSeed)
			h.WriteString(s)
			return h.Sum64()
		},
	}
}

// Uint256Comparer compares and hashes uint256.Int dimensions, for relations
// keyed on ledger-style amounts or addresses-as-integers.
func Uint256Comparer() DimComparer[uint256.Int] {
	return DimComparer[uint256.Int]{
		Equal: func(a, b uint256.Int) bool { return a.Eq(&b) },
		Hash: func(v uint256.Int) uint64 {
			return v[0] ^ v[1] ^ v[2] ^ v[3]
		},
	}
}
