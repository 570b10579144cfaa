// This file is part of the reltrie library. See doc.go for license.

package reltrie

// token is a mutability owner identity (spec §3 "mutability_token", §9
// "Ownership / token discipline"). A node's owner is either nil — frozen,
// freely shared — or a token uniquely allocated per bulk batch (or per
// single Add/Remove call made outside a batch). Equality is pointer
// identity; the zero value is never a valid owner, so a nil owner
// unambiguously means frozen.
type token struct{ _ byte } // non-zero size: Go may give zero-size allocations one shared address

func newToken() *token { return new(token) }
