// This file is part of the reltrie library. See doc.go for license.

package reltrie

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/davecgh/go-spew/spew"
)

// nodeOverheadBytes is a rough per-node estimate (bucket array header plus
// pointer/bool bookkeeping) used only for DebugString's footprint line; it
// is not meant to be exact, only to give a reader a sense of scale.
const nodeOverheadBytes = 8*B + 32

// DebugString renders bucket occupancy per visited node, depth-first, along
// with the inline tuple (via go-spew, for a readable dump of arbitrary
// tuple types) and an approximate resident footprint (via c2h5oh/datasize,
// formatted the way the teacher formats storage sizes). Intended for tests
// and interactive troubleshooting, not for production logging.
func (r *Relation[T]) DebugString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "relation(count=%d)\n", r.root.count)
	debugNode(&sb, r.root, 0)
	size := datasize.ByteSize(nodeCount(r.root) * nodeOverheadBytes)
	fmt.Fprintf(&sb, "approx footprint: %s\n", size.HumanReadable())
	return sb.String()
}

func debugNode[T any](sb *strings.Builder, n *node[T], depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%snode dim=%d level=%d count=%d\n", indent, n.dim, n.level, n.count)
	for idx := 0; idx < B; idx++ {
		b := &n.buckets[idx]
		if !b.itemValid && b.child == nil {
			continue
		}
		fmt.Fprintf(sb, "%s  bucket[%d]:", indent, idx)
		if b.itemValid {
			fmt.Fprintf(sb, " item=%s", strings.TrimSpace(spew.Sdump(b.item)))
		}
		if b.child != nil {
			fmt.Fprintf(sb, " child.count=%d", b.child.count)
		}
		fmt.Fprintln(sb)
		if b.child != nil {
			debugNode(sb, b.child, depth+2)
		}
	}
}

func nodeCount[T any](n *node[T]) int {
	total := 1
	for idx := range n.buckets {
		if n.buckets[idx].child != nil {
			total += nodeCount(n.buckets[idx].child)
		}
	}
	return total
}
