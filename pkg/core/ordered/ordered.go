// Package ordered provides the sorted side of the hybrid index.
//
// BST is the default: a plain binary search tree with in-order successor
// promotion on delete and no rebalancing. BTree wraps github.com/google/btree
// for callers that need logarithmic height regardless of insertion order.
// Both keep keys unique and traverse in strictly ascending order.
//
// Floating point NaN keys are not supported: they compare unequal to
// everything, which breaks the ordering.
package ordered

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

const (
	KindBST   = "bst"
	KindBTree = "btree"
)

// Index is an ordered key -> value map.
type Index[K constraints.Ordered, V any] interface {
	// Put inserts key or overwrites its value.
	Put(key K, val V)
	Get(key K) (V, bool)
	// Delete is a no-op when key is absent.
	Delete(key K)
	// All yields every pair in ascending key order.
	All() iter.Seq2[K, V]
	Len() int
}

var (
	_ Index[int, string] = (*BST[int, string])(nil)
	_ Index[int, string] = (*BTree[int, string])(nil)
)

// New builds the index named by kind. degree is only used by KindBTree.
func New[K constraints.Ordered, V any](kind string, degree int) (Index[K, V], error) {
	switch kind {
	case KindBST, "":
		return NewBST[K, V](), nil
	case KindBTree:
		if degree < 2 {
			return nil, fmt.Errorf("ordered: btree degree must be >= 2, got %d", degree)
		}
		return NewBTree[K, V](degree), nil
	default:
		return nil, fmt.Errorf("ordered: unknown index kind %q", kind)
	}
}
