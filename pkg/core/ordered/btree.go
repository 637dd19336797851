package ordered

import (
	"iter"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

type item[K constraints.Ordered, V any] struct {
	Key K
	Val V
}

func itemLess[K constraints.Ordered, V any](a, b item[K, V]) bool {
	return a.Key < b.Key
}

// BTree is the balanced alternative to BST, backed by google/btree.
type BTree[K constraints.Ordered, V any] struct {
	tree *btree.BTreeG[item[K, V]]
}

func NewBTree[K constraints.Ordered, V any](degree int) *BTree[K, V] {
	return &BTree[K, V]{
		tree: btree.NewG(degree, itemLess[K, V]),
	}
}

func (bt *BTree[K, V]) Put(key K, val V) {
	bt.tree.ReplaceOrInsert(item[K, V]{Key: key, Val: val})
}

func (bt *BTree[K, V]) Get(key K) (V, bool) {
	res, ok := bt.tree.Get(item[K, V]{Key: key})
	return res.Val, ok
}

func (bt *BTree[K, V]) Delete(key K) {
	bt.tree.Delete(item[K, V]{Key: key})
}

func (bt *BTree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		bt.tree.Ascend(func(it item[K, V]) bool {
			return yield(it.Key, it.Val)
		})
	}
}

func (bt *BTree[K, V]) Len() int {
	return bt.tree.Len()
}
