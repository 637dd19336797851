package ordered

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Node is one binary search tree node. A node owns its children; there is no
// parent link. Every key under Left is smaller than Key and every key under
// Right is larger.
type Node[K constraints.Ordered, V any] struct {
	Key   K
	Value V
	Left  *Node[K, V]
	Right *Node[K, V]
}

// Insert adds key to the tree rooted at root and returns the root to
// reattach, plus whether a new node was created. An existing key has its
// value overwritten in place.
func Insert[K constraints.Ordered, V any](root *Node[K, V], key K, val V) (*Node[K, V], bool) {
	link := &root
	for n := *link; n != nil; n = *link {
		switch {
		case key < n.Key:
			link = &n.Left
		case key > n.Key:
			link = &n.Right
		default:
			n.Value = val
			return root, false
		}
	}
	*link = &Node[K, V]{Key: key, Value: val}
	return root, true
}

// Search returns the node holding key, or nil.
func Search[K constraints.Ordered, V any](root *Node[K, V], key K) *Node[K, V] {
	n := root
	for n != nil && n.Key != key {
		if key < n.Key {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n
}

// Delete removes key from the tree rooted at root and returns the root to
// reattach, plus whether a node was removed. Deleting a missing key returns
// the tree unchanged.
//
// A node with two children is not unlinked: it takes over the key and value
// of its in-order successor, which is then deleted from the right subtree.
func Delete[K constraints.Ordered, V any](root *Node[K, V], key K) (*Node[K, V], bool) {
	link := &root
	for n := *link; n != nil; n = *link {
		switch {
		case key < n.Key:
			link = &n.Left
		case key > n.Key:
			link = &n.Right
		default:
			switch {
			case n.Left == nil:
				*link = n.Right
			case n.Right == nil:
				*link = n.Left
			default:
				succ := minNode(n.Right)
				n.Key, n.Value = succ.Key, succ.Value
				// succ has no left child, so this is a leaf or single-child removal.
				n.Right, _ = Delete(n.Right, succ.Key)
			}
			return root, true
		}
	}
	return root, false
}

// minNode must not be called with nil.
func minNode[K constraints.Ordered, V any](n *Node[K, V]) *Node[K, V] {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// InOrder yields the pairs under root in ascending key order. Each call
// returns a fresh sequence; the tree must not be mutated while it is ranged.
func InOrder[K constraints.Ordered, V any](root *Node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*Node[K, V]
		n := root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.Left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.Key, n.Value) {
				return
			}
			n = n.Right
		}
	}
}

// Height counts the nodes on the longest root-to-leaf path. An empty tree
// has height 0.
func Height[K constraints.Ordered, V any](root *Node[K, V]) int {
	if root == nil {
		return 0
	}
	height := 0
	level := []*Node[K, V]{root}
	for len(level) > 0 {
		height++
		var next []*Node[K, V]
		for _, n := range level {
			if n.Left != nil {
				next = append(next, n.Left)
			}
			if n.Right != nil {
				next = append(next, n.Right)
			}
		}
		level = next
	}
	return height
}

// BST is an unbalanced binary search tree. Sorted insertion degrades it to a
// linked list; use BTree when logarithmic height matters.
type BST[K constraints.Ordered, V any] struct {
	root *Node[K, V]
	size int
}

func NewBST[K constraints.Ordered, V any]() *BST[K, V] {
	return &BST[K, V]{}
}

func (t *BST[K, V]) Put(key K, val V) {
	var created bool
	t.root, created = Insert(t.root, key, val)
	if created {
		t.size++
	}
}

func (t *BST[K, V]) Get(key K) (V, bool) {
	if n := Search(t.root, key); n != nil {
		return n.Value, true
	}
	var zero V
	return zero, false
}

func (t *BST[K, V]) Delete(key K) {
	var removed bool
	t.root, removed = Delete(t.root, key)
	if removed {
		t.size--
	}
}

func (t *BST[K, V]) All() iter.Seq2[K, V] {
	return InOrder(t.root)
}

func (t *BST[K, V]) Len() int {
	return t.size
}

// Root exposes the tree shape, mainly for tests and diagnostics.
func (t *BST[K, V]) Root() *Node[K, V] {
	return t.root
}

func (t *BST[K, V]) Height() int {
	return Height(t.root)
}
