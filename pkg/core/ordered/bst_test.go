package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBST(keys ...int) *BST[int, string] {
	t := NewBST[int, string]()
	for _, k := range keys {
		t.Put(k, "v")
	}
	return t
}

func TestInsertReturnsNewRootOnlyWhenEmpty(t *testing.T) {
	root, created := Insert[int, string](nil, 50, "fifty")
	require.NotNil(t, root)
	assert.True(t, created)
	assert.Equal(t, 50, root.Key)

	same, created := Insert(root, 30, "thirty")
	assert.Same(t, root, same)
	assert.True(t, created)
	require.NotNil(t, root.Left)
	assert.Equal(t, 30, root.Left.Key)

	same, created = Insert(root, 70, "seventy")
	assert.Same(t, root, same)
	assert.True(t, created)
	require.NotNil(t, root.Right)
	assert.Equal(t, 70, root.Right.Key)
}

func TestInsertOverwritesInPlace(t *testing.T) {
	tree := NewBST[int, string]()
	tree.Put(10, "ten")
	node := Search(tree.Root(), 10)
	require.NotNil(t, node)

	tree.Put(10, "TEN")

	assert.Same(t, node, Search(tree.Root(), 10))
	assert.Equal(t, "TEN", node.Value)
	assert.Equal(t, 1, tree.Len())
	assert.Nil(t, node.Left)
	assert.Nil(t, node.Right)
}

func TestSearch(t *testing.T) {
	tree := buildBST(50, 30, 70, 20, 40, 60, 80)

	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		n := Search(tree.Root(), k)
		require.NotNil(t, n, "key %d", k)
		assert.Equal(t, k, n.Key)
	}
	assert.Nil(t, Search(tree.Root(), 55))
	assert.Nil(t, Search[int, string](nil, 1))
}

func TestDeleteTwoChildrenPromotesSuccessor(t *testing.T) {
	tree := buildBST(50, 30, 70, 20, 40, 60, 80)
	root := tree.Root()

	tree.Delete(50)

	assert.Same(t, root, tree.Root(), "node identity must survive successor promotion")
	assert.Equal(t, 60, tree.Root().Key)
	assert.Nil(t, tree.Root().Right.Left, "successor must be unlinked from the right subtree")
	assert.Equal(t, []int{20, 30, 40, 60, 70, 80}, keysOf(tree))
	assert.Nil(t, Search(tree.Root(), 50))
	assert.Equal(t, 6, tree.Len())
}

func TestDeleteTwoChildrenSuccessorWithRightChild(t *testing.T) {
	// 65 is the successor of 50 and has a right child 67.
	tree := buildBST(50, 30, 70, 65, 80, 67)

	tree.Delete(50)

	assert.Equal(t, 65, tree.Root().Key)
	require.NotNil(t, tree.Root().Right.Left)
	assert.Equal(t, 67, tree.Root().Right.Left.Key)
	assert.Equal(t, []int{30, 65, 67, 70, 80}, keysOf(tree))
}

func TestDeleteLeaf(t *testing.T) {
	tree := buildBST(50, 30, 70, 20)

	tree.Delete(20)

	assert.Nil(t, tree.Root().Left.Left)
	assert.Equal(t, []int{30, 50, 70}, keysOf(tree))
	assert.Equal(t, 3, tree.Len())
}

func TestDeleteSingleChildPromotesChild(t *testing.T) {
	tree := buildBST(50, 30, 70, 20)
	child := Search(tree.Root(), 20)

	tree.Delete(30)

	assert.Same(t, child, tree.Root().Left)
	assert.Equal(t, []int{20, 50, 70}, keysOf(tree))

	// Right-only child at the root.
	tree = buildBST(10, 20, 30)
	next := tree.Root().Right
	tree.Delete(10)
	assert.Same(t, next, tree.Root())
	assert.Equal(t, []int{20, 30}, keysOf(tree))
}

func TestDeleteRootLeafEmptiesTree(t *testing.T) {
	tree := buildBST(1)
	tree.Delete(1)
	assert.Nil(t, tree.Root())
	assert.Zero(t, tree.Len())
	assert.Empty(t, keysOf(tree))
}

func TestDeleteMissingReturnsSameTree(t *testing.T) {
	tree := buildBST(50, 30, 70)
	root := tree.Root()

	newRoot, removed := Delete(root, 99)

	assert.False(t, removed)
	assert.Same(t, root, newRoot)
	assert.Equal(t, 3, tree.Len())

	empty, removed := Delete[int, string](nil, 1)
	assert.Nil(t, empty)
	assert.False(t, removed)
}

func TestMinNode(t *testing.T) {
	tree := buildBST(50, 30, 70, 20, 40, 60, 80)
	assert.Equal(t, 20, minNode(tree.Root()).Key)
	assert.Equal(t, 60, minNode(tree.Root().Right).Key)
	assert.Equal(t, 80, minNode(tree.Root().Right.Right).Key)
}

func TestSortedInsertDegradesToList(t *testing.T) {
	tree := NewBST[int, int]()
	const n = 5000
	for i := 0; i < n; i++ {
		tree.Put(i, i)
	}
	assert.Equal(t, n, tree.Height())
	assert.Nil(t, tree.Root().Left)

	last := Search(tree.Root(), n-1)
	require.NotNil(t, last)
	assert.Equal(t, n-1, last.Value)
	for i := 0; i < n; i += 2 {
		tree.Delete(i)
	}
	assert.Equal(t, n/2, tree.Len())
}

func TestHeight(t *testing.T) {
	assert.Zero(t, Height[int, string](nil))
	assert.Equal(t, 1, buildBST(1).Height())
	assert.Equal(t, 3, buildBST(50, 30, 70, 20, 40, 60, 80).Height())
	assert.Equal(t, 4, buildBST(50, 30, 70, 20, 40, 60, 80, 10).Height())
}

func TestInOrderIsReinvokable(t *testing.T) {
	tree := buildBST(3, 1, 2)
	seq := tree.All()

	var first, second []int
	for k := range seq {
		first = append(first, k)
	}
	for k := range seq {
		second = append(second, k)
	}
	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, first, second)
}
