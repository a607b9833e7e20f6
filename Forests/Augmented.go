package Forests

import (
	"golang.org/x/exp/constraints"
)

// aNode is one element of the Augmented arena. Nodes are addressed by
// index into the arena slice, never by pointer: the graph is cyclic
// (circular lists, parent/child back-references) and nodes are never
// individually freed.
// The zero value is meaningless; Init writes every field.
type aNode[V constraints.Signed] struct {
	parent V // parent in the forest, parent>=own index; ==self at roots
	height V // height of the subtree rooted here, 0 at leaves
	next   V // circular list of all nodes of equal height, global
	prev   V
	left   V // circular list of siblings under the same parent
	right  V
	child  V // one arbitrary child, entry into the sibling list; -1 if none
}

// Augmented is the forward-pointer forest extended with child/sibling
// links and per-node subtree heights. Beyond the plain successor-delete
// operations it maintains, for every height h, a circular list of all
// nodes of height h with one representative in roots[h], so an element of
// maximum depth is always available in O(1) amortized time via
// DeepestNode. Present elements are exactly the tree roots
// (parent==self), and every parent index is >= its child's, so following
// parents from any element reaches its successor.
type Augmented[V constraints.Signed] struct {
	nodes []aNode[V]
	roots []V // roots[h] = some node of height h, -1 if the class is empty
	max   V   // current maximum height over all trees
	n     V   // n of the last Init, bounds Corrupt's scan
}

// NewAugmented allocates arenas for sets up to {0,...,maxN+1}.
func NewAugmented[V constraints.Signed](maxN V) *Augmented[V] {
	return &Augmented[V]{nodes: make([]aNode[V], maxN+2), roots: make([]V, maxN+2)}
}

// Init [Go_Succ.Set.Init]. Resets to n+2 singleton trees: every node is
// its own root at height 0, and the height-0 class list threads all of
// them in index order.
// Time: O(n)
func (u *Augmented[V]) Init(n V) {
	for i := range u.nodes[:n+2] {
		v := V(i)
		u.nodes[i] = aNode[V]{parent: v, left: v, right: v, child: -1, next: v + 1, prev: v - 1}
		u.roots[i] = -1
	}
	u.nodes[0].prev = n + 1
	u.nodes[n+1].next = 0
	u.max = 0
	u.roots[0] = 0
	u.n = n
}

// height recomputes the height of i from its current children, which must
// already have correct heights.
func (u *Augmented[V]) height(i V) V {
	child := u.nodes[i].child
	if child == -1 {
		return 0
	}
	c, ch := child, u.nodes[child].height
	for u.nodes[c].right != child {
		c = u.nodes[c].right
		if u.nodes[c].height > ch {
			ch = u.nodes[c].height
		}
	}
	return 1 + ch
}

// fixHeight recomputes the height of i and moves i from its old
// height-class list into the one for the new height, keeping roots[h]
// valid for both classes.
func (u *Augmented[V]) fixHeight(i V) {
	h := u.nodes[i].height
	next, prev := u.nodes[i].next, u.nodes[i].prev
	if u.roots[h] == i {
		if next != i {
			u.roots[h] = next
		} else {
			u.roots[h] = -1
		}
	}
	if next != i {
		u.nodes[next].prev = prev
		u.nodes[prev].next = next
		u.nodes[i].next = i
		u.nodes[i].prev = i
	}
	h = u.height(i)
	u.nodes[i].height = h
	if u.roots[h] != -1 {
		next = u.roots[h]
		prev = u.nodes[next].prev
		u.nodes[i].next = next
		u.nodes[i].prev = prev
		u.nodes[next].prev = i
		u.nodes[prev].next = i
	}
	u.roots[h] = i
}

// link makes root i a child of j, splicing i into j's sibling list.
// i must currently be a tree root.
func (u *Augmented[V]) link(i, j V) {
	right := u.nodes[j].child
	u.nodes[j].child = i
	u.nodes[i].parent = j
	if right >= 0 {
		left := u.nodes[right].left
		u.nodes[i].right = right
		u.nodes[i].left = left
		u.nodes[right].left = i
		u.nodes[left].right = i
	}
}

// unlink removes i from its parent's child list and makes it a
// singleton root again (height untouched; callers fix it).
func (u *Augmented[V]) unlink(i V) {
	j := u.nodes[i].parent
	left, right := u.nodes[i].left, u.nodes[i].right
	if u.nodes[j].child == i {
		if right != i {
			u.nodes[j].child = right
		} else {
			u.nodes[j].child = -1
		}
	}
	u.nodes[left].right = right
	u.nodes[right].left = left
	u.nodes[i].parent = i
	u.nodes[i].left = i
	u.nodes[i].right = i
}

// Delete [Go_Succ.Set.Delete]. If i is already hanging under some parent
// it is first unlinked, with heights fixed up that old ancestor path;
// then i becomes a child of i+1 and heights are fixed up the new path.
// Repeating a delete is therefore safe here, it just re-hangs i under
// i+1.
// Time: O(depth of i's old and new ancestor paths)
func (u *Augmented[V]) Delete(i V) {
	j := u.nodes[i].parent
	if j > i {
		u.unlink(i)
		u.fixHeight(j)
		for u.nodes[j].parent != j {
			j = u.nodes[j].parent
			u.fixHeight(j)
		}
	}
	j = i + 1
	u.link(i, j)
	u.fixHeight(j)
	for u.nodes[j].parent != j {
		j = u.nodes[j].parent
		u.fixHeight(j)
	}
	if u.nodes[j].height > u.max {
		u.max = u.nodes[j].height
	}
}

// Successor [Go_Succ.Set.Successor]. Two-pass path compression: find the
// tree root, then re-hang every node on the walked path directly beneath
// it, fixing the height bookkeeping of each moved node and finally of the
// root. max is lowered lazily afterwards by scanning down over emptied
// height classes.
// Time: amortized O(log n)
func (u *Augmented[V]) Successor(i V) V {
	root := i
	for root < u.nodes[root].parent {
		root = u.nodes[root].parent
	}
	for i < root {
		parent := u.nodes[i].parent
		u.unlink(i)
		u.link(i, root)
		u.fixHeight(i)
		i = parent
	}
	u.fixHeight(root)
	for u.roots[u.max] == -1 {
		u.max--
	}
	return root
}

// deepestLeaf descends from i picking at each level a child one height
// lower, ending at a height-0 node, which is then a node of maximal depth
// in i's tree.
func (u *Augmented[V]) deepestLeaf(i V) V {
	for h := u.nodes[i].height; h > 0; {
		h--
		i = u.nodes[i].child
		for u.nodes[i].height != h {
			i = u.nodes[i].right
		}
	}
	return i
}

// DeepestNode [Go_Succ.Deepest.DeepestNode].
// Time: O(max height), amortized O(1) against the deletes that built the
// height
func (u *Augmented[V]) DeepestNode() V {
	return u.deepestLeaf(u.roots[u.max])
}

// Corrupt exhaustively re-derives every structural invariant: parent
// ordering, heights against children, mutual consistency of the sibling
// and height-class lists, roots[h] membership and the global node count.
// It is a test-time tool, never called on the hot path.
// Time: O(n)
func (u *Augmented[V]) Corrupt() bool {
	n := u.n
	uncounted := V(0)
	for i := V(0); i < n+2; i++ {
		nd := &u.nodes[i]
		if nd.parent < i || nd.parent >= n+2 {
			return true
		}
		if nd.parent != i {
			uncounted++
		}
		if nd.height < 0 {
			return true
		}
		if nd.height == 0 {
			if nd.child != -1 {
				return true
			}
		} else {
			if nd.child < 0 || nd.child >= i {
				return true
			}
			c, ch := nd.child, u.nodes[nd.child].height
			if u.nodes[c].parent != i {
				return true
			}
			uncounted--
			for u.nodes[c].right != nd.child {
				c = u.nodes[c].right
				if u.nodes[c].parent != i {
					return true
				}
				uncounted--
				if u.nodes[c].height > ch {
					ch = u.nodes[c].height
				}
			}
			if nd.height != ch+1 {
				return true
			}
		}
		if nd.next < 0 || nd.next >= n+2 || nd.prev < 0 || nd.prev >= n+2 {
			return true
		}
		if u.nodes[nd.next].prev != i || u.nodes[nd.prev].next != i {
			return true
		}
		if u.nodes[nd.next].height != nd.height || u.nodes[nd.prev].height != nd.height {
			return true
		}
		if nd.left < 0 || nd.left >= n+2 || nd.right < 0 || nd.right >= n+2 {
			return true
		}
		if u.nodes[nd.right].left != i || u.nodes[nd.left].right != i {
			return true
		}
		if u.nodes[nd.right].parent != nd.parent || u.nodes[nd.left].parent != nd.parent {
			return true
		}
	}
	found := V(0)
	for h := V(0); h <= u.max; h++ {
		// every height class up to max is inhabited: a root of height H
		// always has a child of height H-1
		root := u.roots[h]
		if root < 0 || root >= n+2 || u.nodes[root].height != h {
			return true
		}
		found++
		for r := u.nodes[root].next; r != root; r = u.nodes[r].next {
			if u.nodes[r].height != h {
				return true
			}
			found++
		}
	}
	return uncounted != 0 || found != n+2
}
