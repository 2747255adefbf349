package ckk

// groupRef is a handle to an index list stored in an arena.
// noGroup denotes the empty list.
type groupRef int32

const noGroup groupRef = -1

// cell is either a single item (item >= 0) or the concatenation left ++ right.
type cell struct {
	item        int32
	left, right groupRef
}

// arena stores bin assignments as an append-only forest of immutable
// concatenation cells. Merging two groups costs O(1) and shares both
// operands, so sibling branches of the search tree never copy index lists.
type arena struct {
	cells []cell
}

func newArena(capacity int) *arena {
	return &arena{cells: make([]cell, 0, capacity)}
}

// single stores the one-item list {item}.
func (a *arena) single(item int) groupRef {
	a.cells = append(a.cells, cell{item: int32(item), left: noGroup, right: noGroup})

	return groupRef(len(a.cells) - 1)
}

// concat returns the list x ++ y.
func (a *arena) concat(x, y groupRef) groupRef {
	if x == noGroup {
		return y
	}
	if y == noGroup {
		return x
	}
	a.cells = append(a.cells, cell{item: -1, left: x, right: y})

	return groupRef(len(a.cells) - 1)
}

// collect appends the items of r to dst in list order.
func (a *arena) collect(r groupRef, dst []int) []int {
	if r == noGroup {
		return dst
	}
	stack := []groupRef{r}
	var c cell
	for len(stack) > 0 {
		r = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c = a.cells[r]
		if c.item >= 0 {
			dst = append(dst, int(c.item))
			continue
		}
		// right first so left is popped first
		stack = append(stack, c.right, c.left)
	}

	return dst
}
