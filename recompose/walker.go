package recompose

import (
	"fmt"
	"math/big"

	"github.com/strycore/dojo-20130708/alphabet"
	"github.com/strycore/dojo-20130708/matcher"
)

// node is one arena entry: a letter placed on the path from the root, the
// arena index of the node before it, and the position reached after it.
type node struct {
	letter matcher.Candidate
	parent int
	pos    int
}

const root = -1

// walker holds the state for one search over a validated stream.
type walker struct {
	stream matcher.Stream
	start  int    // first position
	n      int    // number of positions
	reach  []bool // reach[p]: some path from p ends exactly at n
	nodes  []node // arena; parents always precede children
}

func newWalker(c matcher.Stream, offset int) (*walker, error) {
	if len(c)%matcher.Width != 0 {
		return nil, fmt.Errorf("%w (len %d)", ErrStreamLength, len(c))
	}
	if offset < 0 || offset > len(c) || offset%matcher.Width != 0 {
		return nil, fmt.Errorf("%w (offset %d, len %d)", ErrOffset, offset, len(c))
	}

	n := c.Positions()
	for i, cand := range c {
		if !cand.Valid() {
			continue
		}
		pos, k := i/matcher.Width, i%matcher.Width
		if alphabet.Len(byte(cand)) != k+1 {
			return nil, fmt.Errorf("%w: %q in slot %d at position %d", ErrSlot, cand, k, pos)
		}
		if pos+k+1 > n {
			return nil, fmt.Errorf("%w: %q at position %d runs past position %d", ErrSlot, cand, pos, n)
		}
	}

	w := &walker{
		stream: c,
		start:  offset / matcher.Width,
		n:      n,
	}
	w.reach = make([]bool, n+1)
	w.reach[n] = true
	for p := n - 1; p >= w.start; p-- {
		for k := 0; k < matcher.Width; k++ {
			if w.stream[p*matcher.Width+k].Valid() && w.reach[p+k+1] {
				w.reach[p] = true
				break
			}
		}
	}
	return w, nil
}

// expand pushes the children of node idx (at position pos) onto the worklist.
// Slots are pushed longest first so the shortest code is explored first.
func (w *walker) expand(stack []int, idx, pos int, pruned bool) []int {
	for k := matcher.Width - 1; k >= 0; k-- {
		c := w.stream[pos*matcher.Width+k]
		if !c.Valid() {
			continue
		}
		next := pos + k + 1
		if pruned && !w.reach[next] {
			continue
		}
		w.nodes = append(w.nodes, node{letter: c, parent: idx, pos: next})
		stack = append(stack, len(w.nodes)-1)
	}
	return stack
}

// path rebuilds the letters from the root to node idx.
func (w *walker) path(idx int) Segmentation {
	depth := 0
	for i := idx; i != root; i = w.nodes[i].parent {
		depth++
	}
	out := make(Segmentation, depth)
	for i := idx; i != root; i = w.nodes[i].parent {
		depth--
		out[depth] = byte(w.nodes[i].letter)
	}
	return out
}

// complete collects every path that ends exactly at the end of the stream.
func (w *walker) complete(limit int) ([]Segmentation, error) {
	out := []Segmentation{}
	if !w.reach[w.start] {
		return out, nil
	}
	if w.start == w.n {
		return append(out, Segmentation{}), nil
	}

	seen := make(map[string]struct{})
	stack := w.expand(nil, root, w.start, true)
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := w.nodes[idx]
		if nd.pos < w.n {
			stack = w.expand(stack, idx, nd.pos, true)
			continue
		}

		seg := w.path(idx)
		if _, dup := seen[string(seg)]; dup {
			continue
		}
		seen[string(seg)] = struct{}{}
		out = append(out, seg)
		if limit > 0 && len(out) > limit {
			return nil, fmt.Errorf("%w: more than %d", ErrLimitExceeded, limit)
		}
	}
	return out, nil
}

// prefixes collects every path from the start, complete or not.
func (w *walker) prefixes(limit int) ([]Segmentation, error) {
	out := []Segmentation{}
	if w.start == w.n {
		return out, nil
	}

	seen := make(map[string]struct{})
	stack := w.expand(nil, root, w.start, false)
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		seg := w.path(idx)
		if _, dup := seen[string(seg)]; !dup {
			seen[string(seg)] = struct{}{}
			out = append(out, seg)
			if limit > 0 && len(out) > limit {
				return nil, fmt.Errorf("%w: more than %d", ErrLimitExceeded, limit)
			}
		}

		if nd := w.nodes[idx]; nd.pos < w.n {
			stack = w.expand(stack, idx, nd.pos, false)
		}
	}
	return out, nil
}

// count sums path counts backwards from the end of the stream. Only the
// counts of the next Width positions are live, so they are kept in a ring.
func (w *walker) count() *big.Int {
	var ring [matcher.Width + 1]*big.Int
	for i := range ring {
		ring[i] = new(big.Int)
	}
	ring[w.n%len(ring)].SetInt64(1)
	for p := w.n - 1; p >= w.start; p-- {
		sum := ring[p%len(ring)]
		sum.SetInt64(0)
		for k := 0; k < matcher.Width; k++ {
			if w.stream[p*matcher.Width+k].Valid() {
				sum.Add(sum, ring[(p+k+1)%len(ring)])
			}
		}
	}
	return new(big.Int).Set(ring[w.start%len(ring)])
}
