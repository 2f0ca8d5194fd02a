package helix

// rawSegment is a discovered run of pair indices before orientation fixes.
type rawSegment struct {
	order    []int
	hasBreak bool
}

// discoverSegments walks the neighbor graph from each endpoint, always
// extending from the most recently added pair to whichever of its two
// recorded neighbors it did not just come from. Pairs no endpoint can reach
// land together in one final catch-all segment instead of being dropped;
// tangled structures produce that shape legitimately.
func (st *orgState) discoverSegments() []rawSegment {
	n := len(st.pairs)
	visited := make([]bool, n)
	var segments []rawSegment

	for e := 0; e < n; e++ {
		if !st.ctx[e].endpoint || visited[e] {
			continue
		}
		order := []int{e}
		visited[e] = true

		prev := -1
		cur := e
		for {
			next := st.nextPair(cur, prev, visited)
			if next < 0 {
				break
			}
			order = append(order, next)
			visited[next] = true
			prev, cur = cur, next
			if st.ctx[cur].endpoint {
				break
			}
		}
		segments = append(segments, rawSegment{order: order})
	}

	var leftover []int
	for k := 0; k < n; k++ {
		if !visited[k] {
			leftover = append(leftover, k)
		}
	}
	if len(leftover) > 0 {
		segments = append(segments, rawSegment{order: leftover, hasBreak: true})
	}
	return segments
}

// nextPair picks the unvisited recorded neighbor of cur other than prev.
// Neighbor1 is preferred; the traversal direction alternates naturally
// because the pair just left is always one of the two.
func (st *orgState) nextPair(cur, prev int, visited []bool) int {
	c := &st.ctx[cur]
	for _, cand := range [2]int{c.n1, c.n2} {
		if cand >= 0 && cand != prev && !visited[cand] {
			return cand
		}
	}
	return -1
}
