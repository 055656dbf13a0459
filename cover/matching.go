package cover

// maximalMatching greedily matches edges in insertion order and returns both
// endpoints of every matched edge. Any cover needs one endpoint per matched
// edge, so |C| ≤ 2·OPT for unit weights.
//
// Complexity: O(V + E).
func maximalMatching(in *instance) []bool {
	matched := make([]bool, in.size())
	for _, e := range in.edges {
		if matched[e[0]] || matched[e[1]] {
			continue
		}
		matched[e[0]], matched[e[1]] = true, true
	}

	return matched
}
