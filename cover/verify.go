package cover

import "github.com/katalvlaran/glyphcover/core"

// IsCover reports whether ids touches every edge of g (self-loops included).
// Unknown IDs are ignored.
func IsCover(g *core.Graph, ids []string) bool {
	if g == nil {
		return false
	}
	in := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		in[id] = struct{}{}
	}
	for _, e := range g.Edges() {
		_, a := in[e.From]
		_, b := in[e.To]
		if !a && !b {
			return false
		}
	}

	return true
}

// Complement returns the members of order that are not in the cover,
// keeping their relative order.
func Complement(order []string, res Result) []string {
	out := make([]string, 0, len(order))
	for _, id := range order {
		if !res.Contains(id) {
			out = append(out, id)
		}
	}

	return out
}
