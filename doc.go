// Package glyphcover picks the largest practical set of letters that can be
// shipped together when some pre-rendered letter pairs are missing.
//
// The pipeline, in order:
//
//	letters/  - ordered letter set loaded from a JSON object (key order kept)
//	pairs/    - concurrent probing of "{a}-{b}.dat" files; a missing file is an edge
//	core/     - thread-safe undirected vertex-weighted graph
//	bfs/      - breadth-first traversal and connected components
//	cover/    - vertex cover solvers: local-ratio, greedy, matching, exact, auto
//	internal/ - config (YAML + env), zap logging, and the app pipeline
//	cmd/      - the glyphcover CLI
//
// The letters outside the cover are the safe subset. They are printed in the
// order of the letters file.
//
// Quick ASCII example:
//
//	A───B───C      missing pairs A-B and B-C
//
//	cover {B}  →  safe subset A, C
//
//	go install github.com/katalvlaran/glyphcover/cmd/glyphcover@latest
package glyphcover
