package maze

// DisjointSet tracks connected-component membership over n labeled
// elements. Parent pointers are chased naively; a self-pointing element
// is its set's representative. Indices out of [0, n) are caller errors
// and fail fast via the slice bounds check.
type DisjointSet struct {
	reps []int
}

// NewDisjointSet creates n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	reps := make([]int, n)
	for i := range reps {
		reps[i] = i
	}
	return &DisjointSet{reps: reps}
}

// Find returns the representative of a's set.
func (d *DisjointSet) Find(a int) int {
	for d.reps[a] != a {
		a = d.reps[a]
	}
	return a
}

// SameSet reports whether a and b share a representative.
func (d *DisjointSet) SameSet(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Union merges b's set into a's by pointing b's representative at a
// itself. Chains can grow longer than a rank-balanced structure, but
// connectivity is unchanged and the maze carve only does n-1 unions.
func (d *DisjointSet) Union(a, b int) {
	d.reps[d.Find(b)] = a
}
