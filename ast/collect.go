package ast

import "sort"

// CollectLiterals walks the tree rooted at n and returns the ascending,
// duplicate-free set of bytes that appear as Literal nodes. This is the
// alphabet a MatchMask table needs in order to accelerate every Literal
// in the pattern — CharClass and AnyChar never consult the table, so they
// contribute nothing here.
func CollectLiterals(n Node) []byte {
	seen := make(map[byte]bool)
	collectLiterals(n, seen)

	out := make([]byte, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func collectLiterals(n Node, seen map[byte]bool) {
	switch v := n.(type) {
	case Literal:
		seen[v.Char] = true
	case Concat:
		collectLiterals(v.Left, seen)
		collectLiterals(v.Right, seen)
	case Alternation:
		collectLiterals(v.Left, seen)
		collectLiterals(v.Right, seen)
	case Question:
		collectLiterals(v.Inner, seen)
	case KleeneStar:
		collectLiterals(v.Inner, seen)
	case Plus:
		collectLiterals(v.Inner, seen)
	}
}
