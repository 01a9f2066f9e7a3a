package domain

import (
	m "github.com/mouse-blink/linemap/internal/model"
)

// AlignExact pairs identical normalized non-empty lines using a longest common
// subsequence over both sides. The alignment preserves order: two aligned
// pairs never cross. Every pair is committed as a Single entry.
func AlignExact(oldSide, newSide m.Side, st m.State) m.State {
	st = st.Clone()

	oldIdx := st.UnmatchedOld(oldSide)
	newIdx := st.UnmatchedNew(newSide)

	a, b := internKeys(oldSide, oldIdx, newSide, newIdx)

	for _, pair := range lcsPairs(a, b) {
		st.Commit(oldIdx[pair[0]], m.Single(newIdx[pair[1]]), m.ProvenanceExact)
	}

	return st
}

// internKeys replaces normalized texts with small integers so the DP compares
// ints instead of strings.
func internKeys(oldSide m.Side, oldIdx []int, newSide m.Side, newIdx []int) ([]int, []int) {
	ids := make(map[string]int, len(oldIdx))

	intern := func(text string) int {
		id, ok := ids[text]
		if !ok {
			id = len(ids)
			ids[text] = id
		}

		return id
	}

	a := make([]int, len(oldIdx))
	for i, idx := range oldIdx {
		a[i] = intern(oldSide[idx].Normalized)
	}

	b := make([]int, len(newIdx))
	for j, idx := range newIdx {
		b[j] = intern(newSide[idx].Normalized)
	}

	return a, b
}

// lcsPairs returns the positions (i, j) of a longest common subsequence of a
// and b in ascending order. Common prefixes and suffixes are matched directly
// so the DP table only covers the differing middle.
func lcsPairs(a, b []int) [][2]int {
	var pairs [][2]int

	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		pairs = append(pairs, [2]int{prefix, prefix})
		prefix++
	}

	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix &&
		a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	midA := a[prefix : len(a)-suffix]
	midB := b[prefix : len(b)-suffix]

	for _, p := range lcsTable(midA, midB) {
		pairs = append(pairs, [2]int{p[0] + prefix, p[1] + prefix})
	}

	for k := suffix; k > 0; k-- {
		pairs = append(pairs, [2]int{len(a) - k, len(b) - k})
	}

	return pairs
}

// lcsTable fills the classic (n+1)x(m+1) length table and backtracks from the
// bottom-right corner, preferring a diagonal step, then dropping from a, then
// dropping from b.
func lcsTable(a, b []int) [][2]int {
	n, mLen := len(a), len(b)
	if n == 0 || mLen == 0 {
		return nil
	}

	width := mLen + 1
	table := make([]int32, (n+1)*width)

	for i := 1; i <= n; i++ {
		for j := 1; j <= mLen; j++ {
			switch {
			case a[i-1] == b[j-1]:
				table[i*width+j] = table[(i-1)*width+j-1] + 1
			case table[(i-1)*width+j] >= table[i*width+j-1]:
				table[i*width+j] = table[(i-1)*width+j]
			default:
				table[i*width+j] = table[i*width+j-1]
			}
		}
	}

	pairs := make([][2]int, table[n*width+mLen])
	k := len(pairs) - 1

	for i, j := n, mLen; i > 0 && j > 0; {
		switch {
		case a[i-1] == b[j-1]:
			pairs[k] = [2]int{i - 1, j - 1}
			k--
			i--
			j--
		case table[(i-1)*width+j] >= table[i*width+j-1]:
			i--
		default:
			j--
		}
	}

	return pairs
}
