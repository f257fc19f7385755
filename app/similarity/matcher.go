package similarity

import (
	"sort"
)

// Match describes a block a[A:A+Size] == b[B:B+Size].
type Match struct {
	A    int
	B    int
	Size int
}

// Matcher compares two strings rune by rune. The index of b is built once,
// so repeated longest-match queries over sub-ranges stay cheap.
type Matcher struct {
	a   []rune
	b   []rune
	b2j map[rune][]int
}

func NewMatcher(a, b string) *Matcher {
	m := &Matcher{
		a:   []rune(a),
		b:   []rune(b),
		b2j: make(map[rune][]int),
	}

	for j, r := range m.b {
		m.b2j[r] = append(m.b2j[r], j)
	}

	return m
}

func (m *Matcher) LenA() int {
	return len(m.a)
}

func (m *Matcher) LenB() int {
	return len(m.b)
}

// FindLongestMatch returns the longest matching block in a[alo:ahi] and
// b[blo:bhi]. Among equally long blocks the one starting earliest in a wins,
// then the one starting earliest in b. Size is 0 when nothing matches.
func (m *Matcher) FindLongestMatch(alo, ahi, blo, bhi int) Match {
	best := Match{A: alo, B: blo}

	// prev[j+1] holds the length of the match ending at a[i-1], b[j].
	prev := make([]int, len(m.b)+1)
	cur := make([]int, len(m.b)+1)
	var prevTouched, curTouched []int

	for i := alo; i < ahi; i++ {
		curTouched = curTouched[:0]
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := prev[j] + 1
			cur[j+1] = k
			curTouched = append(curTouched, j+1)
			if k > best.Size {
				best = Match{A: i - k + 1, B: j - k + 1, Size: k}
			}
		}

		for _, t := range prevTouched {
			prev[t] = 0
		}
		prev, cur = cur, prev
		prevTouched, curTouched = curTouched, prevTouched
	}

	return best
}

// MatchingBlocks returns the non-overlapping matching blocks in increasing
// order, terminated by a zero-size sentinel at (len(a), len(b)).
func (m *Matcher) MatchingBlocks() []Match {
	type span struct{ alo, ahi, blo, bhi int }

	queue := []span{{0, len(m.a), 0, len(m.b)}}
	var blocks []Match

	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		match := m.FindLongestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if match.Size == 0 {
			continue
		}
		blocks = append(blocks, match)

		if s.alo < match.A && s.blo < match.B {
			queue = append(queue, span{s.alo, match.A, s.blo, match.B})
		}
		if match.A+match.Size < s.ahi && match.B+match.Size < s.bhi {
			queue = append(queue, span{match.A + match.Size, s.ahi, match.B + match.Size, s.bhi})
		}
	}

	sort.Slice(blocks, func(x, y int) bool {
		if blocks[x].A != blocks[y].A {
			return blocks[x].A < blocks[y].A
		}
		return blocks[x].B < blocks[y].B
	})

	// Collapse adjacent blocks.
	collapsed := make([]Match, 0, len(blocks)+1)
	for _, block := range blocks {
		if n := len(collapsed); n > 0 {
			last := &collapsed[n-1]
			if last.A+last.Size == block.A && last.B+last.Size == block.B {
				last.Size += block.Size
				continue
			}
		}
		collapsed = append(collapsed, block)
	}

	return append(collapsed, Match{A: len(m.a), B: len(m.b)})
}

// Ratio is the alignment-based similarity: twice the number of runes in
// matching blocks over the total rune count.
func (m *Matcher) Ratio() float64 {
	matched := 0
	for _, block := range m.MatchingBlocks() {
		matched += block.Size
	}
	return ratio(matched, len(m.a)+len(m.b))
}

// QuickRatio is an upper bound on Ratio that ignores ordering: matched runes
// are the multiset intersection of both strings.
func (m *Matcher) QuickRatio() float64 {
	avail := make(map[rune]int, len(m.b2j))
	for r, positions := range m.b2j {
		avail[r] = len(positions)
	}

	matched := 0
	for _, r := range m.a {
		if avail[r] > 0 {
			avail[r]--
			matched++
		}
	}

	return ratio(matched, len(m.a)+len(m.b))
}

func ratio(matched, total int) float64 {
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matched) / float64(total)
}
