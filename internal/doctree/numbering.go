package doctree

import "strconv"

// Renumber returns a snapshot whose Number fields are derived from the
// current tree shape, numbering settings and numbered flags. The derivation
// is pure and idempotent; structural operations call it internally, so
// external callers only need it after editing Settings directly.
func Renumber(s *DocumentState) *DocumentState {
	next := s.Clone()
	renumber(next)
	return next
}

// renumber works in place and must only be called on snapshots that have not
// escaped yet. Traversal is breadth-first so a parent's number is always
// assigned before its children consume it for the dotted scheme.
func renumber(s *DocumentState) {
	for _, n := range s.Nodes {
		n.Number = ""
	}

	queue := []string{s.RootID}
	for len(queue) > 0 {
		parentID := queue[0]
		queue = queue[1:]
		parent := s.Nodes[parentID]

		// One counter per (parent, kind) pair; skipped nodes do not advance it.
		counts := map[Kind]int{}
		for _, child := range s.Children(parentID) {
			queue = append(queue, child.ID)

			scheme := s.Settings.Numbering[child.Kind]
			if scheme == "" || scheme == SchemeNone || !child.IsNumbered() {
				continue
			}
			counts[child.Kind]++
			n := counts[child.Kind]

			switch scheme {
			case SchemeRoman:
				child.Number = romanUpper(n)
			case SchemeArabic:
				child.Number = strconv.Itoa(n)
			case SchemeDotted:
				if parent != nil && parent.Number != "" {
					child.Number = parent.Number + "." + strconv.Itoa(n)
				} else {
					child.Number = strconv.Itoa(n)
				}
			}
		}
	}
}

var romanDigits = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func romanUpper(n int) string {
	if n <= 0 {
		return ""
	}
	var out []byte
	for _, d := range romanDigits {
		for n >= d.value {
			out = append(out, d.symbol...)
			n -= d.value
		}
	}
	return string(out)
}
