package extraction

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Clean collapses whitespace runs, trims, and terminates the sentence
// with exactly one period. Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimRight(s, ". ")
	return s + "."
}

// SortByLength orders sentences by descending character count. Equal
// lengths are ordered lexically so output is stable across runs.
func SortByLength(items []string) {
	sort.SliceStable(items, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(items[i]), utf8.RuneCountInString(items[j])
		if li != lj {
			return li > lj
		}
		return items[i] < items[j]
	})
}

// set keeps first-seen order of unique strings.
type set struct {
	seen  map[string]struct{}
	items []string
}

func newSet() *set {
	return &set{seen: make(map[string]struct{})}
}

func (s *set) add(item string) {
	if _, ok := s.seen[item]; ok {
		return
	}
	s.seen[item] = struct{}{}
	s.items = append(s.items, item)
}

func (s *set) sorted() []string {
	out := append([]string(nil), s.items...)
	SortByLength(out)
	return out
}
