package domain

import "strings"

// CategoryAll is the sentinel tag that keeps the whole catalog visible.
const CategoryAll = "all"

type modeKind int

const (
	modeCategory modeKind = iota
	modeSearch
)

// A FilterMode is the currently active visibility rule: either a category
// selection or a search term, never both. The zero value behaves as an
// empty category selection; use [DefaultMode] for the page's initial state.
type FilterMode struct {
	kind  modeKind
	value string
}

func DefaultMode() FilterMode {
	return CategoryMode(CategoryAll)
}

func CategoryMode(tag string) FilterMode {
	return FilterMode{kind: modeCategory, value: tag}
}

// SearchMode normalizes the term by trimming whitespace and lower-casing.
func SearchMode(term string) FilterMode {
	term = strings.ToLower(strings.TrimSpace(term))
	return FilterMode{kind: modeSearch, value: term}
}

func (m FilterMode) Category() (tag string, ok bool) {
	if m.kind != modeCategory {
		return "", false
	}
	return m.value, true
}

func (m FilterMode) Search() (term string, ok bool) {
	if m.kind != modeSearch {
		return "", false
	}
	return m.value, true
}

// ComputeVisibility decides which catalog cards the mode leaves visible.
// It is pure: callers apply the result to whatever rendering surface they own.
//
// An unrecognized category tag yields an empty set; the "all" tag and an
// empty search term yield the full catalog, including the empty catalog.
func ComputeVisibility(c Catalog, m FilterMode) VisibleSet {
	vs := make(VisibleSet, len(c))

	if tag, ok := m.Category(); ok {
		for _, card := range c {
			if tag == CategoryAll || card.Category == tag {
				vs[card.ID] = struct{}{}
			}
		}
		return vs
	}

	term, _ := m.Search()
	for _, card := range c {
		if term == "" ||
			strings.Contains(strings.ToLower(card.Title), term) ||
			strings.Contains(strings.ToLower(card.Description), term) {
			vs[card.ID] = struct{}{}
		}
	}
	return vs
}
