package domain

type Card struct {
	ID          string
	Category    string
	Title       string
	Description string
}

// A Catalog is the ordered, fixed set of product cards on the page.
// It is loaded once at startup and never mutated afterward.
type Catalog []Card

// A VisibleSet holds the IDs of the cards a filter decision left visible.
type VisibleSet map[string]struct{}

func (s VisibleSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}
