package domain

import "time"

type InteractionKind string

const (
	InteractionFilterCategory InteractionKind = "filter_category"
	InteractionSearch         InteractionKind = "search"
	InteractionContactSubmit  InteractionKind = "contact_submit"
	InteractionNewsletter     InteractionKind = "newsletter_subscribe"
)

// An Interaction is one applied storefront action, emitted to the
// analytics stream. Value carries the category tag, the normalized
// search term, or the form identifier.
type Interaction struct {
	ID         string
	Kind       InteractionKind
	Value      string
	OccurredAt time.Time
}

// TallyKey is the grouping key the interaction tally is counted under.
func (i Interaction) TallyKey() string {
	return string(i.Kind) + ":" + i.Value
}
