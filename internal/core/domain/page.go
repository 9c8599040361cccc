package domain

// A CardState is a catalog card together with its current display state.
// FadeSeq increments every time a visible card is re-rendered with the
// fade-in trigger, so repeated applications re-run the animation even
// though the visibility outcome is convergent.
type CardState struct {
	Card
	Visible bool
	FadeSeq int
}

// A PageSnapshot is a consistent read of the whole page model.
type PageSnapshot struct {
	Cards           []CardState
	ActiveCategory  string
	SearchValue     string
	ContactFields   ContactSubmission
	ContactErrors   FieldErrors
	NewsletterEmail string
	Notification    *Notification
}
