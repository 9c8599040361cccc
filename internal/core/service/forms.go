package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/greenmart/storefront/internal/core/port"
)

var _ port.ContactSubmitter = (*FormsService)(nil)
var _ port.NewsletterSubscriber = (*FormsService)(nil)

const (
	contactSentMsg       = "message sent, we will get back to you soon"
	newsletterInvalidMsg = "enter a valid email address"
	newsletterOKMsg      = "you are subscribed to the newsletter"
)

// ErrInvalidEmail is returned when a newsletter subscription carries a
// malformed address. The submission is recoverable: the field keeps its
// value and the user may correct and resubmit.
var ErrInvalidEmail = errors.New("invalid email address")

type formsSurface interface {
	port.ContactFormSurface
	port.NewsletterSurface
}

// A FormsService validates and simulates submission of the contact and
// newsletter forms. No network submission takes place.
type FormsService struct {
	surface      formsSurface
	notifier     port.Notifier
	interactions port.InteractionsProducer
}

func NewForms(
	surface formsSurface,
	notifier port.Notifier,
	interactions port.InteractionsProducer,
) *FormsService {
	return &FormsService{
		surface:      surface,
		notifier:     notifier,
		interactions: interactions,
	}
}

// SubmitContact validates every field. Invalid fields block submission
// and surface field-local errors; a valid submission resets the form and
// raises a success toast. The returned FieldErrors is nil on success.
func (f *FormsService) SubmitContact(
	ctx context.Context, s domain.ContactSubmission,
) (domain.FieldErrors, error) {
	const op = "FormsService.SubmitContact"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s = s.Normalize()
	errs := s.Validate()
	if len(errs) > 0 {
		f.surface.SetContactForm(s, errs)
		return errs, nil
	}

	f.surface.ResetContactForm()
	f.notifier.Success(contactSentMsg)
	f.emit(ctx, domain.InteractionContactSubmit, "contact")
	return nil, nil
}

// SubscribeNewsletter checks the single email field. On failure the field
// keeps its value and an error toast is shown; on success the field is
// cleared and a success toast is shown.
func (f *FormsService) SubscribeNewsletter(ctx context.Context, email string) error {
	const op = "FormsService.SubscribeNewsletter"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !domain.ValidEmail(email) {
		f.surface.SetNewsletterEmail(email)
		f.notifier.Error(newsletterInvalidMsg)
		return fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	f.surface.ClearNewsletterEmail()
	f.notifier.Success(newsletterOKMsg)
	f.emit(ctx, domain.InteractionNewsletter, "newsletter")
	return nil
}

func (f *FormsService) emit(
	ctx context.Context, kind domain.InteractionKind, value string,
) {
	const op = "FormsService.emit"

	evt := domain.Interaction{
		ID:         uuid.NewString(),
		Kind:       kind,
		Value:      value,
		OccurredAt: time.Now(),
	}
	if err := f.interactions.ProduceInteraction(ctx, evt); err != nil {
		slog.Warn("failed to produce interaction", "op", op, "err", err)
	}
}
