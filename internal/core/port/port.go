package port

import (
	"context"
	"sync"

	"github.com/greenmart/storefront/internal/core/domain"
)

type (
	runnerContextWg interface {
		Run(context.Context, context.CancelFunc, *sync.WaitGroup)
	}

	closer interface {
		Close()
	}
)

// Inbound: what the transport layer calls on the core services.

type CatalogFilterer interface {
	FilterByCategory(ctx context.Context, tag string) error
	SearchInput(ctx context.Context, term string) error
	FilterBySearch(ctx context.Context, term string) error
}

type ContactSubmitter interface {
	SubmitContact(ctx context.Context, s domain.ContactSubmission) (domain.FieldErrors, error)
}

type NewsletterSubscriber interface {
	SubscribeNewsletter(ctx context.Context, email string) error
}

type PageReader interface {
	Snapshot() domain.PageSnapshot
}

type StatsReader interface {
	GetCount(key string) (int64, error)
}

// Outbound: the rendering and infrastructure surfaces the core drives.

type GridRenderer interface {
	ApplyVisibility(vs domain.VisibleSet, animate bool)
}

type FilterControls interface {
	SetSearchValue(term string)
	SelectCategory(tag string)
}

type ContactFormSurface interface {
	SetContactForm(s domain.ContactSubmission, errs domain.FieldErrors)
	ResetContactForm()
}

type NewsletterSurface interface {
	SetNewsletterEmail(email string)
	ClearNewsletterEmail()
}

type NotificationSurface interface {
	ShowNotification(n domain.Notification)
	ClearNotification()
}

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type InteractionsProducer interface {
	ProduceInteraction(context.Context, domain.Interaction) error
}

type CardsStorage interface {
	LoadCards(context.Context) (domain.Catalog, error)
}

type SearchTallyProcessor interface {
	runnerContextWg
	closer
}
