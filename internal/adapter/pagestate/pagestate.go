// Package pagestate holds the in-memory page model: the catalog grid,
// the filter controls, both forms and the notification surface. It is
// the rendering target of the core services and the read source of the
// HTTP layer.
package pagestate

import (
	"sync"

	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/greenmart/storefront/internal/core/port"
)

var _ port.GridRenderer = (*Page)(nil)
var _ port.FilterControls = (*Page)(nil)
var _ port.ContactFormSurface = (*Page)(nil)
var _ port.NewsletterSurface = (*Page)(nil)
var _ port.NotificationSurface = (*Page)(nil)
var _ port.PageReader = (*Page)(nil)

type Page struct {
	mu              sync.Mutex
	cards           []domain.CardState
	activeCategory  string
	searchValue     string
	contactFields   domain.ContactSubmission
	contactErrors   domain.FieldErrors
	newsletterEmail string
	notification    *domain.Notification
	fadeSeq         int
}

// New builds the page model from the catalog. All cards start visible
// and the "all" category indicator is selected.
func New(catalog domain.Catalog) *Page {
	cards := make([]domain.CardState, len(catalog))
	for i, c := range catalog {
		cards[i] = domain.CardState{Card: c, Visible: true}
	}
	return &Page{
		cards:          cards,
		activeCategory: domain.CategoryAll,
	}
}

func (p *Page) ApplyVisibility(vs domain.VisibleSet, animate bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if animate {
		p.fadeSeq++
	}
	for i := range p.cards {
		visible := vs.Has(p.cards[i].ID)
		p.cards[i].Visible = visible
		if visible && animate {
			p.cards[i].FadeSeq = p.fadeSeq
		}
	}
}

func (p *Page) SetSearchValue(term string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.searchValue = term
}

func (p *Page) SelectCategory(tag string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeCategory = tag
}

func (p *Page) SetContactForm(s domain.ContactSubmission, errs domain.FieldErrors) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contactFields = s
	p.contactErrors = errs
}

func (p *Page) ResetContactForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contactFields = domain.ContactSubmission{}
	p.contactErrors = nil
}

func (p *Page) SetNewsletterEmail(email string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.newsletterEmail = email
}

func (p *Page) ClearNewsletterEmail() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.newsletterEmail = ""
}

func (p *Page) ShowNotification(n domain.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notification = &n
}

func (p *Page) ClearNotification() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notification = nil
}

// Snapshot returns a consistent copy of the page model.
func (p *Page) Snapshot() domain.PageSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	cards := make([]domain.CardState, len(p.cards))
	copy(cards, p.cards)

	var errs domain.FieldErrors
	if p.contactErrors != nil {
		errs = make(domain.FieldErrors, len(p.contactErrors))
		for k, v := range p.contactErrors {
			errs[k] = v
		}
	}

	var n *domain.Notification
	if p.notification != nil {
		v := *p.notification
		n = &v
	}

	return domain.PageSnapshot{
		Cards:           cards,
		ActiveCategory:  p.activeCategory,
		SearchValue:     p.searchValue,
		ContactFields:   p.contactFields,
		ContactErrors:   errs,
		NewsletterEmail: p.newsletterEmail,
		Notification:    n,
	}
}
