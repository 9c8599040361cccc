package pagestate_test

import (
	"testing"

	"github.com/greenmart/storefront/internal/adapter/pagestate"
	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageCatalog() domain.Catalog {
	return domain.Catalog{
		{ID: "1", Category: "eco", Title: "Bamboo Brush"},
		{ID: "2", Category: "food", Title: "Organic Tea"},
	}
}

func TestNewPageDefaults(t *testing.T) {
	p := pagestate.New(pageCatalog())
	snap := p.Snapshot()

	require.Len(t, snap.Cards, 2)
	assert.True(t, snap.Cards[0].Visible)
	assert.True(t, snap.Cards[1].Visible)
	assert.Equal(t, domain.CategoryAll, snap.ActiveCategory)
	assert.Empty(t, snap.SearchValue)
	assert.Nil(t, snap.Notification)
}

func TestApplyVisibility(t *testing.T) {
	p := pagestate.New(pageCatalog())

	p.ApplyVisibility(domain.VisibleSet{"2": {}}, true)
	snap := p.Snapshot()

	assert.False(t, snap.Cards[0].Visible)
	assert.True(t, snap.Cards[1].Visible)
	firstSeq := snap.Cards[1].FadeSeq
	assert.Positive(t, firstSeq)

	// re-applying the same decision re-triggers the fade on visible cards
	p.ApplyVisibility(domain.VisibleSet{"2": {}}, true)
	snap = p.Snapshot()
	assert.True(t, snap.Cards[1].Visible)
	assert.Greater(t, snap.Cards[1].FadeSeq, firstSeq)
}

func TestApplyVisibilityEmptySet(t *testing.T) {
	p := pagestate.New(pageCatalog())

	p.ApplyVisibility(domain.VisibleSet{}, true)
	for _, c := range p.Snapshot().Cards {
		assert.False(t, c.Visible)
	}
}

func TestFormSurfaces(t *testing.T) {
	p := pagestate.New(nil)

	sub := domain.ContactSubmission{Name: "A", Email: "x"}
	errs := domain.FieldErrors{"name": "too short"}
	p.SetContactForm(sub, errs)

	snap := p.Snapshot()
	assert.Equal(t, sub, snap.ContactFields)
	assert.Equal(t, errs, snap.ContactErrors)

	p.ResetContactForm()
	snap = p.Snapshot()
	assert.Zero(t, snap.ContactFields)
	assert.Nil(t, snap.ContactErrors)

	p.SetNewsletterEmail("a@b.co")
	assert.Equal(t, "a@b.co", p.Snapshot().NewsletterEmail)
	p.ClearNewsletterEmail()
	assert.Empty(t, p.Snapshot().NewsletterEmail)
}

func TestNotificationSurface(t *testing.T) {
	p := pagestate.New(nil)

	p.ShowNotification(domain.Notification{
		Kind: domain.NotifyError, Message: "nope",
	})
	snap := p.Snapshot()
	require.NotNil(t, snap.Notification)
	assert.Equal(t, domain.NotifyError, snap.Notification.Kind)

	p.ClearNotification()
	assert.Nil(t, p.Snapshot().Notification)
}

func TestSnapshotIsCopy(t *testing.T) {
	p := pagestate.New(pageCatalog())
	snap := p.Snapshot()
	snap.Cards[0].Visible = false

	assert.True(t, p.Snapshot().Cards[0].Visible)
}
