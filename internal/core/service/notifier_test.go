package service_test

import (
	"sync"
	"testing"
	"time"

	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/greenmart/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	mu      sync.Mutex
	current *domain.Notification
	cleared int
}

func (s *fakeSurface) ShowNotification(n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &n
}

func (s *fakeSurface) ClearNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.cleared++
}

func (s *fakeSurface) get() *domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func TestNotifierAutoDismiss(t *testing.T) {
	surface := &fakeSurface{}
	n := service.NewNotifier(surface, 30*time.Millisecond)
	defer n.Close()

	n.Success("subscribed")

	got := surface.get()
	require.NotNil(t, got)
	assert.Equal(t, domain.NotifySuccess, got.Kind)
	assert.Equal(t, "subscribed", got.Message)

	assert.Eventually(t, func() bool {
		return surface.get() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestNotifierReplaceRearmsTimer(t *testing.T) {
	surface := &fakeSurface{}
	n := service.NewNotifier(surface, 40*time.Millisecond)
	defer n.Close()

	n.Error("first")
	time.Sleep(25 * time.Millisecond)
	n.Success("second")
	time.Sleep(25 * time.Millisecond)

	// the first timer was cancelled, the second is still pending
	got := surface.get()
	require.NotNil(t, got)
	assert.Equal(t, "second", got.Message)

	assert.Eventually(t, func() bool {
		return surface.get() == nil
	}, time.Second, 5*time.Millisecond)

	surface.mu.Lock()
	defer surface.mu.Unlock()
	assert.Equal(t, 1, surface.cleared)
}
