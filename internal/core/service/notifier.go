package service

import (
	"sync"
	"time"

	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/greenmart/storefront/internal/core/port"
)

var _ port.Notifier = (*NotifierService)(nil)

// NotificationTTL is how long a toast stays on the surface before
// auto-dismissal.
const NotificationTTL = 4 * time.Second

// A NotifierService drives the single reusable toast surface. Showing a
// new notification replaces the current one and re-arms the dismiss timer.
type NotifierService struct {
	mu      sync.Mutex
	surface port.NotificationSurface
	ttl     time.Duration
	timer   *time.Timer
}

func NewNotifier(surface port.NotificationSurface, ttl time.Duration) *NotifierService {
	return &NotifierService{surface: surface, ttl: ttl}
}

func (n *NotifierService) Success(msg string) {
	n.show(domain.Notification{Kind: domain.NotifySuccess, Message: msg})
}

func (n *NotifierService) Error(msg string) {
	n.show(domain.Notification{Kind: domain.NotifyError, Message: msg})
}

func (n *NotifierService) show(v domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.surface.ShowNotification(v)

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, n.surface.ClearNotification)
}

// Close cancels a pending auto-dismissal.
func (n *NotifierService) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
