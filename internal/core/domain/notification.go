package domain

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// A Notification is the content of the single reusable toast surface.
type Notification struct {
	Kind    NotificationKind
	Message string
}
