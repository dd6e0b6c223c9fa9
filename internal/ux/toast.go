package ux

// Variant selects the visual treatment of a notification.
type Variant string

// Notification variants
const (
	// VariantNeutral is the default informational treatment.
	VariantNeutral Variant = "neutral"
	// VariantDestructive marks failures and warnings.
	VariantDestructive Variant = "destructive"
)

// Notification is a transient, non-blocking message shown after an action
// completes. It never interrupts the flow that raised it.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notify creates a neutral notification.
func Notify(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantNeutral}
}

// NotifyError creates a destructive notification.
func NotifyError(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDestructive}
}

// Notifier receives notifications. The TUI renders them as a toast line;
// the CLI prints them.
type Notifier interface {
	Push(n Notification)
}
