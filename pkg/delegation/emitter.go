package delegation

import (
	"log/slog"

	"github.com/mesh-intelligence/proxyvote/pkg/types"
)

// Compile-time interface checks.
var (
	_ types.Emitter = (*SlogEmitter)(nil)
	_ types.Emitter = NopEmitter{}
	_ types.Emitter = (*CollectEmitter)(nil)
)

// SlogEmitter writes one structured log record per notification.
type SlogEmitter struct {
	log *slog.Logger
}

// NewSlogEmitter creates an emitter over the given logger. A nil logger
// uses slog.Default.
func NewSlogEmitter(log *slog.Logger) *SlogEmitter {
	if log == nil {
		log = slog.Default()
	}
	return &SlogEmitter{log: log}
}

// Emit logs the notification.
func (e *SlogEmitter) Emit(n types.Notification) {
	e.log.Info("delegation "+n.Kind,
		"delegation_id", n.DelegationID,
		"delegator", string(n.Delegator),
		"delegate", string(n.Delegate),
		"expiry", uint64(n.Expiry),
		"at", uint64(n.At),
	)
}

// NopEmitter discards notifications.
type NopEmitter struct{}

// Emit does nothing.
func (NopEmitter) Emit(types.Notification) {}

// CollectEmitter records notifications in order; used by tests and by
// hosts that forward events in batches.
type CollectEmitter struct {
	Notifications []types.Notification
}

// Emit appends the notification.
func (c *CollectEmitter) Emit(n types.Notification) {
	c.Notifications = append(c.Notifications, n)
}
