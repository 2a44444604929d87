package events

import (
	"context"

	"employee-roster/internal/logger"
)

// LogHook writes every event to the logger at debug level
func LogHook(log *logger.Logger) Hook {
	return HookFunc(func(ctx context.Context, event Event) error {
		log.WithContext(ctx).WithField("event", event.Name).Debug("Broadcast event")
		return nil
	})
}
