// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface with wall-clock time.
type systemClock struct{}

// NewSystemClock creates a clock backed by the system time in UTC.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
