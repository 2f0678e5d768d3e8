package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock supplies the current time. The report pipeline only consults it for
// the notification body, keeping the CSV output byte-deterministic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// NewSystem returns a Clock backed by the system wall clock in UTC.
func NewSystem() Clock {
	return systemClock{}
}

// Module wires the system clock.
var Module = fx.Module("clock",
	fx.Provide(NewSystem),
)
