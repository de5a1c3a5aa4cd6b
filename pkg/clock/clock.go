package clock

import "time"

// Clock supplies the current instant. Rule evaluation must be pinned to an
// injectable clock so time-dependent decisions stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

type System struct{}

func NewSystem() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}
