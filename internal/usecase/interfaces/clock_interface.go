package interfaces

import "time"

// IClock abstracts "now" so validation and pricing stay deterministic under
// test. Production wiring uses the system clock; tests inject fixed instants.
//
//go:generate mockgen -source=clock_interface.go -destination=mocks/clock_interface_mock.go -package=mock_interfaces

type IClock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation used outside of tests.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
