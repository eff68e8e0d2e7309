//go:build !linux

package bench

import "time"

type monoClock struct{}

func (monoClock) Now() time.Duration {
	return epochClock{}.Now()
}
