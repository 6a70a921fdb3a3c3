package utils

import "time"

// Retry runs an operation with exponential back-off. Attempts <= 1 means a
// single try; Delay is the wait before the second attempt and doubles after
// each failure, capped by MaxDelay when set.
type Retry struct {
	Attempts int
	Delay    time.Duration
	MaxDelay time.Duration
	Logger   *Logger
}

// Do runs fn until it succeeds or the attempts are exhausted, returning the
// last error.
func (r *Retry) Do(name string, fn func() error) error {
	delay := r.Delay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if attempt >= r.Attempts {
			return err
		}

		r.Logger.Warn("[retry] %s attempt %d/%d: %v (next try in %v)",
			name, attempt, r.Attempts, err, delay)
		time.Sleep(delay)
		delay *= 2
		if r.MaxDelay > 0 && delay > r.MaxDelay {
			delay = r.MaxDelay
		}
	}
}
