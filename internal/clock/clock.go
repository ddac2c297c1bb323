package clock

import "time"

// Clock supplies the current time to services so tests can pin it.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// System returns a clock backed by time.Now, normalized to UTC.
func System() Clock {
	return Func(func() time.Time {
		return time.Now().UTC()
	})
}

// Fixed returns a clock pinned to the given instant.
func Fixed(t time.Time) Clock {
	u := t.UTC()
	return Func(func() time.Time {
		return u
	})
}
