//go:build bridge_datetime

package lower

import "time"

// Calendar and duration leaves, enabled with the bridge_datetime build tag.

// Time is the identity lowering for instants.
func Time() Fn[time.Time, time.Time] {
	return func(src time.Time) time.Time {
		return src
	}
}

// Duration is the identity lowering for durations.
func Duration() Fn[time.Duration, time.Duration] {
	return func(src time.Duration) time.Duration {
		return src
	}
}
