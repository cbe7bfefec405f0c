package lifecycle

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// IsEnded reports whether an auction ending at endTimeMs has ended at nowMs.
// The comparison is strict: an auction ending exactly now is still running.
// Non-finite end times fail closed and count as ended.
func IsEnded(endTimeMs float64, nowMs int64) bool {
	if math.IsNaN(endTimeMs) || math.IsInf(endTimeMs, 0) {
		return true
	}
	return endTimeMs < float64(nowMs)
}

// Clock is the wall-clock source for lifecycle decisions. It samples on every
// call so auctions move from active to ended without a reload.
type Clock struct {
	clock clockwork.Clock
}

// NewClock wraps c; a nil c means the real wall clock
func NewClock(c clockwork.Clock) *Clock {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	return &Clock{clock: c}
}

// NowMillis returns the current time in epoch milliseconds
func (c *Clock) NowMillis() int64 {
	return c.clock.Now().UnixMilli()
}

// TimeLeft renders the remaining time until endTimeMs, e.g. "2d 3h 4m 5s".
// Once ended it returns "Ended".
func TimeLeft(endTimeMs, nowMs int64) string {
	if IsEnded(float64(endTimeMs), nowMs) {
		return "Ended"
	}

	left := time.Duration(endTimeMs-nowMs) * time.Millisecond
	days := left / (24 * time.Hour)
	left -= days * 24 * time.Hour
	hours := left / time.Hour
	left -= hours * time.Hour
	minutes := left / time.Minute
	left -= minutes * time.Minute
	seconds := left / time.Second

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if days > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if days > 0 || hours > 0 || minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))
	return strings.Join(parts, " ")
}
