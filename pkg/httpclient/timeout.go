package httpclient

import (
	"fmt"
	"strings"
	"time"
)

// TimeoutUnit is the unit a numeric timeout is expressed in
type TimeoutUnit string

const (
	UnitSecond      TimeoutUnit = "second"
	UnitMillisecond TimeoutUnit = "millisecond"
)

// DefaultTimeout is used when no timeout value is configured
const DefaultTimeout = 5 * time.Second

// ParseTimeoutUnit parses a unit name. Plurals and short forms are accepted.
func ParseTimeoutUnit(s string) (TimeoutUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "second", "seconds", "s", "sec":
		return UnitSecond, nil
	case "millisecond", "milliseconds", "ms":
		return UnitMillisecond, nil
	default:
		return "", fmt.Errorf("unknown timeout unit: %q (expected second or millisecond)", s)
	}
}

// DefaultValue returns the numeric default timeout in this unit
func (u TimeoutUnit) DefaultValue() uint64 {
	if u == UnitMillisecond {
		return uint64(DefaultTimeout / time.Millisecond)
	}
	return uint64(DefaultTimeout / time.Second)
}

// Duration converts value to a duration. A zero value selects the default.
func (u TimeoutUnit) Duration(value uint64) time.Duration {
	if value == 0 {
		return DefaultTimeout
	}
	if u == UnitMillisecond {
		return time.Duration(value) * time.Millisecond
	}
	return time.Duration(value) * time.Second
}
