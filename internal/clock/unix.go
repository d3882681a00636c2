package clock

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-validator/pkg/safe"
)

// UnixSeconds converts t to the 32-bit Unix timestamp used in block headers.
func UnixSeconds(t time.Time) (uint32, error) {
	if t.IsZero() {
		return 0, nil
	}
	seconds, err := safe.Uint32(t.Unix())
	if err != nil {
		return 0, fmt.Errorf("timestamp %s: %w", t.Format(time.RFC3339), err)
	}
	return seconds, nil
}

// FromUnixSeconds converts a header timestamp to UTC time.
func FromUnixSeconds(seconds uint32) time.Time {
	return time.Unix(int64(seconds), 0).UTC()
}
