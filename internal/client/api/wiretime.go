package api

import (
	"fmt"
	"strings"
	"time"
)

// wireLayout is the date-time format the server speaks: ISO-8601 without
// zone or fractional seconds.
const wireLayout = "2006-01-02T15:04:05"

// dateLayout is the date-only form users type into create/edit forms.
const dateLayout = "2006-01-02"

// WireTime wraps time.Time with the server's JSON encoding. Null and empty
// strings unmarshal to the zero value; a bare date is accepted on input.
type WireTime struct {
	time.Time
}

// NewWireTime wraps t for transmission.
func NewWireTime(t time.Time) *WireTime {
	return &WireTime{Time: t}
}

func (w WireTime) MarshalJSON() ([]byte, error) {
	if w.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + w.Format(wireLayout) + `"`), nil
}

func (w *WireTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		w.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{wireLayout, dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			w.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as wire time", s)
}
