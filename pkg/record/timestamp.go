package record

import (
	"encoding/json"
	"strconv"
	"time"
)

// Timestamp is an instant stored on the wire as Unix milliseconds.
type Timestamp struct {
	time.Time
}

// At wraps t.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// Millis returns the Unix millisecond value written to storage.
func (t Timestamp) Millis() int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.Millis(), 10)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var ms int64
	if err := json.Unmarshal(b, &ms); err != nil {
		return err
	}
	if ms == 0 {
		t.Time = time.Time{}
		return nil
	}
	t.Time = time.UnixMilli(ms)
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
