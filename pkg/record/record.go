// Package record defines the persisted records of the gate: today's
// acknowledgement, the ritual checklist, the rolling history and the editable
// user configuration.
package record

import "encoding/json"

// Acknowledgement is written once per successful confirmation. Only the record
// whose Date equals today satisfies today's gate; older records are history.
type Acknowledgement struct {
	Date         string    `json:"date"`
	Action       string    `json:"action,omitempty"`
	Acknowledged bool      `json:"acknowledged"`
	Timestamp    Timestamp `json:"timestamp"`
}

// UnmarshalJSON treats a record without an "acknowledged" field as
// acknowledged. Records that carry only date and action are written by older
// clients under the same key; only an explicit false marks a record as
// unacknowledged.
func (a *Acknowledgement) UnmarshalJSON(b []byte) error {
	type plain Acknowledgement
	p := plain{Acknowledged: true}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*a = Acknowledgement(p)
	return nil
}

// Covers reports whether the acknowledgement satisfies the gate for date.
func (a Acknowledgement) Covers(date string) bool {
	return a.Acknowledged && a.For(date)
}

// For reports whether the acknowledgement covers the given date key.
func (a Acknowledgement) For(date string) bool {
	return a.Date != "" && a.Date == date
}

// Checklist is the ritual state for a single day.
type Checklist struct {
	Date  string          `json:"date"`
	Items map[string]bool `json:"items"`
}

// Fresh returns an all-false checklist for date over the given ids.
func Fresh(date string, ids []string) Checklist {
	items := make(map[string]bool, len(ids))
	for _, id := range ids {
		items[id] = false
	}
	return Checklist{Date: date, Items: items}
}

// Clone returns a deep copy.
func (c Checklist) Clone() Checklist {
	items := make(map[string]bool, len(c.Items))
	for k, v := range c.Items {
		items[k] = v
	}
	return Checklist{Date: c.Date, Items: items}
}

// HistoryEntry is one confirmed day. The stored sequence is newest first.
type HistoryEntry struct {
	Date      string    `json:"date"`
	Action    string    `json:"action"`
	Timestamp Timestamp `json:"timestamp"`
}
