package guard

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/store"
	"tableflip.dev/ackgate/pkg/timeutil"
)

func TestCheck(t *testing.T) {
	now := time.Date(2026, time.June, 1, 23, 59, 0, 0, time.Local)
	tests := map[string]struct {
		stored string
		want   Decision
	}{
		"nothing stored": {
			want: Veto,
		},
		"acknowledged today": {
			stored: `{"date":"2026-06-01","action":"Ship","acknowledged":true,"timestamp":1780000000000}`,
			want:   Allow,
		},
		"date and action only": {
			stored: `{"date":"2026-06-01","action":"Ship the login page","timestamp":1780000000000}`,
			want:   Allow,
		},
		"date and action only, yesterday": {
			stored: `{"date":"2026-05-31","action":"Ship the login page","timestamp":1780000000000}`,
			want:   Veto,
		},
		"acknowledged yesterday": {
			stored: `{"date":"2026-05-31","acknowledged":true,"timestamp":1780000000000}`,
			want:   Veto,
		},
		"not acknowledged": {
			stored: `{"date":"2026-06-01","acknowledged":false,"timestamp":0}`,
			want:   Veto,
		},
		"malformed": {
			stored: `{"date":`,
			want:   Veto,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mem := store.NewMemory()
			if tc.stored != "" {
				if err := mem.Write(store.KeyAcknowledgement, []byte(tc.stored)); err != nil {
					t.Fatal(err)
				}
			}
			g := New(store.NewRecords(mem, nil), &timeutil.Fixed{T: now})
			if got := g.Check(); got != tc.want {
				t.Fatalf("Check()=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestCheckHasNoSideEffects(t *testing.T) {
	mem := store.NewMemory()
	records := store.NewRecords(mem, nil)
	g := New(records, &timeutil.Fixed{T: time.Date(2026, time.June, 1, 8, 0, 0, 0, time.Local)})
	g.Check()
	g.Check()
	if keys := mem.Keys(context.Background()); len(keys) != 0 {
		t.Fatalf("guard wrote %v", keys)
	}
	if err := records.SaveAcknowledgement(record.Acknowledgement{Date: "2026-06-01", Acknowledged: true}); err != nil {
		t.Fatal(err)
	}
	if g.Check() != Allow {
		t.Fatalf("guard cached the earlier veto")
	}
}

func TestCheckIgnoresChecklistAndHistory(t *testing.T) {
	now := time.Date(2026, time.June, 1, 18, 0, 0, 0, time.Local)
	done := record.Checklist{Date: "2026-06-01", Items: map[string]bool{"gym": true, "read": true}}
	empty := record.Fresh("2026-06-01", []string{"gym", "read"})
	history := []record.HistoryEntry{{Date: "2026-06-01", Action: "Ship"}}
	tests := map[string]struct {
		ack       *record.Acknowledgement
		checklist record.Checklist
		history   []record.HistoryEntry
		want      Decision
	}{
		"no ack, full checklist and history": {
			checklist: done,
			history:   history,
			want:      Veto,
		},
		"ack, empty checklist and no history": {
			ack:       &record.Acknowledgement{Date: "2026-06-01", Acknowledged: true},
			checklist: empty,
			want:      Allow,
		},
		"ack, full checklist and history": {
			ack:       &record.Acknowledgement{Date: "2026-06-01", Acknowledged: true},
			checklist: done,
			history:   history,
			want:      Allow,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			records := store.NewRecords(store.NewMemory(), nil)
			if tc.ack != nil {
				if err := records.SaveAcknowledgement(*tc.ack); err != nil {
					t.Fatal(err)
				}
			}
			if err := records.SaveChecklist(tc.checklist); err != nil {
				t.Fatal(err)
			}
			if err := records.SaveHistory(tc.history); err != nil {
				t.Fatal(err)
			}
			g := New(records, &timeutil.Fixed{T: now})
			if got := g.Check(); got != tc.want {
				t.Fatalf("Check()=%v, want %v", got, tc.want)
			}
		})
	}
}
