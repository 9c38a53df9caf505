package record

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAcknowledgementWireFormat(t *testing.T) {
	at := time.UnixMilli(1760486400123)
	ack := Acknowledgement{Date: "2026-10-15", Action: "Ship the login page", Acknowledged: true, Timestamp: At(at)}
	b, err := json.Marshal(ack)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"date":"2026-10-15","action":"Ship the login page","acknowledged":true,"timestamp":1760486400123}`
	if string(b) != want {
		t.Fatalf("got %s\nwant %s", b, want)
	}

	var back Acknowledgement
	if err := json.Unmarshal([]byte(`{"date":"2026-10-15","timestamp":1760486400123}`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Timestamp.Equal(at) {
		t.Fatalf("timestamp=%v, want %v", back.Timestamp.Time, at)
	}
	if !back.For("2026-10-15") || back.For("2026-10-16") {
		t.Fatalf("For() mismatch for %+v", back)
	}
	if (Acknowledgement{}).For("") {
		t.Fatalf("empty acknowledgement must not cover an empty date")
	}
}

func TestAcknowledgementAcknowledgedField(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want bool
	}{
		"absent":         {raw: `{"date":"2026-10-15","action":"Ship"}`, want: true},
		"explicit true":  {raw: `{"date":"2026-10-15","acknowledged":true}`, want: true},
		"explicit false": {raw: `{"date":"2026-10-15","acknowledged":false}`, want: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var ack Acknowledgement
			if err := json.Unmarshal([]byte(tc.raw), &ack); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if ack.Acknowledged != tc.want || ack.Covers("2026-10-15") != tc.want {
				t.Fatalf("Acknowledged=%v Covers=%v, want %v", ack.Acknowledged, ack.Covers("2026-10-15"), tc.want)
			}
		})
	}
}

func TestFreshAndClone(t *testing.T) {
	c := Fresh("2026-10-15", []string{"gym", "read"})
	if len(c.Items) != 2 || c.Items["gym"] || c.Items["read"] {
		t.Fatalf("unexpected fresh checklist %+v", c)
	}
	cp := c.Clone()
	cp.Items["gym"] = true
	if c.Items["gym"] {
		t.Fatalf("clone shares the items map")
	}
}

func TestUserConfigFields(t *testing.T) {
	cfg := Defaults()
	if !strings.HasPrefix(cfg.Body, "## I. WHO I AM") {
		t.Fatalf("default body not embedded: %q", cfg.Body[:20])
	}
	if err := cfg.Set("Phrase", "let us go"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok := cfg.Get("phrase"); !ok || v != "let us go" {
		t.Fatalf("get phrase=%q ok=%v", v, ok)
	}
	if err := cfg.Set("colour", "blue"); err == nil {
		t.Fatalf("expected error for unknown field")
	}

	partial := UserConfig{Name: "Ada"}.WithDefaults()
	if partial.Name != "Ada" || partial.Phrase != Defaults().Phrase {
		t.Fatalf("WithDefaults=%+v", partial)
	}
}
