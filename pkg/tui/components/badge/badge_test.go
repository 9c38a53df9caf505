package badge

import (
	"strings"
	"testing"

	"tableflip.dev/ackgate/pkg/ritual"
)

func TestColorEndpoints(t *testing.T) {
	if got := Color(ritual.Progress{Completed: 0, Total: 8}); got != "#e06c75" {
		t.Fatalf("empty color=%s", got)
	}
	if got := Color(ritual.Progress{Completed: 8, Total: 8}); got != "#98c379" {
		t.Fatalf("full color=%s", got)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		p    ritual.Progress
		want string
	}{
		{ritual.Progress{Completed: 0, Total: 8}, "░░░░░░░░"},
		{ritual.Progress{Completed: 4, Total: 8}, "████░░░░"},
		{ritual.Progress{Completed: 8, Total: 8}, "████████"},
		{ritual.Progress{}, "░░░░░░░░"},
	}
	for _, tc := range tests {
		if got := Bar(tc.p, 8); got != tc.want {
			t.Fatalf("Bar(%+v)=%q, want %q", tc.p, got, tc.want)
		}
	}
	if !strings.Contains(Render(ritual.Progress{Completed: 3, Total: 8}, 8), "3/8") {
		t.Fatalf("render missing counts")
	}
}
