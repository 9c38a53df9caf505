package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	want := []string{"ui", "status", "check", "history", "read", "config", "info", "autostart", "mcp", "version", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Fatalf("missing command %q: %v", name, err)
		}
	}
	for _, name := range []string{"show", "set", "reset", "edit"} {
		if cmd, _, err := root.Find([]string{"config", name}); err != nil || cmd.Name() != name {
			t.Fatalf("missing config %q: %v", name, err)
		}
	}
	if root.PersistentFlags().Lookup("log-level") == nil {
		t.Fatal("missing --log-level")
	}
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out, errOut bytes.Buffer
	root := New()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, errOut.String())
	}
	return out.String()
}

func TestConfigSetThenRead(t *testing.T) {
	t.Setenv("ACKGATE_CONFIG_PATH", t.TempDir())
	t.Setenv("ACKGATE_PATH", t.TempDir())

	run(t, "config", "set", "name", "Ada Lovelace")
	got := run(t, "read", "--markdown")
	if !strings.Contains(got, "**For:** Ada Lovelace") {
		t.Fatalf("read=%s", got)
	}
	if strings.Contains(got, "{{DATE}}") {
		t.Fatalf("placeholder left in %s", got)
	}

	run(t, "config", "reset", "--yes")
	if got := run(t, "read", "--markdown"); strings.Contains(got, "Ada Lovelace") {
		t.Fatalf("reset kept name: %s", got)
	}
}
