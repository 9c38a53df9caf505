package settings

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/ackgate/pkg/app"
	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestSetShowReset(t *testing.T) {
	ctx := context.Background()
	svc := app.New(store.NewMemory(), app.Options{})
	var buf bytes.Buffer

	set := &Set{Service: svc, Field: "Name", Value: "Ada", Out: &buf}
	if err := set.Do(ctx); err != nil {
		t.Fatal(err)
	}
	if got := svc.UserConfig().Name; got != "Ada" {
		t.Fatalf("name=%q", got)
	}

	buf.Reset()
	if err := (&Show{Service: svc, Out: &buf}).Do(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Ada") {
		t.Fatalf("show=%s", buf.String())
	}

	if err := (&Reset{Service: svc, Yes: true, Out: &buf}).Do(ctx); err != nil {
		t.Fatal(err)
	}
	if got := svc.UserConfig().Name; got != record.Defaults().Name {
		t.Fatalf("name after reset=%q", got)
	}
}

func TestSetRejects(t *testing.T) {
	ctx := context.Background()
	svc := app.New(store.NewMemory(), app.Options{})
	var buf bytes.Buffer

	if err := (&Set{Service: svc, Field: "phrase", Value: "  ", Out: &buf}).Do(ctx); !errors.Is(err, errBlank) {
		t.Fatalf("blank err=%v", err)
	}
	if err := (&Set{Service: svc, Field: "colour", Value: "red", Out: &buf}).Do(ctx); err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestShowJSON(t *testing.T) {
	svc := app.New(store.NewMemory(), app.Options{})
	var buf bytes.Buffer
	if err := (&Show{Service: svc, JSON: true, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"phrase": "I acknowledge that I will begin now."`) {
		t.Fatalf("json=%s", buf.String())
	}
}
