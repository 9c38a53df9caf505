// Package settings edits the contract document stored with the records.
package settings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/ackgate/pkg/app"
	"tableflip.dev/ackgate/pkg/printers"
	"tableflip.dev/ackgate/pkg/record"
)

var errBlank = errors.New("value can not be blank")

func output(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}

// Show prints the current document fields.
type Show struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (s *Show) Do(ctx context.Context) error {
	cfg := s.Service.UserConfig()
	if s.JSON {
		return printers.JSON(s.Out, cfg)
	}
	pp := printers.PrettyPrint{Out: s.Out}
	pp.Config(cfg)
	return nil
}

// Set overwrites one field.
type Set struct {
	Service *app.Service
	Field   string
	Value   string
	Out     io.Writer
}

func (s *Set) Do(ctx context.Context) error {
	if strings.TrimSpace(s.Value) == "" {
		return fmt.Errorf("set %s: %w", s.Field, errBlank)
	}
	cfg := s.Service.UserConfig()
	if err := cfg.Set(s.Field, s.Value); err != nil {
		return err
	}
	if err := s.Service.Records.SaveUserConfig(cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(output(s.Out), "%s updated\n", strings.ToLower(s.Field))
	return nil
}

// Reset restores the built-in document after a confirmation prompt.
type Reset struct {
	Service *app.Service
	// Yes skips the prompt.
	Yes bool
	Out io.Writer
}

func (r *Reset) Do(ctx context.Context) error {
	if !r.Yes {
		prompt := promptui.Prompt{
			Label:     "Restore the default contract text",
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				_, _ = color.New(color.Faint).Fprintln(output(r.Out), "left unchanged")
				return nil
			}
			return err
		}
	}
	if err := r.Service.Records.ResetUserConfig(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(output(r.Out), "contract reset to defaults")
	return nil
}

// Edit opens an interactive form over every field.
type Edit struct {
	Service *app.Service
	Out     io.Writer
}

func (e *Edit) Do(ctx context.Context) error {
	cfg := e.Service.UserConfig()
	form := Form(&cfg)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			_, _ = color.New(color.Faint).Fprintln(output(e.Out), "left unchanged")
			return nil
		}
		return err
	}
	if err := e.Service.Records.SaveUserConfig(cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(output(e.Out), "contract saved")
	return nil
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errBlank
	}
	return nil
}

// Form binds the document fields of cfg to a two page form.
func Form(cfg *record.UserConfig) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&cfg.Name).
				Validate(required),
			huh.NewInput().
				Title("Title").
				Value(&cfg.Title).
				Validate(required),
			huh.NewInput().
				Title("Closing").
				Value(&cfg.Closing),
			huh.NewInput().
				Title("Prompt").
				Description("Label above the commitment field.").
				Value(&cfg.Prompt),
			huh.NewInput().
				Title("Phrase").
				Description("Text typed verbatim under the phrase policy.").
				Value(&cfg.Phrase).
				Validate(required),
		).Title("Contract"),
		huh.NewGroup(
			huh.NewText().
				Title("Body").
				Value(&cfg.Body).
				Lines(14),
		).Title("Body"),
	).WithTheme(huh.ThemeDracula())
}
