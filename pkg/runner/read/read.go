package read

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/ackgate/pkg/app"
	"tableflip.dev/ackgate/pkg/contract"
	"tableflip.dev/ackgate/pkg/printers"
	"tableflip.dev/ackgate/pkg/timeutil"
)

// Read prints today's contract. It never touches the gate.
type Read struct {
	Service *app.Service
	// Markdown prints the source document instead of styled blocks.
	Markdown bool
	Out      io.Writer
}

func (r *Read) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not read, no service")
	}
	if r.Markdown {
		out := r.Out
		if out == nil {
			out = color.Output
		}
		doc := strings.Replace(r.Service.Document(), contract.DatePlaceholder, timeutil.FormatLong(r.Service.Now()), 1)
		_, err := fmt.Fprintln(out, doc)
		return err
	}
	pp := printers.PrettyPrint{Out: r.Out}
	pp.Contract(r.Service.Blocks())
	return nil
}
