package check

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/ackgate/pkg/app"
	"tableflip.dev/ackgate/pkg/printers"
)

// Check ticks or clears one ritual item for today.
type Check struct {
	Service *app.Service
	ID      string
	Off     bool
	JSON    bool
	Out     io.Writer
}

func (c *Check) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not check, no service")
	}
	if _, err := c.Service.Toggle(c.ID, !c.Off); err != nil {
		return fmt.Errorf("check %s: %w", c.ID, err)
	}
	st, err := c.Service.Status()
	if err != nil {
		return err
	}
	if c.JSON {
		return printers.JSON(c.Out, st)
	}
	pp := printers.PrettyPrint{Out: c.Out}
	pp.Status(st)
	return nil
}
