package status

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/ackgate/pkg/app"
	"tableflip.dev/ackgate/pkg/printers"
)

type Status struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (s *Status) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not get status, no service")
	}
	st, err := s.Service.Status()
	if err != nil {
		return err
	}
	if s.JSON {
		return printers.JSON(s.Out, st)
	}
	pp := printers.PrettyPrint{Out: s.Out}
	pp.Status(st)
	return nil
}
