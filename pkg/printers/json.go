package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// JSON writes v indented. A nil writer means color.Output.
func JSON(w io.Writer, v any) error {
	if w == nil {
		w = color.Output
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
