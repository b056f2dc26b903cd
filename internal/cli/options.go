package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// OutputOptions controls how one-shot commands print.
type OutputOptions struct {
	JSON bool
}

func addOutputArg(cmd *cobra.Command, oo *OutputOptions) {
	cmd.Flags().BoolVar(&oo.JSON, "json", false, "Output as JSON.")
}

// HandleError prints err as JSON when --json is set so scripts always get a
// parseable line.
func (o *OutputOptions) HandleError(w io.Writer, err error) error {
	if o.JSON && err != nil {
		b, mErr := json.Marshal(map[string]string{"error": err.Error()})
		if mErr != nil {
			return mErr
		}
		_, _ = fmt.Fprintln(w, string(b))
		return nil
	}
	return err
}

func (o *OutputOptions) printJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
