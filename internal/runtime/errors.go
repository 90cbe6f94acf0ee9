package runtime

import (
	"fmt"
	"io"

	"github.com/manav03panchal/track/internal/errors"
)

// PrintError renders err for the user. With JSON output the error document
// goes to the formatter's writer; otherwise "Error: ..." plus a suggestion is
// written to stderr. c may be nil when the context failed to initialize.
func PrintError(c *Context, err error, stderr io.Writer) {
	if err == nil {
		return
	}

	if c != nil && c.IsJSON() {
		if jsonErr := c.JSONFormatter().PrintError(errors.Classify(err).String(), err.Error(), errors.GetSuggestion(err)); jsonErr == nil {
			return
		}
	}

	msg := errors.FormatUserError(err)
	if c != nil && c.Debug {
		msg = errors.FormatDebugError(err)
	}
	fmt.Fprintf(stderr, "Error: %s\n", msg)
}
