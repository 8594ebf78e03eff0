package cmd

import (
	"fmt"
	"io"

	clierrors "github.com/opsgrove/hostreport/internal/errors"
)

func printCommandError(w io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(w, err)
	if suggestion := clierrors.UserSuggestion(err); suggestion != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", suggestion)
	}
}
