package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sant0-9/reformulator/internal/tui"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := exitCode(newRootCmd().ExecuteContext(ctx), os.Stderr)
	stop()
	os.Exit(code)
}

// exitCode reports err on w. A cancelled run exits quietly with 130.
func exitCode(err error, w io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		fmt.Fprint(w, tui.RenderError(err))
		return 1
	}
}
