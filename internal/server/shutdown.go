package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyShutdown returns a context that is cancelled on an interrupt or
// terminate signal.
func notifyShutdown(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
