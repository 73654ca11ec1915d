package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// quitSignals all request a graceful shutdown.
var quitSignals = []os.Signal{syscall.SIGQUIT, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

// shutdown runs its action at most once, no matter how often or from
// which goroutine it is requested.
type shutdown struct {
	once   sync.Once
	action func()
}

func newShutdown(action func()) *shutdown {
	return &shutdown{action: action}
}

// Request asks for shutdown.
func (s *shutdown) Request() {
	s.once.Do(s.action)
}

// handleQuitSignals forwards sigs to s until ctx is done.
// The returned function stops signal delivery.
func handleQuitSignals(ctx context.Context, s *shutdown, logger *slog.Logger, sigs ...os.Signal) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sigs...)

	go func() {
		for {
			select {
			case sig := <-sigCh:
				logger.Info("received signal, shutting down", "signal", sig)
				s.Request()
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
	}
}
