package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/honeycarbs/career-navigator/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Func adapts a plain cleanup function to Stoppable
type Func func()

func (f Func) Shutdown(context.Context) error {
	f()
	return nil
}

// Graceful waits for one of signals and stops every target in order within timeout
func Graceful(signals []os.Signal, timeout time.Duration, log *logging.Logger, targets ...Stoppable) {
	sigCtx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()

	<-sigCtx.Done()
	logging.OrNop(log).Info("shutdown signal received")

	Stop(timeout, log, targets...)
}

// Stop shuts targets down in order, collecting their errors
func Stop(timeout time.Duration, log *logging.Logger, targets ...Stoppable) error {
	log = logging.OrNop(log)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	for _, t := range targets {
		if t == nil {
			continue
		}
		if err := t.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		log.Warn("graceful shutdown completed with error", "err", err)
	} else {
		log.Info("graceful shutdown completed successfully")
	}
	return err
}
