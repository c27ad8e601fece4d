package nouislider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// ErrNotLoaded is returned while the widget library is missing from the page.
var ErrNotLoaded = errors.New("noUiSlider is not loaded on the page")

// DefaultLoadPolicy retries for about five seconds.
func DefaultLoadPolicy() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = time.Second
	b.MaxElapsedTime = 5 * time.Second
	return b
}

// WaitLoaded calls loaded until it stops returning ErrNotLoaded, sleeping
// between attempts as policy says. Any other error ends the wait at once.
func WaitLoaded(ctx context.Context, loaded func() error, policy backoff.BackOff, logger *zap.SugaredLogger) error {
	logger = logger.Named("nouislider")

	attempt := 0
	op := func() error {
		attempt++
		err := loaded()
		if err != nil && !errors.Is(err, ErrNotLoaded) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		logger.Debugw("Waiting for noUiSlider", "attempt", attempt, "retryIn", wait)
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(policy, ctx), notify); err != nil {
		logger.Warnw("Gave up waiting for noUiSlider", "attempts", attempt, "error", err)
		return fmt.Errorf("wait for noUiSlider: %w", err)
	}

	logger.Debugw("noUiSlider is available", "attempts", attempt)
	return nil
}
