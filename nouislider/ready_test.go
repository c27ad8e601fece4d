//go:build !wasm
// +build !wasm

package nouislider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-nouislider/nouislider"
)

type WaitLoadedTestSuite struct {
	suite.Suite

	calls  int
	policy backoff.BackOff
}

func (s *WaitLoadedTestSuite) SetupTest() {
	s.calls = 0
	s.policy = backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), 5)
}

// loadedAfter reports the library missing for the first n calls.
func (s *WaitLoadedTestSuite) loadedAfter(n int) func() error {
	return func() error {
		s.calls++
		if s.calls <= n {
			return nouislider.ErrNotLoaded
		}
		return nil
	}
}

func (s *WaitLoadedTestSuite) TestAlreadyLoaded() {
	err := nouislider.WaitLoaded(context.Background(), s.loadedAfter(0), s.policy, zap.NewNop().Sugar())

	s.Require().NoError(err)
	s.Equal(1, s.calls)
}

func (s *WaitLoadedTestSuite) TestLoadsLater() {
	err := nouislider.WaitLoaded(context.Background(), s.loadedAfter(3), s.policy, zap.NewNop().Sugar())

	s.Require().NoError(err)
	s.Equal(4, s.calls)
}

func (s *WaitLoadedTestSuite) TestGivesUp() {
	err := nouislider.WaitLoaded(context.Background(), s.loadedAfter(100), s.policy, zap.NewNop().Sugar())

	s.Require().ErrorIs(err, nouislider.ErrNotLoaded)
	s.Equal(6, s.calls)
}

func (s *WaitLoadedTestSuite) TestOtherErrorsStopAtOnce() {
	broken := errors.New("document is gone")
	err := nouislider.WaitLoaded(context.Background(), func() error {
		s.calls++
		return broken
	}, s.policy, zap.NewNop().Sugar())

	s.Require().ErrorIs(err, broken)
	s.Equal(1, s.calls)
}

func (s *WaitLoadedTestSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := nouislider.WaitLoaded(ctx, s.loadedAfter(100), s.policy, zap.NewNop().Sugar())

	s.Require().Error(err)
	s.LessOrEqual(s.calls, 1)
}

func TestWaitLoadedTestSuite(t *testing.T) {
	suite.Run(t, new(WaitLoadedTestSuite))
}
