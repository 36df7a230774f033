package client

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/sbilibin2017/gw-puzzle-ledger/internal/logger"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/puzzle"
)

const DefaultRetryDelay = time.Second

// Miner repeatedly fetches a puzzle, solves it and redeems it.
type Miner struct {
	api      *API
	userID   string
	password string
	delay    time.Duration
	onMined  func(*MineResult)
}

type MinerOption func(*Miner)

// WithRetryDelay sets the pause after a failed round.
func WithRetryDelay(d time.Duration) MinerOption {
	return func(m *Miner) {
		if d > 0 {
			m.delay = d
		}
	}
}

// WithOnMined registers a callback for every successful redemption.
func WithOnMined(fn func(*MineResult)) MinerOption {
	return func(m *Miner) {
		m.onMined = fn
	}
}

func NewMiner(api *API, userID, password string, opts ...MinerOption) *Miner {
	m := &Miner{
		api:      api,
		userID:   userID,
		password: password,
		delay:    DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run mines until ctx is cancelled and then returns ctx.Err().
func (m *Miner) Run(ctx context.Context) error {
	b := backoff.WithContext(backoff.NewConstantBackOff(m.delay), ctx)

	notify := func(err error, wait time.Duration) {
		logger.Log.Warnw("mining round failed",
			"error", err,
			"retry_in", wait,
		)
	}

	for {
		err := backoff.RetryNotify(func() error { return m.round(ctx) }, b, notify)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			return err
		}
	}
}

func (m *Miner) round(ctx context.Context) error {
	p, err := m.api.Problem(ctx, m.userID, m.password)
	if err != nil {
		return err
	}

	answer, err := puzzle.Evaluate(p.Problem)
	if err != nil {
		return fmt.Errorf("solve %q: %w", p.Problem, err)
	}

	res, err := m.api.Mine(ctx, m.userID, m.password, p.ProblemID, answer)
	if err != nil {
		return err
	}

	logger.Log.Infow("mined",
		"problem", p.Problem,
		"reward", res.Reward,
		"balance", res.Balance,
	)
	if m.onMined != nil {
		m.onMined(res)
	}
	return nil
}
