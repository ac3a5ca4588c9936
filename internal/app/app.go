package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/dayanaadylkhanova/nuw-solver/internal/adapter/transport/rpc"
	"github.com/dayanaadylkhanova/nuw-solver/internal/entity"
)

type Mode string

const (
	ModeNuw Mode = "nuw"
	ModePow Mode = "pow"
)

// App runs the fetch -> solve -> submit cycle.
type App struct {
	log     *slog.Logger
	client  ChallengeClient
	solver  Solver
	mode    Mode
	timeout time.Duration
}

func New(log *slog.Logger, client ChallengeClient, solver Solver, mode Mode, solveTimeout time.Duration) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &App{log: log, client: client, solver: solver, mode: mode, timeout: solveTimeout}
}

// Solve fetches one challenge and solves it. ModePow uses the legacy
// endpoint; otherwise the solver's preferred type is sent as a hint.
func (a *App) Solve(ctx context.Context) (entity.Solution, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	var (
		id  string
		sol entity.Solution
		err error
	)
	start := time.Now()
	switch a.mode {
	case ModePow:
		var ch entity.PowChallenge
		if ch, err = a.client.FetchPowChallenge(ctx); err != nil {
			return entity.Solution{}, err
		}
		id = ch.ChallengeID
		sol, err = a.solver.SolvePow(ctx, ch)
	default:
		var ch entity.NuwChallenge
		if ch, err = a.client.FetchNuwChallenge(ctx, a.solver.PreferredType()); err != nil {
			return entity.Solution{}, err
		}
		id = ch.ChallengeID
		sol, err = a.solver.Solve(ctx, ch)
	}
	if err != nil {
		a.log.Warn("solve failed", slog.String("challenge_id", id), slog.String("kind", entity.Kind(err)), slog.Any("err", err))
		return entity.Solution{}, err
	}
	if sol.ChallengeID != id {
		return entity.Solution{}, fmt.Errorf("solution is for challenge %q, fetched %q", sol.ChallengeID, id)
	}
	a.log.Info("challenge solved",
		slog.String("challenge_id", id),
		slog.String("type", string(sol.Type)),
		slog.Duration("took", time.Since(start)),
	)
	return sol, nil
}

// Submit sends tx bare first. When the service answers that a challenge is
// required, it solves one and resubmits once. Any other failure is returned
// as is.
func (a *App) Submit(ctx context.Context, tx json.RawMessage) (string, error) {
	txID, err := a.client.SubmitTransaction(ctx, tx, nil)
	if err == nil {
		return txID, nil
	}
	if !rpc.IsChallengeRequired(err) {
		return "", err
	}
	a.log.Info("challenge required before submit")

	sol, err := a.Solve(ctx)
	if err != nil {
		return "", err
	}
	return a.client.SubmitTransaction(ctx, tx, &sol)
}

// Run is the CLI entry: without tx it prints a solution, with tx it prints
// the submitted transaction id. SIGINT/SIGTERM cancel the work.
func (a *App) Run(tx json.RawMessage, out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var result any
	if len(tx) == 0 {
		sol, err := a.Solve(ctx)
		if err != nil {
			return interrupted(ctx, err)
		}
		result = sol
	} else {
		txID, err := a.Submit(ctx, tx)
		if err != nil {
			return interrupted(ctx, err)
		}
		result = map[string]string{"tx_id": txID}
	}
	return json.NewEncoder(out).Encode(result)
}

// interrupted swallows the cancellation caused by a shutdown signal.
func interrupted(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(err, entity.ErrCancelled) {
		return nil
	}
	return err
}
