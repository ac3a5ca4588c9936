package app

import (
	"context"
	"encoding/json"

	"github.com/dayanaadylkhanova/nuw-solver/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=./app_mock.go -package=app

type ChallengeClient interface {
	FetchPowChallenge(ctx context.Context) (entity.PowChallenge, error)
	FetchNuwChallenge(ctx context.Context, preferred entity.ChallengeType) (entity.NuwChallenge, error)
	SubmitTransaction(ctx context.Context, tx json.RawMessage, sol *entity.Solution) (string, error)
}

type Solver interface {
	Solve(ctx context.Context, ch entity.NuwChallenge) (entity.Solution, error)
	SolvePow(ctx context.Context, ch entity.PowChallenge) (entity.Solution, error)
	PreferredType() entity.ChallengeType
}
