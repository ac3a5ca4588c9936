package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dayanaadylkhanova/nuw-solver/internal/entity"
)

const NonceLen = 32

// Argon2Solver searches for a counter whose Argon2id digest has the required
// number of leading zero bits. The search is sequential by construction.
type Argon2Solver struct {
	prim Primitives
	settings
}

func NewArgon2Solver(prim Primitives, opts ...Option) *Argon2Solver {
	return &Argon2Solver{prim: prim, settings: newSettings(opts)}
}

func (s *Argon2Solver) Solve(ctx context.Context, ch entity.PowChallenge) (entity.PowSolution, error) {
	if entity.Expired(ch.ExpiresAt, s.now()) {
		return entity.PowSolution{}, fmt.Errorf("%w: %s", entity.ErrExpired, ch.ChallengeID)
	}
	salt, err := DecodeHex(ch.Nonce)
	if err != nil {
		return entity.PowSolution{}, fmt.Errorf("%w: nonce: %v", entity.ErrInvalid, err)
	}
	if len(salt) != NonceLen {
		return entity.PowSolution{}, fmt.Errorf("%w: nonce is %d bytes, want %d", entity.ErrInvalid, len(salt), NonceLen)
	}
	if ch.Difficulty < 0 {
		return entity.PowSolution{}, fmt.Errorf("%w: negative difficulty %d", entity.ErrInvalid, ch.Difficulty)
	}
	if err := ctx.Err(); err != nil {
		return entity.PowSolution{}, fmt.Errorf("%w: %v", entity.ErrCancelled, err)
	}

	log := s.log.With(slog.String("challenge_id", ch.ChallengeID), slog.Int("difficulty", ch.Difficulty))
	for c := uint64(0); c < s.maxAttempts; c++ {
		if c > 0 && c%s.powYieldEvery == 0 {
			if err := s.yield.Yield(ctx); err != nil {
				return entity.PowSolution{}, fmt.Errorf("%w: after %d attempts: %v", entity.ErrCancelled, c, err)
			}
			if entity.Expired(ch.ExpiresAt, s.now()) {
				return entity.PowSolution{}, fmt.Errorf("%w: %s after %d attempts", entity.ErrExpired, ch.ChallengeID, c)
			}
			log.Debug("searching counter", slog.Uint64("attempt", c))
		}

		digest, err := s.prim.Argon2id(BE64(c), salt, ch.TimeCost, ch.MemoryCost)
		if err != nil {
			return entity.PowSolution{}, fmt.Errorf("%w: argon2id: %v", entity.ErrPrimitive, err)
		}
		if HasRequiredZeroBits(digest, ch.Difficulty) {
			log.Info("pow solved", slog.Uint64("attempt", c), slog.Int("zero_bits", leadingZeroBits(digest)))
			return entity.PowSolution{Counter: EncodeHex(BE64(c)), Digest: EncodeHex(digest)}, nil
		}
	}
	return entity.PowSolution{}, fmt.Errorf("%w: no counter below %d meets difficulty %d", entity.ErrSolveFailed, s.maxAttempts, ch.Difficulty)
}
