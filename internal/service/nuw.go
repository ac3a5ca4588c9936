package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dayanaadylkhanova/nuw-solver/internal/entity"
)

// Dispatcher routes a NUW challenge to the solver or verifier for its type.
type Dispatcher struct {
	prim   Primitives
	pow    *Argon2Solver
	sigs   *SignatureBatch
	zk     ZkVerifier
	merkle func(entity.MerkleProofTask) bool
	settings
}

// NewDispatcher wires the solvers around prim. A nil zk falls back to
// PlaceholderZk.
func NewDispatcher(prim Primitives, zk ZkVerifier, opts ...Option) *Dispatcher {
	st := newSettings(opts)
	if zk == nil {
		zk = NewPlaceholderZk(st.log)
	}
	return &Dispatcher{
		prim:     prim,
		pow:      &Argon2Solver{prim: prim, settings: st},
		sigs:     &SignatureBatch{prim: prim, settings: st},
		zk:       zk,
		merkle:   VerifyMerkle,
		settings: st,
	}
}

func (d *Dispatcher) Solve(ctx context.Context, ch entity.NuwChallenge) (entity.Solution, error) {
	if entity.Expired(ch.ExpiresAt, d.now()) {
		return entity.Solution{}, fmt.Errorf("%w: %s", entity.ErrExpired, ch.ChallengeID)
	}
	log := d.log.With(slog.String("challenge_id", ch.ChallengeID), slog.String("type", string(ch.Type)))
	log.Debug("dispatching challenge", slog.Int("fee_discount_percent", ch.FeeDiscountPercent))

	sol := entity.Solution{ChallengeID: ch.ChallengeID, Type: ch.Type}
	switch ch.Type {
	case entity.TypeArgon2Pow, entity.TypePqAssist:
		p, ok := ch.Payload.(entity.PowPayload)
		if !ok {
			return entity.Solution{}, missingPayload(ch)
		}
		if ch.Type == entity.TypePqAssist {
			log.Warn("pq assist not implemented, solving argon2 pow instead")
		}
		res, err := d.pow.Solve(ctx, entity.PowChallenge{
			ChallengeID: ch.ChallengeID,
			ExpiresAt:   ch.ExpiresAt,
			PowParams:   p.Params,
		})
		if err != nil {
			return entity.Solution{}, err
		}
		sol.Result = entity.PowResult{Solution: res}

	case entity.TypeSignatureBatch:
		p, ok := ch.Payload.(entity.SignatureBatchPayload)
		if !ok || len(p.Items) == 0 {
			return entity.Solution{}, missingPayload(ch)
		}
		res, err := d.sigs.Verify(ctx, p.Items)
		if err != nil {
			return entity.Solution{}, err
		}
		sol.Result = entity.SignatureBatchResult{Results: res}

	case entity.TypeMerkleVerify:
		p, ok := ch.Payload.(entity.MerklePayload)
		if !ok || len(p.Tasks) == 0 {
			return entity.Solution{}, missingPayload(ch)
		}
		res, err := d.verifyMerkle(ctx, p.Tasks)
		if err != nil {
			return entity.Solution{}, err
		}
		sol.Result = entity.MerkleVerifyResult{Results: res}

	case entity.TypeZkVerify:
		p, ok := ch.Payload.(entity.ZkPayload)
		if !ok {
			return entity.Solution{}, missingPayload(ch)
		}
		valid, err := d.zk.VerifyProof(ctx, p.Task)
		if err != nil {
			return entity.Solution{}, fmt.Errorf("%w: zk verify: %v", entity.ErrPrimitive, err)
		}
		sol.Result = entity.ZkVerifyResult{Result: entity.ZkResult{ProofID: p.Task.ProofID, Valid: valid}}

	default:
		return entity.Solution{}, fmt.Errorf("%w: %q", entity.ErrUnsupportedType, ch.Type)
	}

	log.Info("challenge solved")
	return sol, nil
}

// SolvePow answers a challenge from the legacy single-type endpoint.
func (d *Dispatcher) SolvePow(ctx context.Context, ch entity.PowChallenge) (entity.Solution, error) {
	res, err := d.pow.Solve(ctx, ch)
	if err != nil {
		return entity.Solution{}, err
	}
	return entity.Solution{
		ChallengeID: ch.ChallengeID,
		Type:        entity.TypeArgon2Pow,
		Result:      entity.PowResult{Solution: res},
	}, nil
}

func (d *Dispatcher) verifyMerkle(ctx context.Context, tasks []entity.MerkleProofTask) ([]entity.MerkleResult, error) {
	out := make([]entity.MerkleResult, 0, len(tasks))
	for i, t := range tasks {
		out = append(out, entity.MerkleResult{Index: i, Valid: d.merkle(t)})
		if (i+1)%d.sigYieldEvery == 0 {
			if err := d.yield.Yield(ctx); err != nil {
				return nil, fmt.Errorf("%w: after %d of %d proofs: %v", entity.ErrCancelled, i+1, len(tasks), err)
			}
		}
	}
	return out, nil
}

// AvailableTypes lists the challenge types this client can solve right now.
// Argon2 PoW is always there. Placeholder paths are never advertised.
func (d *Dispatcher) AvailableTypes() []entity.ChallengeType {
	types := []entity.ChallengeType{entity.TypeArgon2Pow}
	if d.prim.Ready() {
		types = append(types, entity.TypeSignatureBatch, entity.TypeMerkleVerify)
	}
	return types
}

// PreferredType is the available type with the largest fee discount.
func (d *Dispatcher) PreferredType() entity.ChallengeType {
	best := entity.TypeArgon2Pow
	for _, t := range d.AvailableTypes() {
		if FeeDiscount(t) > FeeDiscount(best) {
			best = t
		}
	}
	return best
}

func missingPayload(ch entity.NuwChallenge) error {
	return fmt.Errorf("%w: %s challenge %s has no matching payload", entity.ErrInvalid, ch.Type, ch.ChallengeID)
}
