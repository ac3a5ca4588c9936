package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dayanaadylkhanova/nuw-solver/internal/entity"
)

// SignatureBatch verifies pending signatures one by one. A bad item is
// recorded as invalid and never stops the batch. A yield point follows every
// item, the last one included.
type SignatureBatch struct {
	prim Primitives
	settings
}

func NewSignatureBatch(prim Primitives, opts ...Option) *SignatureBatch {
	return &SignatureBatch{prim: prim, settings: newSettings(opts)}
}

func (b *SignatureBatch) Verify(ctx context.Context, items []entity.PendingSignature) ([]entity.SignatureResult, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty signature batch", entity.ErrInvalid)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrCancelled, err)
	}

	out := make([]entity.SignatureResult, 0, len(items))
	for i, it := range items {
		out = append(out, entity.SignatureResult{TxID: it.TxID, Valid: b.verifyOne(it)})

		if (i+1)%b.sigYieldEvery == 0 {
			if err := b.yield.Yield(ctx); err != nil {
				return nil, fmt.Errorf("%w: after %d of %d items: %v", entity.ErrCancelled, i+1, len(items), err)
			}
		}
	}
	return out, nil
}

func (b *SignatureBatch) verifyOne(it entity.PendingSignature) bool {
	pub, err := DecodeHex(it.PublicKey)
	if err != nil {
		return false
	}
	msg, err := DecodeHex(it.Message)
	if err != nil {
		return false
	}
	sig, err := DecodeHex(it.Signature)
	if err != nil {
		return false
	}

	var ok bool
	switch it.Algorithm {
	case entity.AlgEd25519:
		ok, err = b.prim.VerifyEd25519(pub, msg, sig)
	case entity.AlgDilithium2:
		ok, err = b.prim.VerifyDilithium2(pub, msg, sig)
	default:
		b.log.Debug("unknown signature algorithm", slog.String("tx_id", it.TxID), slog.String("algorithm", string(it.Algorithm)))
		return false
	}
	if err != nil {
		b.log.Debug("signature not verified", slog.String("tx_id", it.TxID), slog.Any("err", err))
		return false
	}
	return ok
}
