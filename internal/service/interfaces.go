package service

import (
	"context"

	"github.com/dayanaadylkhanova/nuw-solver/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=./service_mock.go -package=service

// Primitives are the cryptographic routines the solvers need. Implementations
// report missing capability through errors, never panics.
type Primitives interface {
	Ready() bool
	Argon2id(password, salt []byte, timeCost, memoryCost uint32) ([]byte, error)
	VerifyEd25519(publicKey, message, signature []byte) (bool, error)
	VerifyDilithium2(publicKey, message, signature []byte) (bool, error)
}

type ZkVerifier interface {
	VerifyProof(ctx context.Context, task entity.ZkProofTask) (bool, error)
}

// Yielder hands control back to the host between chunks of work.
type Yielder interface {
	Yield(ctx context.Context) error
}
