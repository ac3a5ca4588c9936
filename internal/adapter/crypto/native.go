package crypto

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/cloudflare/circl/sign/dilithium/mode2"
	"golang.org/x/crypto/argon2"
)

const (
	argonThreads = 1
	argonKeyLen  = 32
	// argon2 needs at least 8 KiB per lane.
	minMemoryKiB = 8 * argonThreads

	DefaultMaxMemoryKiB = 1 << 20 // 1 GiB
)

var ErrUnavailable = errors.New("primitive unavailable")

// Native provides the primitives in-process. Ready gates the signature
// routines; Argon2id is always usable. Dilithium2 verification is only done
// when explicitly enabled.
type Native struct {
	ready        bool
	pq           bool
	maxMemoryKiB uint32
}

type NativeOption func(*Native)

// WithMaxMemoryKiB caps the Argon2id memory cost a challenge may ask for.
func WithMaxMemoryKiB(kib uint32) NativeOption {
	return func(n *Native) {
		if kib >= minMemoryKiB {
			n.maxMemoryKiB = kib
		}
	}
}

func NewNative(ready, pq bool, opts ...NativeOption) *Native {
	n := &Native{ready: ready, pq: pq, maxMemoryKiB: DefaultMaxMemoryKiB}
	for _, o := range opts {
		o(n)
	}
	return n
}

func (n *Native) Ready() bool { return n.ready }

func (n *Native) Argon2id(password, salt []byte, timeCost, memoryCost uint32) (digest []byte, err error) {
	if timeCost < 1 {
		return nil, fmt.Errorf("argon2id: time cost %d, want >= 1", timeCost)
	}
	if memoryCost < minMemoryKiB {
		return nil, fmt.Errorf("argon2id: memory cost %d KiB, want >= %d", memoryCost, minMemoryKiB)
	}
	// out of memory is fatal, recover below does not catch it
	if memoryCost > n.maxMemoryKiB {
		return nil, fmt.Errorf("argon2id: memory cost %d KiB exceeds limit %d", memoryCost, n.maxMemoryKiB)
	}
	defer func() {
		if r := recover(); r != nil {
			digest, err = nil, fmt.Errorf("argon2id: %v", r)
		}
	}()
	return argon2.IDKey(password, salt, timeCost, memoryCost, argonThreads, argonKeyLen), nil
}

func (n *Native) VerifyEd25519(publicKey, message, signature []byte) (bool, error) {
	if !n.ready {
		return false, fmt.Errorf("ed25519: %w", ErrUnavailable)
	}
	if len(publicKey) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false, nil
	}
	return ed25519.Verify(publicKey, message, signature), nil
}

func (n *Native) VerifyDilithium2(publicKey, message, signature []byte) (bool, error) {
	if !n.ready || !n.pq {
		return false, fmt.Errorf("dilithium2: %w", ErrUnavailable)
	}
	if len(publicKey) != mode2.PublicKeySize || len(signature) != mode2.SignatureSize {
		return false, nil
	}
	var pk mode2.PublicKey
	if err := pk.UnmarshalBinary(publicKey); err != nil {
		return false, nil
	}
	return mode2.Verify(&pk, message, signature), nil
}
