package entity

import (
	"encoding/json"
	"time"
)

type ChallengeType string

const (
	TypeArgon2Pow      ChallengeType = "ARGON2_POW"
	TypeSignatureBatch ChallengeType = "SIGNATURE_BATCH"
	TypeZkVerify       ChallengeType = "ZK_VERIFY"
	TypePqAssist       ChallengeType = "PQ_ASSIST"
	TypeMerkleVerify   ChallengeType = "MERKLE_VERIFY"
)

// Expired reports whether a challenge expiring at expiresAt is dead at now.
func Expired(expiresAt int64, now time.Time) bool {
	return now.Unix() >= expiresAt
}

type SignatureAlgorithm string

const (
	AlgEd25519    SignatureAlgorithm = "ed25519"
	AlgDilithium2 SignatureAlgorithm = "dilithium2"
)

type PendingSignature struct {
	TxID      string             `json:"tx_id"`
	Message   string             `json:"message"`
	Signature string             `json:"signature"`
	PublicKey string             `json:"public_key"`
	Algorithm SignatureAlgorithm `json:"algorithm"`
}

type MerkleProofTask struct {
	Root  string   `json:"root"`
	Leaf  string   `json:"leaf"`
	Proof []string `json:"proof"`
	Index uint64   `json:"index"`
}

type ZkProofTask struct {
	ProofID         string   `json:"proof_id"`
	Proof           string   `json:"proof"`
	PublicInputs    []string `json:"public_inputs,omitempty"`
	VerificationKey string   `json:"verification_key,omitempty"`
}

// Payload is the type-specific part of a NuwChallenge. Exactly one
// implementation matches each ChallengeType.
type Payload interface {
	isPayload()
}

type PowPayload struct{ Params PowParams }

type SignatureBatchPayload struct{ Items []PendingSignature }

type ZkPayload struct{ Task ZkProofTask }

type MerklePayload struct{ Tasks []MerkleProofTask }

func (PowPayload) isPayload()            {}
func (SignatureBatchPayload) isPayload() {}
func (ZkPayload) isPayload()             {}
func (MerklePayload) isPayload()         {}

// NuwChallenge is a network-utility-work challenge. Payload is nil when the
// field matching Type was absent on the wire.
type NuwChallenge struct {
	ChallengeID        string
	ExpiresAt          int64
	Type               ChallengeType
	FeeDiscountPercent int
	Payload            Payload
}

type nuwWire struct {
	ChallengeID        string             `json:"challenge_id"`
	ExpiresAt          int64              `json:"expires_at"`
	Type               ChallengeType      `json:"challenge_type"`
	FeeDiscountPercent int                `json:"fee_discount_percent"`
	Pow                *PowParams         `json:"pow_challenge,omitempty"`
	SignatureBatch     []PendingSignature `json:"signature_batch,omitempty"`
	Zk                 *ZkProofTask       `json:"zk_task,omitempty"`
	Merkle             []MerkleProofTask  `json:"merkle_tasks,omitempty"`
}

func (c *NuwChallenge) UnmarshalJSON(b []byte) error {
	var w nuwWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*c = NuwChallenge{
		ChallengeID:        w.ChallengeID,
		ExpiresAt:          w.ExpiresAt,
		Type:               w.Type,
		FeeDiscountPercent: w.FeeDiscountPercent,
	}
	// поле, не соответствующее типу, игнорируется
	switch w.Type {
	case TypeArgon2Pow, TypePqAssist:
		if w.Pow != nil {
			c.Payload = PowPayload{Params: *w.Pow}
		}
	case TypeSignatureBatch:
		if w.SignatureBatch != nil {
			c.Payload = SignatureBatchPayload{Items: w.SignatureBatch}
		}
	case TypeZkVerify:
		if w.Zk != nil {
			c.Payload = ZkPayload{Task: *w.Zk}
		}
	case TypeMerkleVerify:
		if w.Merkle != nil {
			c.Payload = MerklePayload{Tasks: w.Merkle}
		}
	}
	return nil
}

func (c NuwChallenge) MarshalJSON() ([]byte, error) {
	w := nuwWire{
		ChallengeID:        c.ChallengeID,
		ExpiresAt:          c.ExpiresAt,
		Type:               c.Type,
		FeeDiscountPercent: c.FeeDiscountPercent,
	}
	switch p := c.Payload.(type) {
	case PowPayload:
		w.Pow = &p.Params
	case SignatureBatchPayload:
		w.SignatureBatch = p.Items
	case ZkPayload:
		w.Zk = &p.Task
	case MerklePayload:
		w.Merkle = p.Tasks
	}
	return json.Marshal(w)
}
