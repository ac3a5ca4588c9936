package entity

// PowParams are the Argon2id puzzle parameters. Nonce is hex on the wire and is
// used as the Argon2 salt.
type PowParams struct {
	Nonce      string `json:"nonce"`
	Difficulty int    `json:"difficulty"`
	MemoryCost uint32 `json:"memory_cost"`
	TimeCost   uint32 `json:"time_cost"`
}

// PowChallenge is what the legacy get_pow_challenge endpoint returns.
type PowChallenge struct {
	ChallengeID string `json:"challenge_id"`
	ExpiresAt   int64  `json:"expires_at"`
	PowParams
}

type PowSolution struct {
	Counter string `json:"counter"`
	Digest  string `json:"digest"`
}
