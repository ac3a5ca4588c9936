package entity

import (
	"encoding/json"
	"errors"
)

type SignatureResult struct {
	TxID  string `json:"tx_id"`
	Valid bool   `json:"valid"`
}

type ZkResult struct {
	ProofID string `json:"proof_id"`
	Valid   bool   `json:"valid"`
}

type MerkleResult struct {
	Index int  `json:"index"`
	Valid bool `json:"valid"`
}

// Result is the typed outcome carried by a Solution.
type Result interface {
	isResult()
}

type PowResult struct{ Solution PowSolution }

type SignatureBatchResult struct{ Results []SignatureResult }

type ZkVerifyResult struct{ Result ZkResult }

type MerkleVerifyResult struct{ Results []MerkleResult }

func (PowResult) isResult()            {}
func (SignatureBatchResult) isResult() {}
func (ZkVerifyResult) isResult()       {}
func (MerkleVerifyResult) isResult()   {}

// Solution is attached to an outbound request. ChallengeID always equals the
// id of the challenge it was computed from.
type Solution struct {
	ChallengeID string
	Type        ChallengeType
	Result      Result
}

type solutionWire struct {
	ChallengeID string            `json:"challenge_id"`
	Type        ChallengeType     `json:"challenge_type"`
	Pow         *PowSolution      `json:"pow_solution,omitempty"`
	Signatures  []SignatureResult `json:"signature_results,omitempty"`
	Zk          *ZkResult         `json:"zk_result,omitempty"`
	Merkle      []MerkleResult    `json:"merkle_results,omitempty"`
}

var errNoResult = errors.New("solution has no result")

func (s Solution) MarshalJSON() ([]byte, error) {
	w := solutionWire{ChallengeID: s.ChallengeID, Type: s.Type}
	switch r := s.Result.(type) {
	case PowResult:
		w.Pow = &r.Solution
	case SignatureBatchResult:
		w.Signatures = r.Results
	case ZkVerifyResult:
		w.Zk = &r.Result
	case MerkleVerifyResult:
		w.Merkle = r.Results
	default:
		return nil, errNoResult
	}
	return json.Marshal(w)
}

func (s *Solution) UnmarshalJSON(b []byte) error {
	var w solutionWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*s = Solution{ChallengeID: w.ChallengeID, Type: w.Type}
	switch {
	case w.Pow != nil:
		s.Result = PowResult{Solution: *w.Pow}
	case w.Signatures != nil:
		s.Result = SignatureBatchResult{Results: w.Signatures}
	case w.Zk != nil:
		s.Result = ZkVerifyResult{Result: *w.Zk}
	case w.Merkle != nil:
		s.Result = MerkleVerifyResult{Results: w.Merkle}
	}
	return nil
}
