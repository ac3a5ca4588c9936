package service

import "github.com/dayanaadylkhanova/nuw-solver/internal/entity"

// feeDiscounts maps work types to the discount they are expected to earn.
// Plain PoW is the zero-discount fallback.
var feeDiscounts = map[entity.ChallengeType]int{
	entity.TypeArgon2Pow:      0,
	entity.TypePqAssist:       0,
	entity.TypeMerkleVerify:   10,
	entity.TypeSignatureBatch: 15,
	entity.TypeZkVerify:       25,
}

// FeeDiscount returns the expected discount percent for t, 0 when unknown.
func FeeDiscount(t entity.ChallengeType) int {
	return feeDiscounts[t]
}
