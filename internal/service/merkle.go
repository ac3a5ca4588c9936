package service

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dayanaadylkhanova/nuw-solver/internal/entity"
)

// VerifyMerkle folds the proof path from the leaf up and compares the result
// with the root. Bit i of Index set means the node at level i is the right
// operand. Index bits above the proof length must be zero. Malformed input is
// simply a failed proof.
func VerifyMerkle(task entity.MerkleProofTask) bool {
	root, err := DecodeHex32(task.Root)
	if err != nil {
		return false
	}
	current, err := DecodeHex32(task.Leaf)
	if err != nil {
		return false
	}
	depth := len(task.Proof)
	if depth < 64 && task.Index>>uint(depth) != 0 {
		return false
	}

	var buf [64]byte
	for i, h := range task.Proof {
		sibling, err := DecodeHex32(h)
		if err != nil {
			return false
		}
		if i < 64 && (task.Index>>uint(i))&1 == 1 {
			copy(buf[:32], sibling[:])
			copy(buf[32:], current[:])
		} else {
			copy(buf[:32], current[:])
			copy(buf[32:], sibling[:])
		}
		current = sha256.Sum256(buf[:])
	}
	return subtle.ConstantTimeCompare(current[:], root[:]) == 1
}
