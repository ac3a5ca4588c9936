package service

import "math/bits"

func leadingZeroBits(b []byte) int {
	total := 0
	for _, by := range b {
		if by == 0 {
			total += 8
			continue
		}
		total += bits.LeadingZeros8(by)
		break
	}
	return total
}

// HasRequiredZeroBits reports whether digest starts with requiredBits zero bits.
// Whole bytes past the end of digest are not checked and a remainder byte past
// the end counts as satisfied.
func HasRequiredZeroBits(digest []byte, requiredBits int) bool {
	if requiredBits <= 0 {
		return true
	}
	fullBytes := requiredBits / 8
	remainderBits := requiredBits % 8

	for i := 0; i < fullBytes && i < len(digest); i++ {
		if digest[i] != 0 {
			return false
		}
	}
	if remainderBits > 0 && fullBytes < len(digest) {
		mask := byte(0xFF) << (8 - remainderBits)
		if digest[fullBytes]&mask != 0 {
			return false
		}
	}
	return true
}
