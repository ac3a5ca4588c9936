package entity

import "errors"

// Error kinds shared by the PoW and NUW paths. All of them end the current
// solve attempt; retrying is up to the caller.
var (
	ErrFetchFailed     = errors.New("challenge fetch failed")
	ErrExpired         = errors.New("challenge expired")
	ErrInvalid         = errors.New("invalid challenge")
	ErrSolveFailed     = errors.New("attempts exhausted")
	ErrPrimitive       = errors.New("crypto primitive failed")
	ErrUnsupportedType = errors.New("unsupported challenge type")
	ErrCancelled       = errors.New("solve cancelled")
)

// Kind returns the wire code for err, or "" when err is not one of the kinds.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCancelled):
		return "CANCELLED"
	case errors.Is(err, ErrFetchFailed):
		return "FETCH_FAILED"
	case errors.Is(err, ErrExpired):
		return "EXPIRED"
	case errors.Is(err, ErrInvalid):
		return "INVALID"
	case errors.Is(err, ErrSolveFailed):
		return "SOLVE_FAILED"
	case errors.Is(err, ErrPrimitive):
		return "WASM_FAILED"
	case errors.Is(err, ErrUnsupportedType):
		return "UNSUPPORTED_TYPE"
	default:
		return ""
	}
}
