package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CodeChallengeRequired is the application error code the service uses when a
// request must carry a solved challenge.
const CodeChallengeRequired = -32001

// NetworkError means no usable answer came back: connection failure, bad HTTP
// status, undecodable or mismatched response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("rpc %s: %v", e.Op, e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// RPCError is an application-level rejection returned by the service.
type RPCError struct {
	Method            string
	Code              int
	Message           string
	Data              json.RawMessage
	ChallengeRequired bool
}

func (e *RPCError) Error() string {
	s := fmt.Sprintf("rpc %s: error %d: %s", e.Method, e.Code, e.Message)
	if e.ChallengeRequired {
		s += " (challenge required)"
	}
	return s
}

func newRPCError(method string, e *Error) *RPCError {
	re := &RPCError{Method: method, Code: e.Code, Message: e.Message, Data: e.Data}
	if e.Code == CodeChallengeRequired {
		re.ChallengeRequired = true
	}
	if len(e.Data) > 0 {
		var d struct {
			ChallengeRequired bool `json:"challenge_required"`
		}
		if json.Unmarshal(e.Data, &d) == nil && d.ChallengeRequired {
			re.ChallengeRequired = true
		}
	}
	return re
}

// IsChallengeRequired reports whether err asks the caller to solve a challenge
// and retry.
func IsChallengeRequired(err error) bool {
	var re *RPCError
	return errors.As(err, &re) && re.ChallengeRequired
}

func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
