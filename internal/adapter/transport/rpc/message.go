// Package rpc talks JSON-RPC 2.0 to the challenge-issuing service.
//
// Two transports carry the same envelope: HTTP POST to {base}/jsonrpc and
// newline-delimited JSON over a TCP connection. Client builds the challenge
// fetch and transaction submission calls on top of either one.
package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

const Version = "2.0"

var (
	ErrInvalidJSON    = errors.New("jsonrpc: invalid JSON")
	ErrInvalidVersion = errors.New("jsonrpc: version must be 2.0")
)

// Message is a request or a response. Requests carry Method and ID, responses
// carry Result or Error and the ID of the request they answer.
type Message struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// Parse decodes a raw message and checks the protocol version.
func Parse(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if msg.JSONRPC != Version {
		return nil, ErrInvalidVersion
	}
	return &msg, nil
}

func NewRequest(method string, params any, id uint64) (*Message, error) {
	msg := &Message{
		JSONRPC: Version,
		Method:  method,
	}
	if params != nil {
		p, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode params: %w", err)
		}
		msg.Params = p
	}
	idBytes, err := json.Marshal(id)
	if err != nil {
		return nil, fmt.Errorf("failed to encode id: %w", err)
	}
	msg.ID = idBytes
	return msg, nil
}

func NewResponse(id json.RawMessage, result any) (*Message, error) {
	r, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &Message{JSONRPC: Version, ID: id, Result: r}, nil
}

func NewErrorResponse(id json.RawMessage, code int, message string, data any) (*Message, error) {
	msg := &Message{
		JSONRPC: Version,
		ID:      id,
		Error:   &Error{Code: code, Message: message},
	}
	if data != nil {
		d, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode error data: %w", err)
		}
		msg.Error.Data = d
	}
	return msg, nil
}
