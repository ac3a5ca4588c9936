package rpc

import "context"

//go:generate mockgen -source=interfaces.go -destination=./rpc_mock.go -package=rpc

// Transport delivers one request and returns its response.
type Transport interface {
	Call(ctx context.Context, req *Message) (*Message, error)
}
