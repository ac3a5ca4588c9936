package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/dayanaadylkhanova/nuw-solver/internal/entity"
)

const (
	MethodPowChallenge    = "get_pow_challenge"
	MethodNuwChallenge    = "get_nuw_challenge"
	MethodSendTransaction = "send_transaction"
)

// Client fetches challenges and submits solved requests over a Transport.
type Client struct {
	t      Transport
	lim    *rate.Limiter
	log    *slog.Logger
	nextID atomic.Uint64
}

type ClientOption func(*Client)

// WithRateLimit paces outgoing calls. perSecond <= 0 means unlimited.
func WithRateLimit(perSecond float64, burst int) ClientOption {
	return func(c *Client) {
		if perSecond <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.lim = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func NewClient(t Transport, opts ...ClientOption) *Client {
	c := &Client{
		t:   t,
		lim: rate.NewLimiter(rate.Inf, 1),
		log: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// FetchPowChallenge uses the legacy single-type endpoint.
func (c *Client) FetchPowChallenge(ctx context.Context) (entity.PowChallenge, error) {
	var ch entity.PowChallenge
	if err := c.call(ctx, MethodPowChallenge, nil, &ch); err != nil {
		return entity.PowChallenge{}, fmt.Errorf("%w: %w", entity.ErrFetchFailed, err)
	}
	c.log.Debug("pow challenge fetched", slog.String("challenge_id", ch.ChallengeID), slog.Int("difficulty", ch.Difficulty))
	return ch, nil
}

// FetchNuwChallenge asks for a typed challenge. An empty preferred sends no
// hint and lets the service choose.
func (c *Client) FetchNuwChallenge(ctx context.Context, preferred entity.ChallengeType) (entity.NuwChallenge, error) {
	var params map[string]any
	if preferred != "" {
		params = map[string]any{"preferred_type": preferred}
	}
	var ch entity.NuwChallenge
	if err := c.call(ctx, MethodNuwChallenge, params, &ch); err != nil {
		return entity.NuwChallenge{}, fmt.Errorf("%w: %w", entity.ErrFetchFailed, err)
	}
	c.log.Debug("nuw challenge fetched",
		slog.String("challenge_id", ch.ChallengeID),
		slog.String("type", string(ch.Type)),
		slog.Int("fee_discount_percent", ch.FeeDiscountPercent),
	)
	return ch, nil
}

// SubmitTransaction sends tx with an optional solution attached and returns
// the transaction id assigned by the service.
func (c *Client) SubmitTransaction(ctx context.Context, tx json.RawMessage, sol *entity.Solution) (string, error) {
	params := map[string]any{"transaction": tx}
	if sol != nil {
		params["solution"] = sol
	}
	var out struct {
		TxID string `json:"tx_id"`
	}
	if err := c.call(ctx, MethodSendTransaction, params, &out); err != nil {
		return "", err
	}
	if out.TxID == "" {
		return "", &NetworkError{Op: MethodSendTransaction, Err: errors.New("response has no tx_id")}
	}
	return out.TxID, nil
}

func (c *Client) call(ctx context.Context, method string, params any, out any) error {
	if err := c.lim.Wait(ctx); err != nil {
		return &NetworkError{Op: method, Err: err}
	}
	req, err := NewRequest(method, params, c.nextID.Add(1))
	if err != nil {
		return &NetworkError{Op: method, Err: err}
	}

	resp, err := c.t.Call(ctx, req)
	if err != nil {
		if IsNetwork(err) {
			return err
		}
		return &NetworkError{Op: method, Err: err}
	}
	if !bytes.Equal(resp.ID, req.ID) {
		return &NetworkError{Op: method, Err: fmt.Errorf("response id %s does not match request id %s", resp.ID, req.ID)}
	}
	if resp.Error != nil {
		re := newRPCError(method, resp.Error)
		c.log.Debug("rpc rejected", slog.String("method", method), slog.Int("code", re.Code), slog.Bool("challenge_required", re.ChallengeRequired))
		return re
	}
	if len(resp.Result) == 0 || string(resp.Result) == "null" {
		return &NetworkError{Op: method, Err: errors.New("no result in response")}
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return &NetworkError{Op: method, Err: fmt.Errorf("decode result: %w", err)}
	}
	return nil
}
