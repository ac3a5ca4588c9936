package rpc

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"
)

type DialFunc func(ctx context.Context) (net.Conn, error)

// TCPTransport sends newline-delimited JSON over one connection, one call at
// a time. A failed call, including a reply with a foreign id, drops the
// connection; the next call redials.
type TCPTransport struct {
	log     *slog.Logger
	addr    string
	timeout time.Duration
	dial    DialFunc

	mu   sync.Mutex
	conn net.Conn
	br   *bufio.Reader
	bw   *bufio.Writer
}

func NewTCPTransport(log *slog.Logger, addr string, timeout time.Duration) *TCPTransport {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	t := &TCPTransport{log: log, addr: addr, timeout: timeout}
	t.dial = func(ctx context.Context) (net.Conn, error) {
		return (&net.Dialer{}).DialContext(ctx, "tcp", t.addr)
	}
	return t
}

// WithDialer replaces how connections are opened.
func (t *TCPTransport) WithDialer(d DialFunc) *TCPTransport {
	t.dial = d
	return t
}

func (t *TCPTransport) Call(ctx context.Context, req *Message) (*Message, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		conn, err := t.dial(ctx)
		if err != nil {
			return nil, &NetworkError{Op: req.Method, Err: fmt.Errorf("dial %s: %w", t.addr, err)}
		}
		t.conn = conn
		t.br = bufio.NewReader(conn)
		t.bw = bufio.NewWriter(conn)
		t.log.Debug("rpc connected", "addr", t.addr)
	}

	deadline := time.Now().Add(t.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = t.conn.SetDeadline(deadline)
	conn := t.conn
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	msg, err := t.roundTrip(req)
	if err == nil && !bytes.Equal(msg.ID, req.ID) {
		// поток рассинхронизирован, следующий ответ тоже будет чужим
		err = fmt.Errorf("response id %s does not match request id %s", msg.ID, req.ID)
	}
	if err != nil {
		t.resetLocked()
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return nil, &NetworkError{Op: req.Method, Err: err}
	}
	return msg, nil
}

func (t *TCPTransport) roundTrip(req *Message) (*Message, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	if _, err := t.bw.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}
	if err := t.bw.Flush(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	line, err := t.br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return Parse([]byte(strings.TrimSpace(line)))
}

func (t *TCPTransport) resetLocked() {
	if t.conn != nil {
		_ = t.conn.Close()
		t.log.Debug("rpc connection dropped", "addr", t.addr)
	}
	t.conn, t.br, t.bw = nil, nil, nil
}

func (t *TCPTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn, t.br, t.bw = nil, nil, nil
	return err
}
