package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/dayanaadylkhanova/nuw-solver/internal/adapter/crypto"
	"github.com/dayanaadylkhanova/nuw-solver/internal/adapter/transport/rpc"
	"github.com/dayanaadylkhanova/nuw-solver/internal/app"
	"github.com/dayanaadylkhanova/nuw-solver/internal/entity"
	"github.com/dayanaadylkhanova/nuw-solver/internal/service"
	"github.com/dayanaadylkhanova/nuw-solver/pkg/config"
	"github.com/dayanaadylkhanova/nuw-solver/pkg/logger"
)

func main() {
	cfg := config.Parse()
	log := logger.New(logger.LevelFromEnv(cfg.LogLevel), cfg.LogFormat)

	transport, closeFn, err := newTransport(cfg, log)
	if err != nil {
		log.Error("transport init failed", "err", err)
		os.Exit(1)
	}
	defer closeFn()

	client := rpc.NewClient(transport,
		rpc.WithRateLimit(cfg.RPCRate, cfg.RPCBurst),
		rpc.WithLogger(log),
	)

	opts := []service.Option{
		service.WithLogger(log),
		service.WithPowYieldEvery(cfg.PoWYieldEvery),
		service.WithSigYieldEvery(cfg.SigYieldEvery),
	}
	if cfg.PoWMaxAttempts > 0 {
		opts = append(opts, service.WithMaxAttempts(uint64(cfg.PoWMaxAttempts)))
	}
	if cfg.SolveRate > 0 {
		opts = append(opts, service.WithYielder(service.NewPacedYielder(cfg.SolveRate, 1)))
	}
	var nativeOpts []crypto.NativeOption
	if cfg.PoWMaxMemory > 0 && int64(cfg.PoWMaxMemory) <= math.MaxUint32 {
		nativeOpts = append(nativeOpts, crypto.WithMaxMemoryKiB(uint32(cfg.PoWMaxMemory)))
	}
	solver := service.NewDispatcher(
		crypto.NewNative(cfg.CryptoReady, cfg.PQVerify, nativeOpts...),
		service.NewPlaceholderZk(log),
		opts...,
	)
	log.Info("starting solver",
		"transport", cfg.RPCTransport,
		"mode", cfg.ChallengeMode,
		"available", solver.AvailableTypes(),
	)

	tx, err := readTx(cfg.TxFile)
	if err != nil {
		log.Error("read transaction failed", "err", err)
		os.Exit(1)
	}

	a := app.New(log, client, solver, app.Mode(cfg.ChallengeMode), cfg.SolveTimeout)
	if err := a.Run(tx, os.Stdout); err != nil {
		log.Error("run failed", "kind", entity.Kind(err), "err", err)
		closeFn()
		if errors.Is(err, entity.ErrExpired) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newTransport(cfg config.Config, log *slog.Logger) (rpc.Transport, func(), error) {
	switch cfg.RPCTransport {
	case "tcp":
		t := rpc.NewTCPTransport(log, cfg.RPCTCPAddr, cfg.RPCTimeout)
		return t, func() { _ = t.Close() }, nil
	case "http", "":
		t, err := rpc.NewHTTPTransport(cfg.RPCURL, rpc.WithTimeout(cfg.RPCTimeout))
		return t, func() {}, err
	default:
		return nil, nil, fmt.Errorf("unknown RPC_TRANSPORT %q", cfg.RPCTransport)
	}
}

// readTx loads the transaction to submit. Empty path means solve only,
// "-" reads stdin.
func readTx(path string) (json.RawMessage, error) {
	var (
		raw []byte
		err error
	)
	switch path {
	case "":
		return nil, nil
	case "-":
		raw, err = io.ReadAll(os.Stdin)
	default:
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, errors.New("transaction is not valid JSON")
	}
	return json.RawMessage(raw), nil
}
