package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	RPCTransport string // http|tcp
	RPCURL       string
	RPCTCPAddr   string
	RPCTimeout   time.Duration
	RPCRate      float64
	RPCBurst     int

	PoWMaxAttempts int
	PoWYieldEvery  int
	SigYieldEvery  int
	SolveRate      float64
	PoWMaxMemory   int // KiB
	SolveTimeout   time.Duration

	CryptoReady   bool
	PQVerify      bool
	ChallengeMode string // nuw|pow

	LogLevel  string
	LogFormat string
	TxFile    string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func atof(s string, def float64) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return def
}

func atob(s string, def bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return def
}

func Parse() Config {
	rpcTimeout, _ := time.ParseDuration(getenv("RPC_TIMEOUT", "10s"))
	solveTimeout, _ := time.ParseDuration(getenv("SOLVE_TIMEOUT", "5m"))
	return Config{
		RPCTransport: strings.ToLower(getenv("RPC_TRANSPORT", "http")),
		RPCURL:       getenv("RPC_URL", "http://localhost:8545"),
		RPCTCPAddr:   getenv("RPC_TCP_ADDR", "localhost:8546"),
		RPCTimeout:   rpcTimeout,
		RPCRate:      atof(getenv("RPC_RATE", "0"), 0),
		RPCBurst:     atoi(getenv("RPC_BURST", "1"), 1),

		PoWMaxAttempts: atoi(getenv("POW_MAX_ATTEMPTS", "10000"), 10000),
		PoWYieldEvery:  atoi(getenv("POW_YIELD_EVERY", "10"), 10),
		SigYieldEvery:  atoi(getenv("SIG_YIELD_EVERY", "1"), 1),
		SolveRate:      atof(getenv("SOLVE_RATE", "0"), 0),
		PoWMaxMemory:   atoi(getenv("POW_MAX_MEMORY_KIB", "1048576"), 1048576),
		SolveTimeout:   solveTimeout,

		CryptoReady:   atob(getenv("CRYPTO_READY", "true"), true),
		PQVerify:      atob(getenv("PQ_VERIFY", "false"), false),
		ChallengeMode: strings.ToLower(getenv("CHALLENGE_MODE", "nuw")),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),
		TxFile:    getenv("TX_FILE", ""),
	}
}
