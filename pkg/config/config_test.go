package config

import (
	"os"
	"testing"
	"time"
)

var allKeys = []string{
	"RPC_TRANSPORT", "RPC_URL", "RPC_TCP_ADDR", "RPC_TIMEOUT", "RPC_RATE", "RPC_BURST",
	"POW_MAX_ATTEMPTS", "POW_YIELD_EVERY", "SIG_YIELD_EVERY", "SOLVE_RATE", "SOLVE_TIMEOUT", "POW_MAX_MEMORY_KIB",
	"CRYPTO_READY", "PQ_VERIFY", "CHALLENGE_MODE", "LOG_LEVEL", "LOG_FORMAT", "TX_FILE",
}

func TestParse_Defaults_WhenEnvMissing(t *testing.T) {
	for _, k := range allKeys {
		t.Setenv(k, "")
	}

	cfg := Parse()

	if cfg.RPCTransport != "http" || cfg.RPCURL != "http://localhost:8545" || cfg.RPCTCPAddr != "localhost:8546" {
		t.Fatalf("rpc defaults = %q %q %q", cfg.RPCTransport, cfg.RPCURL, cfg.RPCTCPAddr)
	}
	if cfg.RPCTimeout != 10*time.Second {
		t.Fatalf("RPCTimeout=%v; want 10s", cfg.RPCTimeout)
	}
	// 0 = без ограничения
	if cfg.RPCRate != 0 || cfg.RPCBurst != 1 {
		t.Fatalf("RPCRate=%v RPCBurst=%d; want 0, 1", cfg.RPCRate, cfg.RPCBurst)
	}
	if cfg.PoWMaxAttempts != 10000 || cfg.PoWYieldEvery != 10 || cfg.SigYieldEvery != 1 {
		t.Fatalf("solver defaults = %d %d %d", cfg.PoWMaxAttempts, cfg.PoWYieldEvery, cfg.SigYieldEvery)
	}
	if cfg.SolveRate != 0 {
		t.Fatalf("SolveRate=%v; want 0", cfg.SolveRate)
	}
	// 1 GiB
	if cfg.PoWMaxMemory != 1048576 {
		t.Fatalf("PoWMaxMemory=%d; want 1048576", cfg.PoWMaxMemory)
	}
	if cfg.SolveTimeout != 5*time.Minute {
		t.Fatalf("SolveTimeout=%v; want 5m", cfg.SolveTimeout)
	}
	if !cfg.CryptoReady || cfg.PQVerify {
		t.Fatalf("CryptoReady=%v PQVerify=%v; want true, false", cfg.CryptoReady, cfg.PQVerify)
	}
	if cfg.ChallengeMode != "nuw" {
		t.Fatalf("ChallengeMode=%q; want nuw", cfg.ChallengeMode)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("log = %q %q; want info json", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.TxFile != "" {
		t.Fatalf("TxFile=%q; want empty", cfg.TxFile)
	}
}

func TestParse_ValidValues(t *testing.T) {
	t.Setenv("RPC_TRANSPORT", "TCP")
	t.Setenv("RPC_TIMEOUT", "1500ms")
	t.Setenv("RPC_RATE", "2.5")
	t.Setenv("POW_MAX_ATTEMPTS", "500")
	t.Setenv("POW_MAX_MEMORY_KIB", "65536")
	t.Setenv("CRYPTO_READY", "false")
	t.Setenv("PQ_VERIFY", "1")
	t.Setenv("CHALLENGE_MODE", "pow")

	cfg := Parse()

	// регистр транспорта нормализуется
	if cfg.RPCTransport != "tcp" {
		t.Fatalf("RPCTransport=%q; want tcp", cfg.RPCTransport)
	}
	if cfg.RPCTimeout != 1500*time.Millisecond {
		t.Fatalf("RPCTimeout=%v; want 1500ms", cfg.RPCTimeout)
	}
	if cfg.RPCRate != 2.5 {
		t.Fatalf("RPCRate=%v; want 2.5", cfg.RPCRate)
	}
	if cfg.PoWMaxAttempts != 500 {
		t.Fatalf("PoWMaxAttempts=%d; want 500", cfg.PoWMaxAttempts)
	}
	if cfg.PoWMaxMemory != 65536 {
		t.Fatalf("PoWMaxMemory=%d; want 65536", cfg.PoWMaxMemory)
	}
	if cfg.CryptoReady || !cfg.PQVerify {
		t.Fatalf("CryptoReady=%v PQVerify=%v; want false, true", cfg.CryptoReady, cfg.PQVerify)
	}
	if cfg.ChallengeMode != "pow" {
		t.Fatalf("ChallengeMode=%q; want pow", cfg.ChallengeMode)
	}
}

func TestParse_InvalidValues_CurrentBehavior(t *testing.T) {
	// Невалидные строки: ParseDuration ошибки игнорит -> ноль.
	t.Setenv("RPC_TIMEOUT", "oops")
	t.Setenv("SOLVE_TIMEOUT", "nope")
	// Невалидные числа и bool -> дефолты
	t.Setenv("POW_MAX_ATTEMPTS", "abc")
	t.Setenv("RPC_RATE", "fast")
	t.Setenv("CRYPTO_READY", "maybe")

	os.Unsetenv("LOG_LEVEL")

	cfg := Parse()

	if cfg.RPCTimeout != 0 || cfg.SolveTimeout != 0 {
		t.Fatalf("timeouts = %v %v; want 0 (текущее поведение при невалидном значении)", cfg.RPCTimeout, cfg.SolveTimeout)
	}
	if cfg.PoWMaxAttempts != 10000 {
		t.Fatalf("PoWMaxAttempts=%d; want дефолт 10000", cfg.PoWMaxAttempts)
	}
	if cfg.RPCRate != 0 {
		t.Fatalf("RPCRate=%v; want дефолт 0", cfg.RPCRate)
	}
	if !cfg.CryptoReady {
		t.Fatal("CryptoReady=false; want дефолт true")
	}
}
