package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"reflect"
	"testing"
	"time"

	ncrypto "github.com/dayanaadylkhanova/nuw-solver/internal/adapter/crypto"
	"github.com/dayanaadylkhanova/nuw-solver/internal/entity"
	"go.uber.org/mock/gomock"
)

func nuw(typ entity.ChallengeType, p entity.Payload) entity.NuwChallenge {
	return entity.NuwChallenge{
		ChallengeID: "nuw-" + string(typ),
		ExpiresAt:   time.Now().Add(time.Minute).Unix(),
		Type:        typ,
		Payload:     p,
	}
}

func TestDispatcher_MissingPayload_InvalidBeforeWork(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ch   entity.NuwChallenge
	}{
		{"pow_nil", nuw(entity.TypeArgon2Pow, nil)},
		{"pq_nil", nuw(entity.TypePqAssist, nil)},
		{"sig_nil", nuw(entity.TypeSignatureBatch, nil)},
		{"sig_empty", nuw(entity.TypeSignatureBatch, entity.SignatureBatchPayload{})},
		{"sig_wrong_payload", nuw(entity.TypeSignatureBatch, entity.MerklePayload{Tasks: []entity.MerkleProofTask{{}}})},
		{"merkle_nil", nuw(entity.TypeMerkleVerify, nil)},
		{"merkle_empty", nuw(entity.TypeMerkleVerify, entity.MerklePayload{})},
		{"zk_nil", nuw(entity.TypeZkVerify, nil)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			// ни один примитив не должен быть вызван
			prim := NewMockPrimitives(ctrl)
			zk := NewMockZkVerifier(ctrl)

			_, err := NewDispatcher(prim, zk).Solve(context.Background(), tc.ch)
			if !errors.Is(err, entity.ErrInvalid) {
				t.Fatalf("Solve() err = %v; want ErrInvalid", err)
			}
		})
	}
}

func TestDispatcher_ExpiredAndUnsupported(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	d := NewDispatcher(NewMockPrimitives(ctrl), NewMockZkVerifier(ctrl))

	expired := nuw(entity.TypeMerkleVerify, entity.MerklePayload{Tasks: []entity.MerkleProofTask{{}}})
	expired.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	if _, err := d.Solve(context.Background(), expired); !errors.Is(err, entity.ErrExpired) {
		t.Fatalf("Solve(expired) err = %v; want ErrExpired", err)
	}

	_, err := d.Solve(context.Background(), nuw("QUANTUM_MAGIC", nil))
	if !errors.Is(err, entity.ErrUnsupportedType) {
		t.Fatalf("Solve(unknown) err = %v; want ErrUnsupportedType", err)
	}
	if entity.Kind(err) != "UNSUPPORTED_TYPE" {
		t.Fatalf("Kind = %q", entity.Kind(err))
	}
}

func TestDispatcher_Argon2AndPqAssist(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(ncrypto.NewNative(true, false), nil)
	params := entity.PowParams{Nonce: fixedNonce, Difficulty: 3, MemoryCost: 64, TimeCost: 1}

	for _, typ := range []entity.ChallengeType{entity.TypeArgon2Pow, entity.TypePqAssist} {
		ch := nuw(typ, entity.PowPayload{Params: params})
		sol, err := d.Solve(context.Background(), ch)
		if err != nil {
			t.Fatalf("%s: Solve() error: %v", typ, err)
		}
		if sol.ChallengeID != ch.ChallengeID || sol.Type != typ {
			t.Fatalf("%s: solution header = %s/%s", typ, sol.ChallengeID, sol.Type)
		}
		res, ok := sol.Result.(entity.PowResult)
		if !ok {
			t.Fatalf("%s: result type %T", typ, sol.Result)
		}
		digest, _ := DecodeHex(res.Solution.Digest)
		if !HasRequiredZeroBits(digest, 3) {
			t.Fatalf("%s: digest %s lacks 3 zero bits", typ, res.Solution.Digest)
		}
	}
}

func TestDispatcher_SignatureBatch(t *testing.T) {
	t.Parallel()

	good := signedItem(t, "A", []byte("hello"))
	bad := signedItem(t, "B", []byte("world"))
	bad.Message = EncodeHex([]byte("tampered"))

	d := NewDispatcher(ncrypto.NewNative(true, false), nil)
	sol, err := d.Solve(context.Background(), nuw(entity.TypeSignatureBatch, entity.SignatureBatchPayload{Items: []entity.PendingSignature{good, bad}}))
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	want := entity.SignatureBatchResult{Results: []entity.SignatureResult{{TxID: "A", Valid: true}, {TxID: "B", Valid: false}}}
	if !reflect.DeepEqual(sol.Result, want) {
		t.Fatalf("Result = %+v; want %+v", sol.Result, want)
	}
}

func TestDispatcher_MerkleTasks(t *testing.T) {
	t.Parallel()

	a := sha256.Sum256([]byte("a"))
	b := sha256.Sum256([]byte("b"))
	root, proofs := buildTree([][32]byte{a, b})

	tasks := []entity.MerkleProofTask{
		taskFor(root, a, proofs[0], 0),
		taskFor(root, b, proofs[1], 0), // неверный индекс
		taskFor(root, b, proofs[1], 1),
	}
	d := NewDispatcher(ncrypto.NewNative(true, false), nil)
	sol, err := d.Solve(context.Background(), nuw(entity.TypeMerkleVerify, entity.MerklePayload{Tasks: tasks}))
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	want := entity.MerkleVerifyResult{Results: []entity.MerkleResult{
		{Index: 0, Valid: true},
		{Index: 1, Valid: false},
		{Index: 2, Valid: true},
	}}
	if !reflect.DeepEqual(sol.Result, want) {
		t.Fatalf("Result = %+v; want %+v", sol.Result, want)
	}
}

func TestDispatcher_MerkleTasks_CancelledAtYieldPoint(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	yield := NewMockYielder(ctrl)
	// после первой задачи отмена, вторая не проверяется
	yield.EXPECT().Yield(gomock.Any()).Return(context.Canceled).Times(1)

	tasks := []entity.MerkleProofTask{{}, {}}
	d := NewDispatcher(NewMockPrimitives(ctrl), NewMockZkVerifier(ctrl), WithYielder(yield))
	_, err := d.Solve(context.Background(), nuw(entity.TypeMerkleVerify, entity.MerklePayload{Tasks: tasks}))
	if !errors.Is(err, entity.ErrCancelled) {
		t.Fatalf("Solve() err = %v; want ErrCancelled", err)
	}
	if entity.Kind(err) != "CANCELLED" {
		t.Fatalf("Kind = %q; want CANCELLED", entity.Kind(err))
	}
}

func TestDispatcher_ZkVerify(t *testing.T) {
	t.Parallel()

	task := entity.ZkProofTask{ProofID: "p1", Proof: "abcd"}

	// заглушка по умолчанию отвечает valid=true
	sol, err := NewDispatcher(ncrypto.NewNative(true, false), nil).
		Solve(context.Background(), nuw(entity.TypeZkVerify, entity.ZkPayload{Task: task}))
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if got := sol.Result.(entity.ZkVerifyResult).Result; got != (entity.ZkResult{ProofID: "p1", Valid: true}) {
		t.Fatalf("ZkResult = %+v", got)
	}

	ctrl := gomock.NewController(t)
	zk := NewMockZkVerifier(ctrl)
	zk.EXPECT().VerifyProof(gomock.Any(), task).Return(false, nil)
	sol, err = NewDispatcher(NewMockPrimitives(ctrl), zk).
		Solve(context.Background(), nuw(entity.TypeZkVerify, entity.ZkPayload{Task: task}))
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if sol.Result.(entity.ZkVerifyResult).Result.Valid {
		t.Fatal("verifier said false, solution says valid")
	}

	zk.EXPECT().VerifyProof(gomock.Any(), task).Return(false, errors.New("bad vk"))
	_, err = NewDispatcher(NewMockPrimitives(ctrl), zk).
		Solve(context.Background(), nuw(entity.TypeZkVerify, entity.ZkPayload{Task: task}))
	if !errors.Is(err, entity.ErrPrimitive) {
		t.Fatalf("Solve() err = %v; want ErrPrimitive", err)
	}
}

func TestDispatcher_SolvePow_Legacy(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	prim := NewMockPrimitives(ctrl)
	prim.EXPECT().Argon2id(BE64(0), gomock.Any(), uint32(2), uint32(1024)).Return(make([]byte, 32), nil)

	ch := powChallenge(8, 1024, 2)
	sol, err := NewDispatcher(prim, nil).SolvePow(context.Background(), ch)
	if err != nil {
		t.Fatalf("SolvePow() error: %v", err)
	}
	if sol.ChallengeID != ch.ChallengeID || sol.Type != entity.TypeArgon2Pow {
		t.Fatalf("solution header = %s/%s", sol.ChallengeID, sol.Type)
	}
	res := sol.Result.(entity.PowResult).Solution
	if res.Counter != "0000000000000000" || !bytes.Equal(mustHex(t, res.Digest), make([]byte, 32)) {
		t.Fatalf("PowSolution = %+v", res)
	}
}

func TestDispatcher_AvailableTypesAndPreference(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	notReady := NewMockPrimitives(ctrl)
	notReady.EXPECT().Ready().AnyTimes().Return(false)
	d := NewDispatcher(notReady, nil)
	if got := d.AvailableTypes(); !reflect.DeepEqual(got, []entity.ChallengeType{entity.TypeArgon2Pow}) {
		t.Fatalf("AvailableTypes(not ready) = %v", got)
	}
	if got := d.PreferredType(); got != entity.TypeArgon2Pow {
		t.Fatalf("PreferredType(not ready) = %s", got)
	}

	ready := NewMockPrimitives(ctrl)
	ready.EXPECT().Ready().AnyTimes().Return(true)
	d = NewDispatcher(ready, nil)
	want := []entity.ChallengeType{entity.TypeArgon2Pow, entity.TypeSignatureBatch, entity.TypeMerkleVerify}
	if got := d.AvailableTypes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("AvailableTypes(ready) = %v; want %v", got, want)
	}
	if got := d.PreferredType(); got != entity.TypeSignatureBatch {
		t.Fatalf("PreferredType(ready) = %s; want SIGNATURE_BATCH", got)
	}
}

func TestFeeDiscount_UsefulWorkEarnsMore(t *testing.T) {
	t.Parallel()

	if FeeDiscount(entity.TypeArgon2Pow) != 0 {
		t.Fatal("plain pow must not earn a discount")
	}
	for _, typ := range []entity.ChallengeType{entity.TypeSignatureBatch, entity.TypeMerkleVerify, entity.TypeZkVerify} {
		if FeeDiscount(typ) <= FeeDiscount(entity.TypeArgon2Pow) {
			t.Fatalf("%s discount %d not above pow", typ, FeeDiscount(typ))
		}
	}
	if FeeDiscount("UNKNOWN") != 0 {
		t.Fatal("unknown type must map to 0")
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := DecodeHex(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
