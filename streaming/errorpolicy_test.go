package streaming

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ledgerflow/txnengine/storage"
)

func TestSkipErrors_AlwaysContinues(t *testing.T) {
	p := SkipErrors{}
	if !p.OnIOError(errors.New("boom")) {
		t.Error("SkipErrors should continue on io error")
	}
	if !p.OnEngineError(errors.New("boom")) {
		t.Error("SkipErrors should continue on engine error")
	}
}

func TestAbortOnError_AlwaysStops(t *testing.T) {
	p := AbortOnError{}
	if p.OnIOError(errors.New("boom")) {
		t.Error("AbortOnError should stop on io error")
	}
	if p.OnEngineError(errors.New("boom")) {
		t.Error("AbortOnError should stop on engine error")
	}
}

func TestSilentSkip_AlwaysContinues(t *testing.T) {
	p := SilentSkip{}
	if !p.OnIOError(errors.New("boom")) {
		t.Error("SilentSkip should continue on io error")
	}
	if !p.OnEngineError(errors.New("boom")) {
		t.Error("SilentSkip should continue on engine error")
	}
}

func TestPolicyFunc_DelegatesToProvidedFunctions(t *testing.T) {
	var sawIO, sawEngine error
	p := PolicyFunc{
		IOError:     func(err error) bool { sawIO = err; return false },
		EngineError: func(err error) bool { sawEngine = err; return true },
	}
	ioErr := errors.New("io")
	engineErr := errors.New("engine")
	if p.OnIOError(ioErr) {
		t.Error("expected custom io handler to abort")
	}
	if !p.OnEngineError(engineErr) {
		t.Error("expected custom engine handler to continue")
	}
	if sawIO != ioErr || sawEngine != engineErr {
		t.Error("custom handlers did not receive the original errors")
	}
}

func TestPolicyFunc_NilFunctionsDefaultToContinue(t *testing.T) {
	var p PolicyFunc
	if !p.OnIOError(errors.New("x")) || !p.OnEngineError(errors.New("x")) {
		t.Error("zero-value PolicyFunc should continue on every error")
	}
}

func TestMockErrorPolicy_StopsShardWhenToldTo(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockErrorPolicy(ctrl)
	mock.EXPECT().OnIOError(gomock.Any()).Return(false)

	accounts := storage.NewAccountStore()
	log := storage.NewTransactionLog()
	src := SliceSource{
		{Err: errors.New("boom")},
		{Event: deposit(1, 1, amt(t, "5.0"))},
	}
	results := New(accounts, log, mock).AddStream(src).Process(context.Background())
	if results.AllSucceeded() {
		t.Error("expected scripted mock to abort the shard")
	}
	if _, ok := accounts.Get(1); ok {
		t.Error("no event after the abort should have been applied")
	}
}
