package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/arenawatch/arenawatch-backend/internal/model"
)

func TestCandidateRecipients(t *testing.T) {
	deployer := model.Address("0xdeployer")
	transfers := []model.TokenTransfer{
		{From: deployer, To: "0xmule1"},
		{From: "0xmule1", To: "0xbuyer"},
		{From: deployer, To: "0xmule2"},
		{From: deployer, To: "0xmule1"},
		{From: deployer, To: deployer},
		{From: deployer, To: "0x0000000000000000000000000000000000000000"},
	}

	got := candidateRecipients(deployer, transfers)
	want := []model.Address{"0xmule1", "0xmule2"}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidate %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestSecondaryWalletClassifierClassify_ActivityThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := NewMockChainClient(ctrl)
	ctx := context.Background()

	cfg := detectorConfig()
	cfg.LowActivityTxThreshold = 3

	deployer := model.Address("0xdeployer")
	transfers := []model.TokenTransfer{
		{From: deployer, To: "0xquiet"},
		{From: deployer, To: "0xbusy"},
	}

	client.EXPECT().
		ListTransactions(ctx, model.Address("0xquiet")).
		Return([]model.Transaction{{Hash: "0x1"}, {Hash: "0x2"}}, nil)
	client.EXPECT().
		ListTransactions(ctx, model.Address("0xbusy")).
		Return(make([]model.Transaction, 10), nil)

	classifier := NewSecondaryWalletClassifier(client, cfg, zap.NewNop())
	got, err := classifier.Classify(ctx, deployer, transfers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "0xquiet" {
		t.Fatalf("expected only the low-activity wallet, got %v", got)
	}
}

func TestSecondaryWalletClassifierClassify_CachesActivityAcrossTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := NewMockChainClient(ctrl)
	ctx := context.Background()

	cfg := detectorConfig()
	cfg.LowActivityTxThreshold = 3

	deployer := model.Address("0xdeployer")
	transfers := []model.TokenTransfer{{From: deployer, To: "0xquiet"}}

	// One fetch serves both tokens.
	client.EXPECT().
		ListTransactions(ctx, model.Address("0xquiet")).
		Return([]model.Transaction{{Hash: "0x1"}}, nil).
		Times(1)

	classifier := NewSecondaryWalletClassifier(client, cfg, zap.NewNop())
	for i := 0; i < 2; i++ {
		got, err := classifier.Classify(ctx, deployer, transfers)
		if err != nil {
			t.Fatalf("classify %d: unexpected error: %v", i, err)
		}
		if len(got) != 1 {
			t.Fatalf("classify %d: expected 1 secondary, got %v", i, got)
		}
	}
}
