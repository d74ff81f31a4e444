package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/arenawatch/arenawatch-backend/internal/model"
)

// DeploymentDetector discovers every token contract a wallet brought into
// existence, both by direct creation and through factory contracts.
type DeploymentDetector struct {
	client ChainClient
	cfg    Config
	log    *zap.Logger
}

func NewDeploymentDetector(client ChainClient, cfg Config, log *zap.Logger) *DeploymentDetector {
	return &DeploymentDetector{client: client, cfg: cfg, log: log}
}

// Detect walks the wallet's outgoing transactions and returns its token
// deployments sorted by block number, plus the number of factory calls that
// could not be resolved to a token. Factory calls are resolved from internal
// transactions first and receipt Transfer logs as a fallback; a call that
// yields neither, or whose lookups fail, is counted as unresolved and the
// scan moves on. Detect itself errors only on context cancellation.
func (d *DeploymentDetector) Detect(ctx context.Context, wallet model.Address, txs []model.Transaction) ([]model.DeploymentRecord, int, error) {
	var (
		records    []model.DeploymentRecord
		unresolved int
	)
	for _, tx := range txs {
		if !tx.From.Equal(wallet) {
			continue
		}

		var (
			rec *model.DeploymentRecord
			err error
		)
		switch {
		case tx.IsContractCreation():
			rec, err = d.resolveDirect(ctx, tx)
		case d.cfg.isFactory(tx.To):
			rec, err = d.resolveFactory(ctx, tx)
		default:
			continue
		}
		if err != nil {
			// One failed call costs one unresolved slot, never the whole
			// wallet scan. Only cancellation stops the walk.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, 0, ctxErr
			}
			unresolved++
			d.log.Warn("creation call unresolved",
				zap.String("wallet", string(wallet)),
				zap.String("txHash", tx.Hash),
				zap.Error(err))
			continue
		}
		if rec == nil {
			unresolved++
			d.log.Debug("creation call yielded no token",
				zap.String("wallet", string(wallet)),
				zap.String("txHash", tx.Hash))
			continue
		}
		records = append(records, *rec)
	}

	records = dedupeByToken(records, d.log)
	sort.Slice(records, func(i, j int) bool {
		if records[i].BlockNumber != records[j].BlockNumber {
			return records[i].BlockNumber < records[j].BlockNumber
		}
		return records[i].Token < records[j].Token
	})
	return records, unresolved, nil
}

func (d *DeploymentDetector) resolveDirect(ctx context.Context, tx model.Transaction) (*model.DeploymentRecord, error) {
	receipt, err := d.client.TransactionReceipt(ctx, tx.Hash)
	if err != nil {
		return nil, fmt.Errorf("receipt for creation %s: %w", tx.Hash, err)
	}
	if receipt == nil || receipt.ContractAddress.IsZero() {
		// Creation reverted or the explorer has no receipt yet.
		return nil, nil
	}
	return &model.DeploymentRecord{
		Token:       receipt.ContractAddress,
		Deployer:    tx.From,
		TxHash:      tx.Hash,
		BlockNumber: tx.BlockNumber,
		Timestamp:   tx.Timestamp,
		Method:      model.DeploymentDirect,
	}, nil
}

// resolveFactory maps one factory call to the token it created. Internal
// transactions are authoritative; when the explorer omits them, the receipt's
// Transfer logs combined with a bytecode check identify the token instead.
func (d *DeploymentDetector) resolveFactory(ctx context.Context, tx model.Transaction) (*model.DeploymentRecord, error) {
	internals, err := d.client.ListInternalTransactionsByHash(ctx, tx.Hash)
	if err != nil {
		return nil, fmt.Errorf("internal txs for %s: %w", tx.Hash, err)
	}
	for _, itx := range internals {
		if !itx.CreatedContract.IsZero() {
			return d.factoryRecord(tx, itx.CreatedContract), nil
		}
	}

	receipt, err := d.client.TransactionReceipt(ctx, tx.Hash)
	if err != nil {
		return nil, fmt.Errorf("receipt for factory call %s: %w", tx.Hash, err)
	}
	if receipt == nil {
		return nil, nil
	}
	for _, lg := range receipt.Logs {
		if len(lg.Topics) == 0 || lg.Topics[0] != model.TransferTopic {
			continue
		}
		if d.cfg.isFactory(lg.Address) {
			continue
		}
		code, err := d.client.Code(ctx, lg.Address)
		if err != nil {
			return nil, fmt.Errorf("code for %s: %w", lg.Address, err)
		}
		if len(code) == 0 {
			continue
		}
		return d.factoryRecord(tx, lg.Address), nil
	}
	return nil, nil
}

func (d *DeploymentDetector) factoryRecord(tx model.Transaction, token model.Address) *model.DeploymentRecord {
	return &model.DeploymentRecord{
		Token:       token,
		Deployer:    tx.From,
		TxHash:      tx.Hash,
		BlockNumber: tx.BlockNumber,
		Timestamp:   tx.Timestamp,
		Method:      model.DeploymentFactory,
		Factory:     tx.To,
	}
}

// dedupeByToken keeps one record per token. A factory record always beats a
// direct one for the same token, regardless of discovery order; within the
// same method the first record seen wins.
func dedupeByToken(records []model.DeploymentRecord, log *zap.Logger) []model.DeploymentRecord {
	kept := make([]model.DeploymentRecord, 0, len(records))
	idx := make(map[model.Address]int, len(records))
	for _, rec := range records {
		i, ok := idx[rec.Token]
		if !ok {
			idx[rec.Token] = len(kept)
			kept = append(kept, rec)
			continue
		}
		if kept[i].Method == model.DeploymentDirect && rec.Method == model.DeploymentFactory {
			log.Debug("duplicate deployment merged, factory record kept",
				zap.String("token", string(rec.Token)),
				zap.String("txHash", rec.TxHash))
			kept[i] = rec
			continue
		}
		log.Debug("duplicate deployment dropped",
			zap.String("token", string(rec.Token)),
			zap.String("txHash", rec.TxHash))
	}
	return kept
}
