package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/onu-facilities/partstrack/internal/application/inventory"
	"github.com/onu-facilities/partstrack/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner runs callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, executes fn with repos bound to the tx, and
// commits on success or rolls back on any failure path.
func (r *TxRunner) Run(ctx context.Context, fn func(
	issuanceRepo repository.IssuanceRepository,
	deliveryRepo repository.DeliveryRepository,
	partRepo repository.PartRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	issuanceRepo := NewIssuanceRepository(tx)
	deliveryRepo := NewDeliveryRepository(tx)
	partRepo := NewPartRepository(tx)

	if err := fn(issuanceRepo, deliveryRepo, partRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
