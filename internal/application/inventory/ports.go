package inventory

import (
	"context"

	"github.com/onu-facilities/partstrack/internal/domain/repository"
)

// TxRunner runs a function inside a DB transaction, handing it repositories
// bound to that transaction. Guarantees commit-or-rollback on every exit path.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		issuanceRepo repository.IssuanceRepository,
		deliveryRepo repository.DeliveryRepository,
		partRepo repository.PartRepository,
	) error) error
}
