package repository

import (
	"context"

	"github.com/girochef/girochef-api/internal/domain/entity"
)

// StockMovementRepository define el puerto del diario de movimientos de stock.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByProduct(ctx context.Context, companyID, productID string, limit int) ([]*entity.StockMovement, error)
}
