package expense

import (
	"context"

	"fuelstation-backend/internal/store"
)

type storeRepository struct {
	*store.Store
}

func NewRepository(s *store.Store) Repository {
	return storeRepository{s}
}

func (r storeRepository) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	return r.WithinTx(ctx, func(tx *store.Store) error {
		return fn(storeRepository{tx})
	})
}
