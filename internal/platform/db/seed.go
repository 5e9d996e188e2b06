package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"netpay/internal/domain/tax"
)

// Seed writes the built-in tax tables for any jurisdiction missing from
// the database.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	return tax.NewStore(pool).Seed(ctx, tax.Builtin())
}
