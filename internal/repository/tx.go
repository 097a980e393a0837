package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const addToBalanceQuery = `UPDATE accounts SET outstanding_balance = outstanding_balance + $1 WHERE id = $2;`

func rollback(ctx context.Context, tx pgx.Tx) {
	_ = tx.Rollback(ctx)
}

// chargeAccount adds delta to the account balance inside tx. Negative delta settles debt.
func chargeAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, delta decimal.Decimal) error {
	_, err := tx.Exec(ctx, addToBalanceQuery, delta, accountID)
	return err
}
