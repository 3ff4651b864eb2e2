package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/transactor"
)

const transactionColumns = `transaction_id, user_id, wallet_id, type, amount, date, category, description, image, created_at, updated_at`

// TransactionRepository stores ledger rows.
type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetByID returns the transaction or nil if it does not exist.
func (r *TransactionRepository) GetByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	return r.get(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1`, transactionID)
}

// GetForUpdate is GetByID with a row lock held until the surrounding transaction ends.
func (r *TransactionRepository) GetForUpdate(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	return r.get(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1 FOR UPDATE`, transactionID)
}

func (r *TransactionRepository) get(ctx context.Context, query string, transactionID uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	err := sqlx.GetContext(ctx, transactor.Executor(ctx, r.db), &txn, query, transactionID)

	logger.Log.Infow(
		"db query",
		"query", query,
		"args", []any{transactionID},
		"result", txn,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Save inserts the transaction or replaces the stored row with the same ID.
// A nil Image keeps the stored reference. Returns nil when the ID exists but
// belongs to another user.
func (r *TransactionRepository) Save(ctx context.Context, txn models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (transaction_id) DO UPDATE SET
			wallet_id = EXCLUDED.wallet_id,
			type = EXCLUDED.type,
			amount = EXCLUDED.amount,
			date = EXCLUDED.date,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			image = COALESCE(EXCLUDED.image, transactions.image),
			updated_at = NOW()
		WHERE transactions.user_id = EXCLUDED.user_id
		RETURNING ` + transactionColumns

	args := []any{
		txn.TransactionID, txn.UserID, txn.WalletID, string(txn.Type), txn.Amount,
		txn.Date, txn.Category, txn.Description, txn.Image,
	}

	var saved models.Transaction
	err := sqlx.GetContext(ctx, transactor.Executor(ctx, r.db), &saved, query, args...)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", saved,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes the transaction and reports whether it existed.
func (r *TransactionRepository) Delete(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	const query = `DELETE FROM transactions WHERE transaction_id = $1`

	res, err := transactor.Executor(ctx, r.db).ExecContext(ctx, query, transactionID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"db query",
		"query", query,
		"args", []any{transactionID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// DeleteByWalletID removes every transaction attributed to the wallet.
func (r *TransactionRepository) DeleteByWalletID(ctx context.Context, walletID uuid.UUID) (int64, error) {
	const query = `DELETE FROM transactions WHERE wallet_id = $1`

	res, err := transactor.Executor(ctx, r.db).ExecContext(ctx, query, walletID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"db query",
		"query", query,
		"args", []any{walletID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Find returns the user's transactions matching the filter, newest first.
func (r *TransactionRepository) Find(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		  AND ($2::UUID IS NULL OR wallet_id = $2)
		  AND ($3::TIMESTAMPTZ IS NULL OR date >= $3)
		  AND ($4::TIMESTAMPTZ IS NULL OR date <= $4)
		ORDER BY date DESC
		LIMIT NULLIF($5::INT, 0)
	`
	args := []any{filter.UserID, filter.WalletID, filter.From, filter.To, filter.Limit}

	txns := []models.Transaction{}
	err := sqlx.SelectContext(ctx, transactor.Executor(ctx, r.db), &txns, query, args...)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(txns),
		"error", err,
	)

	return txns, err
}
