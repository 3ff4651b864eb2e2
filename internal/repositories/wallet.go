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

const walletColumns = `wallet_id, user_id, name, image, amount, total_income, total_expenses, created_at, updated_at`

// WalletRepository stores wallets. Balance fields are written as supplied;
// no balance arithmetic happens here.
type WalletRepository struct {
	db *sqlx.DB
}

func NewWalletRepository(db *sqlx.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetByID returns the wallet or nil if it does not exist.
func (r *WalletRepository) GetByID(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1`
	return r.get(ctx, query, walletID)
}

// GetForUpdate is GetByID with a row lock held until the surrounding transaction ends.
func (r *WalletRepository) GetForUpdate(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1 FOR UPDATE`
	return r.get(ctx, query, walletID)
}

func (r *WalletRepository) get(ctx context.Context, query string, walletID uuid.UUID) (*models.Wallet, error) {
	var wallet models.Wallet
	err := sqlx.GetContext(ctx, transactor.Executor(ctx, r.db), &wallet, query, walletID)

	logger.Log.Infow(
		"db query",
		"query", query,
		"args", []any{walletID},
		"result", wallet,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// ListByUserID returns the user's wallets, newest first.
func (r *WalletRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 ORDER BY created_at DESC`

	wallets := []models.Wallet{}
	err := sqlx.SelectContext(ctx, transactor.Executor(ctx, r.db), &wallets, query, userID)

	logger.Log.Infow(
		"db query",
		"query", query,
		"args", []any{userID},
		"result", len(wallets),
		"error", err,
	)

	return wallets, err
}

// Upsert creates a wallet when patch.WalletID is nil, otherwise merges the
// non-nil patch fields into the existing row. Missing numeric fields of a new
// wallet start at zero. Returns nil when the wallet exists but belongs to
// another user.
func (r *WalletRepository) Upsert(ctx context.Context, patch models.WalletPatch) (*models.Wallet, error) {
	query := `
		INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1::UUID, $2::UUID, COALESCE($3::TEXT, ''), $4::TEXT,
		        COALESCE($5::NUMERIC, 0), COALESCE($6::NUMERIC, 0), COALESCE($7::NUMERIC, 0), NOW(), NOW())
		ON CONFLICT (wallet_id) DO UPDATE SET
			name = COALESCE($3::TEXT, wallets.name),
			image = COALESCE($4::TEXT, wallets.image),
			amount = COALESCE($5::NUMERIC, wallets.amount),
			total_income = COALESCE($6::NUMERIC, wallets.total_income),
			total_expenses = COALESCE($7::NUMERIC, wallets.total_expenses),
			updated_at = NOW()
		WHERE wallets.user_id = EXCLUDED.user_id
		RETURNING ` + walletColumns

	walletID := uuid.New()
	if patch.WalletID != nil {
		walletID = *patch.WalletID
	}
	args := []any{walletID, patch.UserID, patch.Name, patch.Image, patch.Amount, patch.TotalIncome, patch.TotalExpenses}

	var wallet models.Wallet
	err := sqlx.GetContext(ctx, transactor.Executor(ctx, r.db), &wallet, query, args...)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", wallet,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Delete removes the wallet row and reports whether it existed.
func (r *WalletRepository) Delete(ctx context.Context, walletID uuid.UUID) (bool, error) {
	const query = `DELETE FROM wallets WHERE wallet_id = $1`

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

	return rowsAffected > 0, err
}
