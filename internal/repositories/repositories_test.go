package repositories

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func columns(list string) []string {
	cols := strings.Split(list, ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}

func walletRows(wallets ...models.Wallet) *sqlmock.Rows {
	rows := sqlmock.NewRows(columns(walletColumns))
	for _, w := range wallets {
		rows.AddRow(w.WalletID.String(), w.UserID.String(), w.Name, w.Image,
			w.Amount, w.TotalIncome, w.TotalExpenses, w.CreatedAt, w.UpdatedAt)
	}
	return rows
}

func transactionRows(txns ...models.Transaction) *sqlmock.Rows {
	rows := sqlmock.NewRows(columns(transactionColumns))
	for _, t := range txns {
		rows.AddRow(t.TransactionID.String(), t.UserID.String(), t.WalletID.String(), string(t.Type),
			t.Amount, t.Date, t.Category, t.Description, t.Image, t.CreatedAt, t.UpdatedAt)
	}
	return rows
}

func sampleWallet() models.Wallet {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return models.Wallet{
		WalletID:    uuid.New(),
		UserID:      uuid.New(),
		Name:        "Cash",
		Amount:      100,
		TotalIncome: 100,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func sampleTransaction() models.Transaction {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return models.Transaction{
		TransactionID: uuid.New(),
		UserID:        uuid.New(),
		WalletID:      uuid.New(),
		Type:          models.TransactionTypeExpense,
		Amount:        30,
		Date:          now,
		Category:      "groceries",
		Description:   "weekly shop",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
