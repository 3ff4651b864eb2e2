package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet represents a wallet row in the database
type Wallet struct {
	WalletID      uuid.UUID `json:"id" db:"wallet_id"`                 // Unique wallet identifier
	UserID        uuid.UUID `json:"uid" db:"user_id"`                  // Identifier of the wallet's owner
	Name          string    `json:"name" db:"name"`                    // Display name
	Image         *string   `json:"image,omitempty" db:"image"`        // Optional image reference
	Amount        float64   `json:"amount" db:"amount"`                // Current balance
	TotalIncome   float64   `json:"totalIncome" db:"total_income"`     // Sum of income attributed to the wallet
	TotalExpenses float64   `json:"totalExpenses" db:"total_expenses"` // Sum of expenses attributed to the wallet
	CreatedAt     time.Time `json:"created_at" db:"created_at"`        // Timestamp when the wallet was created
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`        // Timestamp of the last wallet update
}

// WalletPatch is a partial wallet write. Nil fields are left untouched;
// a nil WalletID creates a new wallet.
type WalletPatch struct {
	WalletID      *uuid.UUID
	UserID        uuid.UUID
	Name          *string
	Image         *string
	Amount        *float64
	TotalIncome   *float64
	TotalExpenses *float64
}

// Apply returns the wallet with the effect added to its balance and bucket total.
func (w Wallet) Apply(e Effect) Wallet {
	w.Amount += e.BalanceDelta
	switch e.Bucket {
	case BucketIncome:
		w.TotalIncome += e.BucketDelta
	case BucketExpenses:
		w.TotalExpenses += e.BucketDelta
	}
	return w
}

// BalancePatch builds a patch that writes the wallet's balance and only the
// bucket total touched by e.
func (w Wallet) BalancePatch(e Effect) WalletPatch {
	id := w.WalletID
	amount := w.Amount
	patch := WalletPatch{
		WalletID: &id,
		UserID:   w.UserID,
		Amount:   &amount,
	}
	switch e.Bucket {
	case BucketIncome:
		total := w.TotalIncome
		patch.TotalIncome = &total
	case BucketExpenses:
		total := w.TotalExpenses
		patch.TotalExpenses = &total
	}
	return patch
}
