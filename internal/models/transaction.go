package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TransactionType is the direction of a transaction: income or expense.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a stored ledger row.
type Transaction struct {
	TransactionID uuid.UUID       `json:"id" db:"transaction_id"`               // Unique transaction identifier
	UserID        uuid.UUID       `json:"uid" db:"user_id"`                     // Owning user
	WalletID      uuid.UUID       `json:"walletId" db:"wallet_id"`              // Wallet the transaction is attributed to
	Type          TransactionType `json:"type" db:"type"`                       // income or expense
	Amount        float64         `json:"amount" db:"amount"`                   // Always positive
	Date          time.Time       `json:"date" db:"date"`                       // When the transaction happened
	Category      string          `json:"category" db:"category"`               // Free-form category
	Description   string          `json:"description" db:"description"`         // Optional note
	Image         *string         `json:"image,omitempty" db:"image"`           // Resolved receipt reference
	CreatedAt     time.Time       `json:"created_at,omitempty" db:"created_at"` // Row creation time
	UpdatedAt     time.Time       `json:"updated_at,omitempty" db:"updated_at"` // Last row update
}

// Effect returns the signed adjustment the transaction applies to its wallet.
func (t Transaction) Effect() Effect {
	return EffectOf(t.Type, t.Amount)
}

// Attachment is a receipt payload: either an already resolved reference or raw content to upload.
type Attachment struct {
	Ref      string `json:"ref,omitempty"`      // Previously resolved reference URL
	Data     []byte `json:"data,omitempty"`     // Raw image content (base64 in JSON)
	Filename string `json:"filename,omitempty"` // Original file name, used for the upload form
}

// UnmarshalJSON accepts either a plain reference string, as returned in
// Transaction.Image, or an object with ref, data and filename.
func (a *Attachment) UnmarshalJSON(b []byte) error {
	var ref string
	if err := json.Unmarshal(b, &ref); err == nil {
		*a = Attachment{Ref: ref}
		return nil
	}

	type attachment Attachment
	var raw attachment
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*a = Attachment(raw)
	return nil
}

// Empty reports whether the attachment carries neither a reference nor content.
func (a *Attachment) Empty() bool {
	return a == nil || (a.Ref == "" && len(a.Data) == 0)
}

// TransactionDraft is the input of a ledger create-or-update.
// A nil ID means the transaction is new.
type TransactionDraft struct {
	ID          *uuid.UUID      `json:"id,omitempty"`
	WalletID    uuid.UUID       `json:"walletId"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Image       *Attachment     `json:"image,omitempty"`
}

// FinanciallyDiffers reports whether the draft changes the financial impact of old.
func (d TransactionDraft) FinanciallyDiffers(old Transaction) bool {
	return old.Type != d.Type || old.Amount != d.Amount || old.WalletID != d.WalletID
}

// TransactionFilter narrows a ledger query. Zero values mean "no constraint".
type TransactionFilter struct {
	UserID   uuid.UUID
	WalletID *uuid.UUID
	From     *time.Time
	To       *time.Time
	Limit    int
}

// LedgerOperation names a committed ledger mutation.
type LedgerOperation string

const (
	LedgerOperationCreated LedgerOperation = "created"
	LedgerOperationUpdated LedgerOperation = "updated"
	LedgerOperationDeleted LedgerOperation = "deleted"
)

// LedgerEvent is published after a ledger mutation commits.
type LedgerEvent struct {
	EventID       string          `json:"event_id"`
	Operation     LedgerOperation `json:"operation"`
	TransactionID string          `json:"transaction_id"`
	WalletID      string          `json:"wallet_id"`
	UserID        string          `json:"user_id"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Timestamp     int64           `json:"timestamp"` // Unix seconds
}
