package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=services

const transactionsFolder = "transactions"

// Amounts are stored as NUMERIC(20,2).
const (
	amountScale = 2
	maxAmount   = 1e18
)

// WalletStore reads and writes wallet balances for the ledger.
type WalletStore interface {
	GetForUpdate(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error)
	Upsert(ctx context.Context, patch models.WalletPatch) (*models.Wallet, error)
}

// TransactionStore reads and writes ledger rows.
type TransactionStore interface {
	GetForUpdate(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)
	Save(ctx context.Context, txn models.Transaction) (*models.Transaction, error)
	Delete(ctx context.Context, transactionID uuid.UUID) (bool, error)
}

// Transactor runs fn as one atomic unit of work.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReceiptResolver turns an attachment payload into a stored reference.
type ReceiptResolver interface {
	Resolve(ctx context.Context, payload *models.Attachment, folder string) (*string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService creates, updates and deletes transactions while keeping
// exactly one wallet's balance and bucket totals in step with each change.
// Every mutation runs inside a single Transactor unit: the balance guard is
// checked before anything is written, and a failure at any later step
// (receipt upload, record write) rolls the wallet writes back.
type LedgerService struct {
	wallets      WalletStore
	transactions TransactionStore
	tx           Transactor
	attachments  ReceiptResolver
	kafkaWriter  KafkaWriter
	now          func() time.Time
}

// NewLedgerService creates a new LedgerService. kafkaWriter may be nil.
func NewLedgerService(
	wallets WalletStore,
	transactions TransactionStore,
	tx Transactor,
	attachments ReceiptResolver,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		wallets:      wallets,
		transactions: transactions,
		tx:           tx,
		attachments:  attachments,
		kafkaWriter:  kafkaWriter,
		now:          time.Now,
	}
}

func validateDraft(draft models.TransactionDraft) error {
	switch {
	case draft.Amount <= 0:
		return invalidInput("amount must be greater than zero")
	case draft.Amount >= maxAmount:
		return invalidInput("amount is too large")
	case decimal.NewFromFloat(draft.Amount).Exponent() < -amountScale:
		return invalidInput("amount must have at most two decimal places")
	case draft.WalletID == uuid.Nil:
		return invalidInput("walletId is required")
	case !draft.Type.Valid():
		return invalidInput("type must be income or expense")
	}
	return nil
}

// CreateOrUpdate stores the draft as a new transaction (nil ID) or replaces
// an existing one, adjusting wallet balances only when type, amount or
// wallet changed.
func (s *LedgerService) CreateOrUpdate(ctx context.Context, userID uuid.UUID, draft models.TransactionDraft) (*models.Transaction, error) {
	if err := validateDraft(draft); err != nil {
		logger.Log.Warnw("rejected transaction draft", "userID", userID, "error", err)
		return nil, err
	}

	op := models.LedgerOperationCreated
	transactionID := uuid.New()
	if draft.ID != nil {
		op = models.LedgerOperationUpdated
		transactionID = *draft.ID
	}

	var saved *models.Transaction
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		date := draft.Date
		if draft.ID == nil {
			if err := s.applyNew(ctx, userID, draft); err != nil {
				return err
			}
		} else {
			old, err := s.transactions.GetForUpdate(ctx, transactionID)
			if err != nil {
				return storeErr(err)
			}
			if old == nil || old.UserID != userID {
				return notFound("transaction", transactionID)
			}
			if date.IsZero() {
				date = old.Date
			}
			if draft.FinanciallyDiffers(*old) {
				if err := s.revertAndApply(ctx, userID, *old, draft); err != nil {
					return err
				}
			}
		}

		image, err := s.attachments.Resolve(ctx, draft.Image, transactionsFolder)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAttachmentFailed, err)
		}

		if date.IsZero() {
			date = s.now()
		}

		saved, err = s.transactions.Save(ctx, models.Transaction{
			TransactionID: transactionID,
			UserID:        userID,
			WalletID:      draft.WalletID,
			Type:          draft.Type,
			Amount:        draft.Amount,
			Date:          date,
			Category:      draft.Category,
			Description:   draft.Description,
			Image:         image,
		})
		if err != nil {
			return storeErr(err)
		}
		if saved == nil {
			return notFound("transaction", transactionID)
		}
		return nil
	})
	if err != nil {
		err = classify(err)
		logger.Log.Errorw("failed to save transaction",
			"userID", userID, "transactionID", transactionID, "walletID", draft.WalletID, "error", err)
		return nil, err
	}

	s.publish(ctx, op, *saved)
	return saved, nil
}

// Delete removes the transaction and its effect from walletID. A zero
// walletID means the wallet the transaction is stored against.
func (s *LedgerService) Delete(ctx context.Context, userID, transactionID, walletID uuid.UUID) error {
	var deleted models.Transaction
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		txn, err := s.transactions.GetForUpdate(ctx, transactionID)
		if err != nil {
			return storeErr(err)
		}
		if txn == nil || txn.UserID != userID {
			return notFound("transaction", transactionID)
		}
		if walletID == uuid.Nil {
			walletID = txn.WalletID
		}
		if walletID != txn.WalletID {
			return invalidInput("transaction does not belong to the wallet")
		}

		wallet, err := s.loadWallet(ctx, userID, walletID)
		if err != nil {
			return err
		}

		revert := txn.Effect().Inverse()
		reverted := wallet.Apply(revert)
		if txn.Type == models.TransactionTypeExpense && reverted.Amount < 0 {
			return fmt.Errorf("%w: cannot delete this transaction", ErrInsufficientBalance)
		}

		if err := s.writeBalance(ctx, reverted, revert); err != nil {
			return err
		}

		ok, err := s.transactions.Delete(ctx, transactionID)
		if err != nil {
			return storeErr(err)
		}
		if !ok {
			return notFound("transaction", transactionID)
		}
		deleted = *txn
		return nil
	})
	if err != nil {
		err = classify(err)
		logger.Log.Errorw("failed to delete transaction",
			"userID", userID, "transactionID", transactionID, "walletID", walletID, "error", err)
		return err
	}

	s.publish(ctx, models.LedgerOperationDeleted, deleted)
	return nil
}

func (s *LedgerService) applyNew(ctx context.Context, userID uuid.UUID, draft models.TransactionDraft) error {
	wallet, err := s.loadWallet(ctx, userID, draft.WalletID)
	if err != nil {
		return err
	}

	if draft.Type == models.TransactionTypeExpense && wallet.Amount-draft.Amount < 0 {
		return ErrInsufficientBalance
	}

	effect := models.EffectOf(draft.Type, draft.Amount)
	return s.writeBalance(ctx, wallet.Apply(effect), effect)
}

// revertAndApply removes old's effect from its wallet and applies the
// draft's effect to the draft's wallet. For an expense the guard compares
// the reverted balance when the wallet is unchanged, and the target
// wallet's current balance when the transaction moves between wallets.
func (s *LedgerService) revertAndApply(ctx context.Context, userID uuid.UUID, old models.Transaction, draft models.TransactionDraft) error {
	oldWallet, newWallet, err := s.lockWallets(ctx, userID, old.WalletID, draft.WalletID)
	if err != nil {
		return err
	}

	revert := old.Effect().Inverse()
	reverted := oldWallet.Apply(revert)
	sameWallet := old.WalletID == draft.WalletID

	if draft.Type == models.TransactionTypeExpense {
		if sameWallet && reverted.Amount < draft.Amount {
			return ErrInsufficientBalance
		}
		if !sameWallet && newWallet.Amount < draft.Amount {
			return ErrInsufficientBalance
		}
	}

	if err := s.writeBalance(ctx, reverted, revert); err != nil {
		return err
	}

	target := newWallet
	if sameWallet {
		target = reverted
	}
	apply := models.EffectOf(draft.Type, draft.Amount)
	return s.writeBalance(ctx, target.Apply(apply), apply)
}

// lockWallets loads and locks both wallets in a stable order so that
// concurrent moves in opposite directions cannot deadlock.
func (s *LedgerService) lockWallets(ctx context.Context, userID, oldID, newID uuid.UUID) (oldWallet, newWallet models.Wallet, err error) {
	if oldID == newID {
		w, err := s.loadWallet(ctx, userID, oldID)
		if err != nil {
			return models.Wallet{}, models.Wallet{}, err
		}
		return w, w, nil
	}

	first, second := oldID, newID
	if bytes.Compare(first[:], second[:]) > 0 {
		first, second = second, first
	}
	a, err := s.loadWallet(ctx, userID, first)
	if err != nil {
		return models.Wallet{}, models.Wallet{}, err
	}
	b, err := s.loadWallet(ctx, userID, second)
	if err != nil {
		return models.Wallet{}, models.Wallet{}, err
	}
	if first == oldID {
		return a, b, nil
	}
	return b, a, nil
}

func (s *LedgerService) loadWallet(ctx context.Context, userID, walletID uuid.UUID) (models.Wallet, error) {
	wallet, err := s.wallets.GetForUpdate(ctx, walletID)
	if err != nil {
		return models.Wallet{}, storeErr(err)
	}
	if wallet == nil || wallet.UserID != userID {
		return models.Wallet{}, notFound("wallet", walletID)
	}
	return *wallet, nil
}

func (s *LedgerService) writeBalance(ctx context.Context, wallet models.Wallet, effect models.Effect) error {
	updated, err := s.wallets.Upsert(ctx, wallet.BalancePatch(effect))
	if err != nil {
		return storeErr(err)
	}
	if updated == nil {
		return notFound("wallet", wallet.WalletID)
	}
	return nil
}

// publish sends a committed mutation to Kafka. Failures are logged only.
func (s *LedgerService) publish(ctx context.Context, op models.LedgerOperation, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.LedgerEvent{
		EventID:       uuid.NewString(),
		Operation:     op,
		TransactionID: txn.TransactionID.String(),
		WalletID:      txn.WalletID.String(),
		UserID:        txn.UserID.String(),
		Type:          txn.Type,
		Amount:        txn.Amount,
		Timestamp:     s.now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal ledger event for Kafka", "transaction_id", event.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish ledger event to Kafka", "transaction_id", event.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Ledger event published to Kafka", "transaction_id", event.TransactionID, "operation", op)
	}
}
