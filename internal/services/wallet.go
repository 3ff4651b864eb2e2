package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=services

const walletsFolder = "wallets"

// WalletRepository defines wallet persistence used by WalletService.
type WalletRepository interface {
	GetByID(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Wallet, error)
	Upsert(ctx context.Context, patch models.WalletPatch) (*models.Wallet, error)
	Delete(ctx context.Context, walletID uuid.UUID) (bool, error)
}

// TransactionRemover deletes the transactions of a wallet.
type TransactionRemover interface {
	DeleteByWalletID(ctx context.Context, walletID uuid.UUID) (int64, error)
}

// WalletDraft is a user-initiated wallet create (nil ID) or edit.
// Balances are never set here; they belong to the ledger.
type WalletDraft struct {
	ID    *uuid.UUID
	Name  string
	Image *models.Attachment
}

// WalletService handles user-facing wallet operations.
type WalletService struct {
	wallets      WalletRepository
	transactions TransactionRemover
	tx           Transactor
	attachments  ReceiptResolver
}

// NewWalletService creates a new WalletService.
func NewWalletService(
	wallets WalletRepository,
	transactions TransactionRemover,
	tx Transactor,
	attachments ReceiptResolver,
) *WalletService {
	return &WalletService{
		wallets:      wallets,
		transactions: transactions,
		tx:           tx,
		attachments:  attachments,
	}
}

// Upsert creates a wallet with zero balances or renames / re-images an existing one.
func (s *WalletService) Upsert(ctx context.Context, userID uuid.UUID, draft WalletDraft) (*models.Wallet, error) {
	name := strings.TrimSpace(draft.Name)
	patch := models.WalletPatch{UserID: userID}

	if draft.ID == nil {
		if name == "" {
			return nil, invalidInput("wallet name is required")
		}
		zero := 0.0
		patch.Amount, patch.TotalIncome, patch.TotalExpenses = &zero, &zero, &zero
	} else {
		existing, err := s.wallets.GetByID(ctx, *draft.ID)
		if err != nil {
			logger.Log.Errorw("failed to load wallet", "walletID", *draft.ID, "error", err)
			return nil, storeErr(err)
		}
		if existing == nil || existing.UserID != userID {
			return nil, notFound("wallet", *draft.ID)
		}
		patch.WalletID = draft.ID
	}
	if name != "" {
		patch.Name = &name
	}

	image, err := s.attachments.Resolve(ctx, draft.Image, walletsFolder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAttachmentFailed, err)
	}
	patch.Image = image

	wallet, err := s.wallets.Upsert(ctx, patch)
	if err != nil {
		logger.Log.Errorw("failed to save wallet", "userID", userID, "error", err)
		return nil, storeErr(err)
	}
	if wallet == nil {
		return nil, invalidInput("wallet could not be saved")
	}
	return wallet, nil
}

// Delete removes the wallet together with every transaction attributed to it.
func (s *WalletService) Delete(ctx context.Context, userID, walletID uuid.UUID) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.GetByID(ctx, walletID)
		if err != nil {
			return storeErr(err)
		}
		if wallet == nil || wallet.UserID != userID {
			return notFound("wallet", walletID)
		}

		removed, err := s.transactions.DeleteByWalletID(ctx, walletID)
		if err != nil {
			return storeErr(err)
		}

		if _, err := s.wallets.Delete(ctx, walletID); err != nil {
			return storeErr(err)
		}

		logger.Log.Infow("wallet deleted", "walletID", walletID, "transactions", removed)
		return nil
	})
	if err != nil {
		err = classify(err)
		logger.Log.Errorw("failed to delete wallet", "userID", userID, "walletID", walletID, "error", err)
	}
	return err
}

// List returns the user's wallets.
func (s *WalletService) List(ctx context.Context, userID uuid.UUID) ([]models.Wallet, error) {
	wallets, err := s.wallets.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list wallets", "userID", userID, "error", err)
		return nil, storeErr(err)
	}
	return wallets, nil
}
