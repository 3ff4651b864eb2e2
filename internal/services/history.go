package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

//go:generate mockgen -source=history.go -destination=history_mock.go -package=services

// TransactionFinder queries the ledger.
type TransactionFinder interface {
	Find(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
}

// HistoryService lists and searches a user's transactions.
type HistoryService struct {
	finder TransactionFinder
}

func NewHistoryService(finder TransactionFinder) *HistoryService {
	return &HistoryService{finder: finder}
}

// List returns the user's transactions, newest first, optionally for one wallet.
func (s *HistoryService) List(ctx context.Context, userID uuid.UUID, walletID *uuid.UUID) ([]models.Transaction, error) {
	txns, err := s.finder.Find(ctx, models.TransactionFilter{UserID: userID, WalletID: walletID})
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
		return nil, storeErr(err)
	}
	return txns, nil
}

// Search filters the user's transactions by a case-insensitive match on
// category, type or description. Queries shorter than two characters match everything.
func (s *HistoryService) Search(ctx context.Context, userID uuid.UUID, query string) ([]models.Transaction, error) {
	txns, err := s.List(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) <= 1 {
		return txns, nil
	}

	matched := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if strings.Contains(strings.ToLower(t.Category), q) ||
			strings.Contains(strings.ToLower(string(t.Type)), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}
