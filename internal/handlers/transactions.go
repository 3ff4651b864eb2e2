package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

//go:generate mockgen -source=transactions.go -destination=transactions_mock.go -package=handlers

// TransactionSaver creates or updates a ledger transaction.
type TransactionSaver interface {
	CreateOrUpdate(ctx context.Context, userID uuid.UUID, draft models.TransactionDraft) (*models.Transaction, error)
}

// TransactionDeleter removes a ledger transaction.
type TransactionDeleter interface {
	Delete(ctx context.Context, userID, transactionID, walletID uuid.UUID) error
}

// TransactionHistory lists and searches a user's transactions.
type TransactionHistory interface {
	List(ctx context.Context, userID uuid.UUID, walletID *uuid.UUID) ([]models.Transaction, error)
	Search(ctx context.Context, userID uuid.UUID, query string) ([]models.Transaction, error)
}

// NewListTransactionsHandler returns an HTTP handler listing transactions, newest first.
// With q set the list is filtered by category, type or description.
// @Summary List or search transactions
// @Tags transactions
// @Produce json
// @Param walletId query string false "Wallet ID"
// @Param q query string false "Search query"
// @Success 200 {object} models.Response{data=[]models.Transaction}
// @Failure 400 {object} models.Response "Invalid wallet id"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var (
			txns []models.Transaction
			err  error
		)
		if r.URL.Query().Has("q") {
			txns, err = svc.Search(r.Context(), uid, r.URL.Query().Get("q"))
		} else {
			walletID, ok := queryUUID(w, r, "walletId")
			if !ok {
				return
			}
			txns, err = svc.List(r.Context(), uid, walletID)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		if txns == nil {
			txns = []models.Transaction{}
		}

		writeData(w, http.StatusOK, txns)
	}
}

// NewUpsertTransactionHandler returns an HTTP handler creating a transaction
// (no id) or updating an existing one, keeping wallet balances in step.
// @Summary Create or update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body models.TransactionDraft true "Transaction"
// @Success 200 {object} models.Response{data=models.Transaction}
// @Failure 400 {object} models.Response "Invalid input"
// @Failure 404 {object} models.Response "Transaction or wallet not found"
// @Failure 409 {object} models.Response "Insufficient balance"
// @Failure 502 {object} models.Response "Receipt upload failed"
// @Router /transactions [post]
// @Security BearerAuth
func NewUpsertTransactionHandler(svc TransactionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var draft models.TransactionDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}

		txn, err := svc.CreateOrUpdate(r.Context(), uid, draft)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, txn)
	}
}

// NewDeleteTransactionHandler returns an HTTP handler deleting a transaction
// and reverting its effect from the wallet.
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param walletId query string false "Wallet ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response "Transaction not found"
// @Failure 409 {object} models.Response "Cannot delete this transaction"
// @Router /transactions/{transactionID} [delete]
// @Security BearerAuth
func NewDeleteTransactionHandler(svc TransactionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		transactionID, ok := pathUUID(w, r, "transactionID")
		if !ok {
			return
		}
		walletID, ok := queryUUID(w, r, "walletId")
		if !ok {
			return
		}

		wid := uuid.Nil
		if walletID != nil {
			wid = *walletID
		}

		if err := svc.Delete(r.Context(), uid, transactionID, wid); err != nil {
			writeError(w, err)
			return
		}

		writeResponse(w, http.StatusOK, models.Response{Success: true, Msg: "Transaction deleted"})
	}
}
