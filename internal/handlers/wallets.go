package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
)

//go:generate mockgen -source=wallets.go -destination=wallets_mock.go -package=handlers

// WalletLister lists the wallets of a user.
type WalletLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Wallet, error)
}

// WalletUpserter creates or edits a wallet.
type WalletUpserter interface {
	Upsert(ctx context.Context, userID uuid.UUID, draft services.WalletDraft) (*models.Wallet, error)
}

// WalletDeleter deletes a wallet with its transactions.
type WalletDeleter interface {
	Delete(ctx context.Context, userID, walletID uuid.UUID) error
}

// WalletRequest represents the JSON body for creating or editing a wallet
// swagger:model WalletRequest
type WalletRequest struct {
	// Wallet id, omitted on create
	ID *uuid.UUID `json:"id,omitempty"`

	// Display name, required on create
	// default: Cash
	Name string `json:"name"`

	// Optional image
	Image *models.Attachment `json:"image,omitempty"`
}

// NewListWalletsHandler returns an HTTP handler listing the user's wallets.
// @Summary List wallets
// @Tags wallets
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Wallet}
// @Failure 401 {object} models.Response "Unauthorized"
// @Router /wallets [get]
// @Security BearerAuth
func NewListWalletsHandler(svc WalletLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		wallets, err := svc.List(r.Context(), uid)
		if err != nil {
			writeError(w, err)
			return
		}
		if wallets == nil {
			wallets = []models.Wallet{}
		}

		writeData(w, http.StatusOK, wallets)
	}
}

// NewUpsertWalletHandler returns an HTTP handler creating or editing a wallet.
// Balances cannot be set through this endpoint.
// @Summary Create or update a wallet
// @Tags wallets
// @Accept json
// @Produce json
// @Param request body handlers.WalletRequest true "Wallet"
// @Success 200 {object} models.Response{data=models.Wallet}
// @Failure 400 {object} models.Response "Invalid request"
// @Failure 404 {object} models.Response "Wallet not found"
// @Failure 502 {object} models.Response "Image upload failed"
// @Router /wallets [post]
// @Security BearerAuth
func NewUpsertWalletHandler(svc WalletUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req WalletRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}

		wallet, err := svc.Upsert(r.Context(), uid, services.WalletDraft{
			ID:    req.ID,
			Name:  req.Name,
			Image: req.Image,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, wallet)
	}
}

// NewDeleteWalletHandler returns an HTTP handler deleting a wallet and its transactions.
// @Summary Delete a wallet
// @Tags wallets
// @Produce json
// @Param walletID path string true "Wallet ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.Response "Wallet not found"
// @Router /wallets/{walletID} [delete]
// @Security BearerAuth
func NewDeleteWalletHandler(svc WalletDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}
		walletID, ok := pathUUID(w, r, "walletID")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), uid, walletID); err != nil {
			writeError(w, err)
			return
		}

		writeResponse(w, http.StatusOK, models.Response{Success: true, Msg: "Wallet deleted"})
	}
}
