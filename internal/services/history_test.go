package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, walletID := uuid.New(), uuid.New()
	txns := []models.Transaction{{TransactionID: uuid.New(), UserID: userID, WalletID: walletID}}

	finder := NewMockTransactionFinder(ctrl)
	finder.EXPECT().Find(gomock.Any(), models.TransactionFilter{UserID: userID, WalletID: &walletID}).Return(txns, nil)

	got, err := NewHistoryService(finder).List(context.Background(), userID, &walletID)

	require.NoError(t, err)
	assert.Equal(t, txns, got)
}

func TestHistoryService_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := NewMockTransactionFinder(ctrl)
	finder.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := NewHistoryService(finder).List(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, ErrStoreFailed)
}

func TestHistoryService_Search(t *testing.T) {
	food := models.Transaction{TransactionID: uuid.New(), Type: models.TransactionTypeExpense, Category: "Food", Description: "lunch"}
	salary := models.Transaction{TransactionID: uuid.New(), Type: models.TransactionTypeIncome, Category: "Salary", Description: "March"}
	rent := models.Transaction{TransactionID: uuid.New(), Type: models.TransactionTypeExpense, Category: "Housing", Description: "Rent for March"}
	coffee := models.Transaction{TransactionID: uuid.New(), Type: models.TransactionTypeExpense, Category: "Food", Description: "Café latte"}
	all := []models.Transaction{food, salary, rent, coffee}

	tests := []struct {
		name  string
		query string
		want  []models.Transaction
	}{
		{"Empty", "", all},
		{"SingleCharacter", "f", all},
		{"SingleMultibyteCharacter", "é", all},
		{"MultibyteQuery", "café", []models.Transaction{coffee}},
		{"Category", "FOOD", []models.Transaction{food, coffee}},
		{"Type", "income", []models.Transaction{salary}},
		{"Description", "march", []models.Transaction{salary, rent}},
		{"NoMatch", "travel", []models.Transaction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			finder := NewMockTransactionFinder(ctrl)
			finder.EXPECT().Find(gomock.Any(), gomock.Any()).Return(all, nil)

			got, err := NewHistoryService(finder).Search(context.Background(), uuid.New(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
