package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memLedger is an in-memory wallet and transaction store with snapshot
// rollback, standing in for Postgres.
type memLedger struct {
	wallets      map[uuid.UUID]models.Wallet
	transactions map[uuid.UUID]models.Transaction
	walletWrites int
	saveErr      error
}

func newMemLedger() *memLedger {
	return &memLedger{
		wallets:      map[uuid.UUID]models.Wallet{},
		transactions: map[uuid.UUID]models.Transaction{},
	}
}

func (m *memLedger) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	wallets := make(map[uuid.UUID]models.Wallet, len(m.wallets))
	for k, v := range m.wallets {
		wallets[k] = v
	}
	txns := make(map[uuid.UUID]models.Transaction, len(m.transactions))
	for k, v := range m.transactions {
		txns[k] = v
	}
	if err := fn(ctx); err != nil {
		m.wallets, m.transactions = wallets, txns
		return err
	}
	return nil
}

type memWallets struct{ *memLedger }

func (m memWallets) GetForUpdate(_ context.Context, walletID uuid.UUID) (*models.Wallet, error) {
	w, ok := m.wallets[walletID]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (m memWallets) Upsert(_ context.Context, patch models.WalletPatch) (*models.Wallet, error) {
	w, ok := m.wallets[*patch.WalletID]
	if !ok || w.UserID != patch.UserID {
		return nil, nil
	}
	if patch.Amount != nil {
		w.Amount = *patch.Amount
	}
	if patch.TotalIncome != nil {
		w.TotalIncome = *patch.TotalIncome
	}
	if patch.TotalExpenses != nil {
		w.TotalExpenses = *patch.TotalExpenses
	}
	m.wallets[w.WalletID] = w
	m.walletWrites++
	return &w, nil
}

type memTransactions struct{ *memLedger }

func (m memTransactions) GetForUpdate(_ context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	t, ok := m.transactions[transactionID]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (m memTransactions) Save(_ context.Context, txn models.Transaction) (*models.Transaction, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	if old, ok := m.transactions[txn.TransactionID]; ok && txn.Image == nil {
		txn.Image = old.Image
	}
	m.transactions[txn.TransactionID] = txn
	return &txn, nil
}

func (m memTransactions) Delete(_ context.Context, transactionID uuid.UUID) (bool, error) {
	if _, ok := m.transactions[transactionID]; !ok {
		return false, nil
	}
	delete(m.transactions, transactionID)
	return true, nil
}

type staticResolver struct {
	err error
}

func (r staticResolver) Resolve(_ context.Context, payload *models.Attachment, _ string) (*string, error) {
	if r.err != nil {
		return nil, r.err
	}
	if payload.Empty() {
		return nil, nil
	}
	ref := "https://cdn.example.com/receipt.png"
	return &ref, nil
}

type ledgerFixture struct {
	store   *memLedger
	svc     *LedgerService
	userID  uuid.UUID
	walletA uuid.UUID
	walletB uuid.UUID
}

func newLedgerFixture(t *testing.T, resolver ReceiptResolver) *ledgerFixture {
	t.Helper()
	store := newMemLedger()
	userID := uuid.New()
	a, b := uuid.New(), uuid.New()
	store.wallets[a] = models.Wallet{WalletID: a, UserID: userID, Name: "Cash"}
	store.wallets[b] = models.Wallet{WalletID: b, UserID: userID, Name: "Card"}

	if resolver == nil {
		resolver = staticResolver{}
	}
	svc := NewLedgerService(memWallets{store}, memTransactions{store}, store, resolver, nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	return &ledgerFixture{store: store, svc: svc, userID: userID, walletA: a, walletB: b}
}

func (f *ledgerFixture) create(t *testing.T, walletID uuid.UUID, typ models.TransactionType, amount float64) *models.Transaction {
	t.Helper()
	txn, err := f.svc.CreateOrUpdate(context.Background(), f.userID, models.TransactionDraft{
		WalletID: walletID,
		Type:     typ,
		Amount:   amount,
		Category: "Misc",
	})
	require.NoError(t, err)
	return txn
}

func (f *ledgerFixture) wallet(id uuid.UUID) models.Wallet {
	return f.store.wallets[id]
}

func redraft(txn models.Transaction) models.TransactionDraft {
	id := txn.TransactionID
	return models.TransactionDraft{
		ID:          &id,
		WalletID:    txn.WalletID,
		Type:        txn.Type,
		Amount:      txn.Amount,
		Date:        txn.Date,
		Category:    txn.Category,
		Description: txn.Description,
	}
}

func TestLedgerService_CreateIncomeThenExpense(t *testing.T) {
	f := newLedgerFixture(t, nil)

	f.create(t, f.walletA, models.TransactionTypeIncome, 100)
	f.create(t, f.walletA, models.TransactionTypeExpense, 30)

	w := f.wallet(f.walletA)
	assert.Equal(t, 70.0, w.Amount)
	assert.Equal(t, 100.0, w.TotalIncome)
	assert.Equal(t, 30.0, w.TotalExpenses)
	assert.Len(t, f.store.transactions, 2)
}

func TestLedgerService_CreateDefaultsDate(t *testing.T) {
	f := newLedgerFixture(t, nil)

	txn := f.create(t, f.walletA, models.TransactionTypeIncome, 10)

	assert.Equal(t, f.svc.now(), txn.Date)
	assert.Equal(t, f.userID, txn.UserID)
	assert.NotEqual(t, uuid.Nil, txn.TransactionID)
}

func TestLedgerService_CreateExpenseOverBalance(t *testing.T) {
	f := newLedgerFixture(t, nil)
	f.create(t, f.walletA, models.TransactionTypeIncome, 100)

	_, err := f.svc.CreateOrUpdate(context.Background(), f.userID, models.TransactionDraft{
		WalletID: f.walletA,
		Type:     models.TransactionTypeExpense,
		Amount:   1000,
	})

	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 100.0, f.wallet(f.walletA).Amount)
	assert.Len(t, f.store.transactions, 1)
}

func TestLedgerService_CreateExpenseDrainsToZero(t *testing.T) {
	f := newLedgerFixture(t, nil)
	f.create(t, f.walletA, models.TransactionTypeIncome, 40)

	f.create(t, f.walletA, models.TransactionTypeExpense, 40)

	assert.Equal(t, 0.0, f.wallet(f.walletA).Amount)
}

func TestLedgerService_CentAmounts(t *testing.T) {
	f := newLedgerFixture(t, nil)
	f.create(t, f.walletA, models.TransactionTypeIncome, 100)
	expense := f.create(t, f.walletA, models.TransactionTypeExpense, 0.01)
	f.create(t, f.walletA, models.TransactionTypeExpense, 12.5)

	assert.InDelta(t, 87.49, f.wallet(f.walletA).Amount, 1e-9)

	require.NoError(t, f.svc.Delete(context.Background(), f.userID, expense.TransactionID, f.walletA))
	assert.InDelta(t, 87.5, f.wallet(f.walletA).Amount, 1e-9)
	assert.InDelta(t, 12.5, f.wallet(f.walletA).TotalExpenses, 1e-9)
}

func TestLedgerService_CreateInvalidInput(t *testing.T) {
	f := newLedgerFixture(t, nil)

	tests := []struct {
		name  string
		draft models.TransactionDraft
	}{
		{"ZeroAmount", models.TransactionDraft{WalletID: f.walletA, Type: models.TransactionTypeIncome}},
		{"NegativeAmount", models.TransactionDraft{WalletID: f.walletA, Type: models.TransactionTypeIncome, Amount: -5}},
		{"MissingWallet", models.TransactionDraft{Type: models.TransactionTypeIncome, Amount: 5}},
		{"UnknownType", models.TransactionDraft{WalletID: f.walletA, Type: "transfer", Amount: 5}},
		{"SubCentAmount", models.TransactionDraft{WalletID: f.walletA, Type: models.TransactionTypeExpense, Amount: 0.005}},
		{"RoundsToZero", models.TransactionDraft{WalletID: f.walletA, Type: models.TransactionTypeIncome, Amount: 0.004}},
		{"ThreeDecimals", models.TransactionDraft{WalletID: f.walletA, Type: models.TransactionTypeIncome, Amount: 12.345}},
		{"TooLarge", models.TransactionDraft{WalletID: f.walletA, Type: models.TransactionTypeIncome, Amount: 1e18}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateOrUpdate(context.Background(), f.userID, tt.draft)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, f.store.walletWrites)
		})
	}
}

func TestLedgerService_CreateUnknownWallet(t *testing.T) {
	f := newLedgerFixture(t, nil)

	_, err := f.svc.CreateOrUpdate(context.Background(), f.userID, models.TransactionDraft{
		WalletID: uuid.New(),
		Type:     models.TransactionTypeIncome,
		Amount:   5,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.store.transactions)
}

func TestLedgerService_CreateForeignWallet(t *testing.T) {
	f := newLedgerFixture(t, nil)

	_, err := f.svc.CreateOrUpdate(context.Background(), uuid.New(), models.TransactionDraft{
		WalletID: f.walletA,
		Type:     models.TransactionTypeIncome,
		Amount:   5,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0.0, f.wallet(f.walletA).Amount)
}

func TestLedgerService_AttachmentFailureRollsBack(t *testing.T) {
	f := newLedgerFixture(t, staticResolver{err: ErrUploadFailed})

	_, err := f.svc.CreateOrUpdate(context.Background(), f.userID, models.TransactionDraft{
		WalletID: f.walletA,
		Type:     models.TransactionTypeIncome,
		Amount:   25,
		Image:    &models.Attachment{Data: []byte("png")},
	})

	require.ErrorIs(t, err, ErrAttachmentFailed)
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Equal(t, 0.0, f.wallet(f.walletA).Amount)
	assert.Empty(t, f.store.transactions)
}

func TestLedgerService_RecordWriteFailureRollsBack(t *testing.T) {
	f := newLedgerFixture(t, nil)
	f.store.saveErr = errors.New("connection reset")

	_, err := f.svc.CreateOrUpdate(context.Background(), f.userID, models.TransactionDraft{
		WalletID: f.walletA,
		Type:     models.TransactionTypeIncome,
		Amount:   25,
	})

	assert.ErrorIs(t, err, ErrStoreFailed)
	assert.Equal(t, 0.0, f.wallet(f.walletA).Amount)
	assert.Equal(t, 0.0, f.wallet(f.walletA).TotalIncome)
}

func TestLedgerService_CreateWithReceipt(t *testing.T) {
	f := newLedgerFixture(t, nil)

	txn, err := f.svc.CreateOrUpdate(context.Background(), f.userID, models.TransactionDraft{
		WalletID: f.walletA,
		Type:     models.TransactionTypeIncome,
		Amount:   25,
		Image:    &models.Attachment{Data: []byte("png"), Filename: "r.png"},
	})

	require.NoError(t, err)
	require.NotNil(t, txn.Image)
	assert.Equal(t, "https://cdn.example.com/receipt.png", *txn.Image)
}

func TestLedgerService_UpdateNonFinancialFieldsOnly(t *testing.T) {
	f := newLedgerFixture(t, nil)
	txn := f.create(t, f.walletA, models.TransactionTypeIncome, 100)
	writes := f.store.walletWrites
	before := f.wallet(f.walletA)

	draft := redraft(*txn)
	draft.Category = "Salary"
	draft.Description = "March"
	updated, err := f.svc.CreateOrUpdate(context.Background(), f.userID, draft)

	require.NoError(t, err)
	assert.Equal(t, writes, f.store.walletWrites)
	assert.Equal(t, before, f.wallet(f.walletA))
	assert.Equal(t, "Salary", updated.Category)
	assert.Equal(t, txn.TransactionID, updated.TransactionID)
}

func TestLedgerService_UpdateAmountSameWallet(t *testing.T) {
	f := newLedgerFixture(t, nil)
	f.create(t, f.walletA, models.TransactionTypeIncome, 100)
	expense := f.create(t, f.walletA, models.TransactionTypeExpense, 30)

	draft := redraft(*expense)
	draft.Amount = 80
	_, err := f.svc.CreateOrUpdate(context.Background(), f.userID, draft)
	require.NoError(t, err)

	w := f.wallet(f.walletA)
	assert.Equal(t, 20.0, w.Amount)
	assert.Equal(t, 100.0, w.TotalIncome)
	assert.Equal(t, 80.0, w.TotalExpenses)
}

func TestLedgerService_UpdateExpenseOverRevertedBalance(t *testing.T) {
	f := newLedgerFixture(t, nil)
	f.create(t, f.walletA, models.TransactionTypeIncome, 100)
	expense := f.create(t, f.walletA, models.TransactionTypeExpense, 30)

	draft := redraft(*expense)
	draft.Amount = 101
	_, err := f.svc.CreateOrUpdate(context.Background(), f.userID, draft)

	require.ErrorIs(t, err, ErrInsufficientBalance)
	w := f.wallet(f.walletA)
	assert.Equal(t, 70.0, w.Amount)
	assert.Equal(t, 30.0, w.TotalExpenses)
	assert.Equal(t, 30.0, f.store.transactions[expense.TransactionID].Amount)
}

func TestLedgerService_UpdateTypeFlip(t *testing.T) {
	f := newLedgerFixture(t, nil)
	f.create(t, f.walletA, models.TransactionTypeIncome, 100)
	expense := f.create(t, f.walletA, models.TransactionTypeExpense, 30)

	draft := redraft(*expense)
	draft.Type = models.TransactionTypeIncome
	_, err := f.svc.CreateOrUpdate(context.Background(), f.userID, draft)
	require.NoError(t, err)

	w := f.wallet(f.walletA)
	assert.Equal(t, 130.0, w.Amount)
	assert.Equal(t, 130.0, w.TotalIncome)
	assert.Equal(t, 0.0, w.TotalExpenses)
}

func TestLedgerService_UpdateMovesBetweenWallets(t *testing.T) {
	f := newLedgerFixture(t, nil)
	f.create(t, f.walletA, models.TransactionTypeIncome, 100)
	f.create(t, f.walletB, models.TransactionTypeIncome, 50)
	expense := f.create(t, f.walletA, models.TransactionTypeExpense, 30)

	draft := redraft(*expense)
	draft.WalletID = f.walletB
	moved, err := f.svc.CreateOrUpdate(context.Background(), f.userID, draft)
	require.NoError(t, err)

	a, b := f.wallet(f.walletA), f.wallet(f.walletB)
	assert.Equal(t, 100.0, a.Amount)
	assert.Equal(t, 0.0, a.TotalExpenses)
	assert.Equal(t, 20.0, b.Amount)
	assert.Equal(t, 30.0, b.TotalExpenses)
	assert.Equal(t, f.walletB, moved.WalletID)
}

func TestLedgerService_UpdateMoveChecksTargetWallet(t *testing.T) {
	f := newLedgerFixture(t, nil)
	f.create(t, f.walletA, models.TransactionTypeIncome, 100)
	f.create(t, f.walletB, models.TransactionTypeIncome, 10)
	expense := f.create(t, f.walletA, models.TransactionTypeExpense, 30)

	draft := redraft(*expense)
	draft.WalletID = f.walletB
	_, err := f.svc.CreateOrUpdate(context.Background(), f.userID, draft)

	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 70.0, f.wallet(f.walletA).Amount)
	assert.Equal(t, 10.0, f.wallet(f.walletB).Amount)
}

func TestLedgerService_UpdateUnknownTransaction(t *testing.T) {
	f := newLedgerFixture(t, nil)
	id := uuid.New()

	_, err := f.svc.CreateOrUpdate(context.Background(), f.userID, models.TransactionDraft{
		ID:       &id,
		WalletID: f.walletA,
		Type:     models.TransactionTypeIncome,
		Amount:   5,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.store.transactions)
}

func TestLedgerService_UpdateKeepsStoredImage(t *testing.T) {
	f := newLedgerFixture(t, nil)
	txn, err := f.svc.CreateOrUpdate(context.Background(), f.userID, models.TransactionDraft{
		WalletID: f.walletA,
		Type:     models.TransactionTypeIncome,
		Amount:   25,
		Image:    &models.Attachment{Data: []byte("png")},
	})
	require.NoError(t, err)

	draft := redraft(*txn)
	draft.Description = "edited"
	updated, err := f.svc.CreateOrUpdate(context.Background(), f.userID, draft)

	require.NoError(t, err)
	require.NotNil(t, updated.Image)
	assert.Equal(t, *txn.Image, *updated.Image)
}

func TestLedgerService_UpdateKeepsStoredDate(t *testing.T) {
	f := newLedgerFixture(t, nil)
	stored := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	txn, err := f.svc.CreateOrUpdate(context.Background(), f.userID, models.TransactionDraft{
		WalletID: f.walletA,
		Type:     models.TransactionTypeIncome,
		Amount:   25,
		Date:     stored,
	})
	require.NoError(t, err)

	t.Run("date omitted", func(t *testing.T) {
		draft := redraft(*txn)
		draft.Date = time.Time{}
		draft.Description = "edited"

		updated, err := f.svc.CreateOrUpdate(context.Background(), f.userID, draft)
		require.NoError(t, err)
		assert.True(t, stored.Equal(updated.Date))
		assert.True(t, stored.Equal(f.store.transactions[txn.TransactionID].Date))
	})

	t.Run("date supplied", func(t *testing.T) {
		moved := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		draft := redraft(*txn)
		draft.Date = moved

		updated, err := f.svc.CreateOrUpdate(context.Background(), f.userID, draft)
		require.NoError(t, err)
		assert.True(t, moved.Equal(updated.Date))
	})
}

func TestLedgerService_CreateDefaultsDateToNow(t *testing.T) {
	f := newLedgerFixture(t, nil)
	txn := f.create(t, f.walletA, models.TransactionTypeIncome, 10)

	assert.True(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC).Equal(txn.Date))
}

func TestLedgerService_Delete(t *testing.T) {
	f := newLedgerFixture(t, nil)
	f.create(t, f.walletA, models.TransactionTypeIncome, 100)
	expense := f.create(t, f.walletA, models.TransactionTypeExpense, 30)

	err := f.svc.Delete(context.Background(), f.userID, expense.TransactionID, f.walletA)
	require.NoError(t, err)

	w := f.wallet(f.walletA)
	assert.Equal(t, 100.0, w.Amount)
	assert.Equal(t, 0.0, w.TotalExpenses)
	assert.NotContains(t, f.store.transactions, expense.TransactionID)
}

func TestLedgerService_DeleteDefaultsWallet(t *testing.T) {
	f := newLedgerFixture(t, nil)
	income := f.create(t, f.walletB, models.TransactionTypeIncome, 40)

	err := f.svc.Delete(context.Background(), f.userID, income.TransactionID, uuid.Nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, f.wallet(f.walletB).Amount)
	assert.Equal(t, 0.0, f.wallet(f.walletB).TotalIncome)
}

func TestLedgerService_DeleteWrongWallet(t *testing.T) {
	f := newLedgerFixture(t, nil)
	income := f.create(t, f.walletA, models.TransactionTypeIncome, 40)

	err := f.svc.Delete(context.Background(), f.userID, income.TransactionID, f.walletB)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, f.store.transactions, income.TransactionID)
}

func TestLedgerService_DeleteUnknown(t *testing.T) {
	f := newLedgerFixture(t, nil)

	err := f.svc.Delete(context.Background(), f.userID, uuid.New(), f.walletA)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, f.store.walletWrites)
}

func TestLedgerService_DeleteOtherUsersTransaction(t *testing.T) {
	f := newLedgerFixture(t, nil)
	income := f.create(t, f.walletA, models.TransactionTypeIncome, 40)

	err := f.svc.Delete(context.Background(), uuid.New(), income.TransactionID, f.walletA)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 40.0, f.wallet(f.walletA).Amount)
}

func TestLedgerService_CreateThenDeleteRestoresWallet(t *testing.T) {
	f := newLedgerFixture(t, nil)
	f.create(t, f.walletA, models.TransactionTypeIncome, 100)
	before := f.wallet(f.walletA)

	for _, typ := range []models.TransactionType{models.TransactionTypeIncome, models.TransactionTypeExpense} {
		txn := f.create(t, f.walletA, typ, 12.5)
		require.NoError(t, f.svc.Delete(context.Background(), f.userID, txn.TransactionID, f.walletA))
		assert.Equal(t, before, f.wallet(f.walletA), string(typ))
	}
}

func TestLedgerService_PublishesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLedgerFixture(t, nil)
	writer := NewMockKafkaWriter(ctrl)
	f.svc.kafkaWriter = writer

	var events []models.LedgerEvent
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			for _, msg := range msgs {
				var ev models.LedgerEvent
				require.NoError(t, json.Unmarshal(msg.Value, &ev))
				assert.Equal(t, ev.TransactionID, string(msg.Key))
				events = append(events, ev)
			}
			return nil
		}).Times(2)

	txn := f.create(t, f.walletA, models.TransactionTypeIncome, 10)
	require.NoError(t, f.svc.Delete(context.Background(), f.userID, txn.TransactionID, f.walletA))

	require.Len(t, events, 2)
	assert.Equal(t, models.LedgerOperationCreated, events[0].Operation)
	assert.Equal(t, models.LedgerOperationDeleted, events[1].Operation)
	assert.Equal(t, txn.TransactionID.String(), events[1].TransactionID)
	assert.Equal(t, 10.0, events[0].Amount)
}

func TestLedgerService_PublishFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLedgerFixture(t, nil)
	writer := NewMockKafkaWriter(ctrl)
	f.svc.kafkaWriter = writer
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	f.create(t, f.walletA, models.TransactionTypeIncome, 10)

	assert.Equal(t, 10.0, f.wallet(f.walletA).Amount)
}

func TestLedgerService_NoPublishOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLedgerFixture(t, nil)
	writer := NewMockKafkaWriter(ctrl)
	f.svc.kafkaWriter = writer

	_, err := f.svc.CreateOrUpdate(context.Background(), f.userID, models.TransactionDraft{
		WalletID: f.walletA,
		Type:     models.TransactionTypeExpense,
		Amount:   1,
	})

	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestLedgerService_WalletLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletStore(ctrl)
	transactions := NewMockTransactionStore(ctrl)
	tx := NewMockTransactor(ctrl)
	resolver := NewMockReceiptResolver(ctrl)

	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) })
	wallets.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	svc := NewLedgerService(wallets, transactions, tx, resolver, nil)
	_, err := svc.CreateOrUpdate(context.Background(), uuid.New(), models.TransactionDraft{
		WalletID: uuid.New(),
		Type:     models.TransactionTypeIncome,
		Amount:   1,
	})

	assert.ErrorIs(t, err, ErrStoreFailed)
}
