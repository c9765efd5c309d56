package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
)

func createTrx(t *testing.T, db *gorm.DB, userID uint, status entity.TransactionStatus) *entity.Transaction {
	t.Helper()
	trx := &entity.Transaction{
		UserID:  userID,
		Address: "Jl. Mawar 1",
		Total:   55000,
		Status:  status,
	}
	require.NoError(t, db.Create(trx).Error)
	return trx
}

func trxStatus(t *testing.T, db *gorm.DB, id uint) (entity.TransactionStatus, entity.DeliveryStatus) {
	t.Helper()
	var trx entity.Transaction
	require.NoError(t, db.First(&trx, id).Error)
	return trx.Status, trx.DeliveryStatus
}

func TestWebhookSettlement(t *testing.T) {
	db := newTestDB(t)
	svc := newTrxService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	trx := createTrx(t, db, user.ID, entity.StatusPending)

	got, err := svc.HandleWebhook(&WebhookIn{
		OrderID:           OrderID(trx.ID),
		TransactionStatus: "settlement",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, got.Status)
	assert.Equal(t, entity.DeliveryOnProcess, got.DeliveryStatus)
}

func TestWebhookSettlementAfterProofUpload(t *testing.T) {
	db := newTestDB(t)
	svc := newTrxService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	trx := createTrx(t, db, user.ID, entity.StatusPending)

	require.NoError(t, svc.UploadPaymentProof(user.ID, trx.ID, "proof.jpg"))

	// the customer paid through the gateway anyway; a legal move per the
	// transition table
	require.True(t, entity.CanTransition(entity.StatusOnProcess, entity.StatusPaid))

	got, err := svc.HandleWebhook(&WebhookIn{
		OrderID:           OrderID(trx.ID),
		TransactionStatus: "settlement",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, got.Status)
	assert.Equal(t, entity.DeliveryOnProcess, got.DeliveryStatus)
}

func TestWebhookReplayIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := newTrxService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	trx := createTrx(t, db, user.ID, entity.StatusPending)

	in := &WebhookIn{OrderID: OrderID(trx.ID), TransactionStatus: "settlement"}
	_, err := svc.HandleWebhook(in)
	require.NoError(t, err)

	// the order advances past paid, then the gateway replays the callback
	require.NoError(t, svc.AdminAccept(trx.ID))

	got, err := svc.HandleWebhook(in)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, got.Status)
}

func TestWebhookCancel(t *testing.T) {
	db := newTestDB(t)
	svc := newTrxService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)

	for _, gw := range []string{"cancel", "deny", "expire"} {
		trx := createTrx(t, db, user.ID, entity.StatusPending)
		got, err := svc.HandleWebhook(&WebhookIn{OrderID: OrderID(trx.ID), TransactionStatus: gw})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, got.Status, gw)
	}
}

func TestWebhookBadPayload(t *testing.T) {
	db := newTestDB(t)
	svc := newTrxService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	trx := createTrx(t, db, user.ID, entity.StatusPending)

	_, err := svc.HandleWebhook(&WebhookIn{OrderID: "INVOICE-12", TransactionStatus: "settlement"})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = svc.HandleWebhook(&WebhookIn{OrderID: "ORDER-99999", TransactionStatus: "settlement"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.HandleWebhook(&WebhookIn{OrderID: OrderID(trx.ID), TransactionStatus: "refund"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// "pending" moves nothing
	got, err := svc.HandleWebhook(&WebhookIn{OrderID: OrderID(trx.ID), TransactionStatus: "pending"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got.Status)
}

func TestUploadPaymentProof(t *testing.T) {
	db := newTestDB(t)
	svc := newTrxService(db)
	owner := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	other := createUser(t, db, "siti@example.com", entity.RoleCustomer)
	trx := createTrx(t, db, owner.ID, entity.StatusPending)

	assert.ErrorIs(t, svc.UploadPaymentProof(other.ID, trx.ID, "proof.jpg"), ErrForbidden)

	require.NoError(t, svc.UploadPaymentProof(owner.ID, trx.ID, "proof.jpg"))

	var got entity.Transaction
	require.NoError(t, db.First(&got, trx.ID).Error)
	assert.Equal(t, entity.StatusOnProcess, got.Status)
	assert.Equal(t, "proof.jpg", got.PaymentProof)

	// re-upload after the move fails the guard
	assert.ErrorIs(t, svc.UploadPaymentProof(owner.ID, trx.ID, "proof2.jpg"), ErrInvalidTransition)
}

func TestAdminAcceptGuards(t *testing.T) {
	db := newTestDB(t)
	svc := newTrxService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)

	pending := createTrx(t, db, user.ID, entity.StatusPending)
	assert.ErrorIs(t, svc.AdminAccept(pending.ID), ErrInvalidTransition)

	paid := createTrx(t, db, user.ID, entity.StatusPaid)
	require.NoError(t, svc.AdminAccept(paid.ID))
	status, _ := trxStatus(t, db, paid.ID)
	assert.Equal(t, entity.StatusAccepted, status)

	onProcess := createTrx(t, db, user.ID, entity.StatusOnProcess)
	require.NoError(t, svc.AdminReject(onProcess.ID))
	status, _ = trxStatus(t, db, onProcess.ID)
	assert.Equal(t, entity.StatusRejected, status)
}

func TestConfirmAndDispute(t *testing.T) {
	db := newTestDB(t)
	svc := newTrxService(db)
	owner := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	other := createUser(t, db, "siti@example.com", entity.RoleCustomer)

	accepted := createTrx(t, db, owner.ID, entity.StatusAccepted)
	assert.ErrorIs(t, svc.Confirm(other.ID, accepted.ID), ErrForbidden)

	require.NoError(t, svc.Confirm(owner.ID, accepted.ID))
	status, delivery := trxStatus(t, db, accepted.ID)
	assert.Equal(t, entity.StatusCompleted, status)
	assert.Equal(t, entity.DeliveryDelivered, delivery)

	// a completed order cannot be confirmed again or disputed
	assert.ErrorIs(t, svc.Confirm(owner.ID, accepted.ID), ErrInvalidTransition)
	assert.ErrorIs(t, svc.Dispute(owner.ID, accepted.ID), ErrInvalidTransition)

	disputed := createTrx(t, db, owner.ID, entity.StatusAccepted)
	require.NoError(t, svc.Dispute(owner.ID, disputed.ID))
	status, _ = trxStatus(t, db, disputed.ID)
	assert.Equal(t, entity.StatusRejectedByUser, status)
}

func TestAdminSetStatusBoundedByTable(t *testing.T) {
	db := newTestDB(t)
	svc := newTrxService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	trx := createTrx(t, db, user.ID, entity.StatusPending)

	assert.ErrorIs(t, svc.AdminSetStatus(trx.ID, "shipped"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.AdminSetStatus(trx.ID, entity.StatusCompleted), ErrInvalidTransition)

	require.NoError(t, svc.AdminSetStatus(trx.ID, entity.StatusCancelled))
	status, _ := trxStatus(t, db, trx.ID)
	assert.Equal(t, entity.StatusCancelled, status)

	// cancelled is terminal
	assert.ErrorIs(t, svc.AdminSetStatus(trx.ID, entity.StatusPending), ErrInvalidTransition)
}

func TestAutoCompleteSweep(t *testing.T) {
	db := newTestDB(t)
	svc := newTrxService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)

	old := createTrx(t, db, user.ID, entity.StatusAccepted)
	fresh := createTrx(t, db, user.ID, entity.StatusAccepted)
	oldPending := createTrx(t, db, user.ID, entity.StatusPending)

	// settled by the gateway but never reviewed by the admin
	oldPaid := createTrx(t, db, user.ID, entity.StatusPaid)
	require.NoError(t, db.Model(oldPaid).
		UpdateColumn("delivery_status", entity.DeliveryOnProcess).Error)

	threeDaysAgo := time.Now().Add(-72 * time.Hour)
	require.NoError(t, db.Model(&entity.Transaction{}).
		Where("id IN ?", []uint{old.ID, oldPending.ID, oldPaid.ID}).
		UpdateColumn("created_at", threeDaysAgo).Error)

	n, err := svc.AutoComplete()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	status, delivery := trxStatus(t, db, old.ID)
	assert.Equal(t, entity.StatusCompletedByAdmin, status)
	assert.Equal(t, entity.DeliveryDelivered, delivery)

	status, delivery = trxStatus(t, db, oldPaid.ID)
	assert.Equal(t, entity.StatusCompletedByAdmin, status)
	assert.Equal(t, entity.DeliveryDelivered, delivery)

	status, _ = trxStatus(t, db, fresh.ID)
	assert.Equal(t, entity.StatusAccepted, status)
	status, _ = trxStatus(t, db, oldPending.ID)
	assert.Equal(t, entity.StatusPending, status)

	// second run finds nothing left to sweep
	n, err = svc.AutoComplete()
	require.NoError(t, err)
	assert.Zero(t, n)
}
