package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) Create(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Create(t).Error
}

func (r *TransactionRepository) CreateDetail(tx *gorm.DB, d *entity.TransactionDetail) error {
	return tx.Create(d).Error
}

func (r *TransactionRepository) FindByID(id uint) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := r.DB.Preload("Details").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) FindForUser(userID, id uint) (*entity.Transaction, error) {
	var t entity.Transaction
	err := r.DB.Preload("Details").
		Where("id = ? AND user_id = ?", id, userID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) ListForUser(userID uint) ([]entity.Transaction, error) {
	var out []entity.Transaction
	err := r.DB.Preload("Details").
		Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *TransactionRepository) ListAll(status entity.TransactionStatus, page, limit int) ([]entity.Transaction, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	q := r.DB.Model(&entity.Transaction{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Transaction
	err := q.Preload("Details").Preload("User").
		Order("id DESC").Limit(limit).Offset((page - 1) * limit).
		Find(&out).Error
	return out, total, err
}

// UpdateStatusGuard moves status only when the row is still in one of the
// expected source statuses. Zero affected rows means the transition lost a
// race or was replayed; callers decide what that means.
func (r *TransactionRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from []entity.TransactionStatus, updates map[string]any) (int64, error) {
	res := tx.Model(&entity.Transaction{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// SweepStuck auto-completes rows stuck in an intermediate state for at
// least the given age: accepted on the payment axis, or settled orders
// whose delivery never moved past on-process. The WHERE filter re-selects
// eligible rows each run, so re-running is a no-op.
func (r *TransactionRepository) SweepStuck(cutoff time.Time) (int64, error) {
	res := r.DB.Model(&entity.Transaction{}).
		Where("(status = ? OR delivery_status = ?) AND created_at <= ?",
			entity.StatusAccepted, entity.DeliveryOnProcess, cutoff).
		Updates(map[string]any{
			"status":          entity.StatusCompletedByAdmin,
			"delivery_status": entity.DeliveryDelivered,
		})
	return res.RowsAffected, res.Error
}

func (r *TransactionRepository) SetPaymentProof(tx *gorm.DB, id uint, filename string) error {
	return tx.Model(&entity.Transaction{}).Where("id = ?", id).
		Update("payment_proof", filename).Error
}
