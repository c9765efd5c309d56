package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// Statuses that count as revenue: the gateway settled, whatever happened to
// fulfillment afterwards.
var paidStatuses = []entity.TransactionStatus{
	entity.StatusPaid,
	entity.StatusAccepted,
	entity.StatusCompleted,
	entity.StatusCompletedByAdmin,
}

func (r *ReportRepository) TotalSales() (int64, error) {
	var row struct{ Total int64 }
	err := r.DB.Model(&entity.Transaction{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("status IN ?", paidStatuses).
		Scan(&row).Error
	return row.Total, err
}

func (r *ReportRepository) CountUsers() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Count(&n).Error
	return n, err
}

func (r *ReportRepository) CountTransactions() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Transaction{}).Count(&n).Error
	return n, err
}

type DailySales struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Total int64  `json:"total"`
}

// DailySalesSince groups settled sales by calendar day. Days without orders
// are absent here; the service zero-fills the window.
func (r *ReportRepository) DailySalesSince(since time.Time) ([]DailySales, error) {
	var out []DailySales
	err := r.DB.Model(&entity.Transaction{}).
		Select("DATE(created_at) AS day, COALESCE(SUM(total), 0) AS total").
		Where("status IN ? AND created_at >= ?", paidStatuses, since).
		Group("DATE(created_at)").
		Order("day").
		Scan(&out).Error
	return out, err
}

type TopItem struct {
	MenuID   uint   `json:"menuId"`
	MenuName string `json:"menuName"`
	Sold     int64  `json:"sold"`
}

func (r *ReportRepository) TopItems(limit int) ([]TopItem, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []TopItem
	err := r.DB.Table("transaction_details AS td").
		Select("td.menu_id, m.name AS menu_name, SUM(td.qty) AS sold").
		Joins("JOIN menus m ON m.id = td.menu_id").
		Joins("JOIN transactions t ON t.id = td.transaction_id").
		Where("t.status IN ? AND td.deleted_at IS NULL", paidStatuses).
		Group("td.menu_id, m.name").
		Order("sold DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
