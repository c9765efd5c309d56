package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
	"github.com/dontkeep/order-menu-backend/repository"
)

func newReportService(db *gorm.DB) *ReportService {
	return NewReportService(repository.NewReportRepository(db))
}

func TestSummaryCountsSettledSalesOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)

	for status, total := range map[entity.TransactionStatus]int64{
		entity.StatusPaid:      30000,
		entity.StatusCompleted: 45000,
		entity.StatusCancelled: 99000, // never settled, not revenue
		entity.StatusPending:   12000,
	} {
		trx := &entity.Transaction{UserID: user.ID, Address: "Jl. Mawar 1", Total: total, Status: status}
		require.NoError(t, db.Create(trx).Error)
	}

	out, err := svc.Summary()
	require.NoError(t, err)
	assert.EqualValues(t, 75000, out.TotalSales)
	assert.EqualValues(t, 1, out.TotalUsers)
	assert.EqualValues(t, 4, out.TotalTransactions)
}

func TestDailySalesZeroFillsWindow(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)

	trx := &entity.Transaction{UserID: user.ID, Address: "Jl. Mawar 1", Total: 55000, Status: entity.StatusPaid}
	require.NoError(t, db.Create(trx).Error)

	now := time.Now()
	rows, err := svc.DailySales(now)
	require.NoError(t, err)
	require.Len(t, rows, 30)

	var nonZero int
	var sum int64
	for _, r := range rows {
		if r.Total != 0 {
			nonZero++
		}
		sum += r.Total
	}
	assert.Equal(t, 1, nonZero)
	assert.EqualValues(t, 55000, sum)
	// the window opens at local midnight 29 days back
	assert.Equal(t, now.AddDate(0, 0, -29).Format("2006-01-02"), rows[0].Day)
	assert.Equal(t, now.Format("2006-01-02"), rows[29].Day)
}

func TestTopItems(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	nasi := createMenu(t, db, "Nasi Goreng", 25000, 100)
	sate := createMenu(t, db, "Sate Ayam", 20000, 100)

	paid := &entity.Transaction{UserID: user.ID, Address: "Jl. Mawar 1", Total: 110000, Status: entity.StatusPaid}
	require.NoError(t, db.Create(paid).Error)
	require.NoError(t, db.Create(&entity.TransactionDetail{TransactionID: paid.ID, MenuID: nasi.ID, Qty: 2, Price: 25000}).Error)
	require.NoError(t, db.Create(&entity.TransactionDetail{TransactionID: paid.ID, MenuID: sate.ID, Qty: 3, Price: 20000}).Error)

	// cancelled orders never count
	cancelled := &entity.Transaction{UserID: user.ID, Address: "Jl. Mawar 1", Total: 250000, Status: entity.StatusCancelled}
	require.NoError(t, db.Create(cancelled).Error)
	require.NoError(t, db.Create(&entity.TransactionDetail{TransactionID: cancelled.ID, MenuID: nasi.ID, Qty: 10, Price: 25000}).Error)

	items, err := svc.TopItems(10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Sate Ayam", items[0].MenuName)
	assert.EqualValues(t, 3, items[0].Sold)
	assert.Equal(t, "Nasi Goreng", items[1].MenuName)
	assert.EqualValues(t, 2, items[1].Sold)
}

func TestExportDailySalesXLSX(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)

	trx := &entity.Transaction{UserID: user.ID, Address: "Jl. Mawar 1", Total: 55000, Status: entity.StatusPaid}
	require.NoError(t, db.Create(trx).Error)

	f, err := svc.ExportDailySalesXLSX(time.Now())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	// header + 30 days + grand total
	require.Len(t, rows, 32)
	assert.Equal(t, []string{"Date", "Total (IDR)"}, rows[0])
	assert.Equal(t, "Total", rows[31][0])
	assert.Equal(t, "55000", rows[31][1])
}
