package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dontkeep/order-menu-backend/repository"
)

const dailyWindowDays = 30

// ReportService recomputes every aggregate from raw rows on each call; no
// materialization.
type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

type Summary struct {
	TotalSales        int64 `json:"totalSales"`
	TotalUsers        int64 `json:"totalUsers"`
	TotalTransactions int64 `json:"totalTransactions"`
}

func (s *ReportService) Summary() (*Summary, error) {
	sales, err := s.Repo.TotalSales()
	if err != nil {
		return nil, err
	}
	users, err := s.Repo.CountUsers()
	if err != nil {
		return nil, err
	}
	trx, err := s.Repo.CountTransactions()
	if err != nil {
		return nil, err
	}
	return &Summary{TotalSales: sales, TotalUsers: users, TotalTransactions: trx}, nil
}

// DailySales returns the trailing 30-day series with zero rows for days
// that saw no orders. The window starts at local midnight so the day
// buckets line up with DATE(created_at).
func (s *ReportService) DailySales(now time.Time) ([]repository.DailySales, error) {
	y, m, d := now.AddDate(0, 0, -(dailyWindowDays - 1)).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	rows, err := s.Repo.DailySalesSince(start)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int64, len(rows))
	for _, r := range rows {
		byDay[r.Day] = r.Total
	}

	out := make([]repository.DailySales, 0, dailyWindowDays)
	for i := 0; i < dailyWindowDays; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		out = append(out, repository.DailySales{Day: day, Total: byDay[day]})
	}
	return out, nil
}

func (s *ReportService) TopItems(limit int) ([]repository.TopItem, error) {
	return s.Repo.TopItems(limit)
}

// ExportDailySalesXLSX renders the daily series as a spreadsheet for the
// admin panel download.
func (s *ReportService) ExportDailySalesXLSX(now time.Time) (*excelize.File, error) {
	rows, err := s.DailySales(now)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Sales"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheet, "A1", &[]any{"Date", "Total (IDR)"}); err != nil {
		return nil, err
	}
	var grand int64
	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]any{r.Day, r.Total}); err != nil {
			return nil, err
		}
		grand += r.Total
	}
	totalCell := fmt.Sprintf("A%d", len(rows)+2)
	if err := f.SetSheetRow(sheet, totalCell, &[]any{"Total", grand}); err != nil {
		return nil, err
	}
	return f, nil
}
