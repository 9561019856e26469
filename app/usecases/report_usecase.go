package usecases

import (
	"fmt"
	"time"

	"github.com/NMalikk/StayOpsApp/app/entities"
	"github.com/NMalikk/StayOpsApp/app/repositories"
)

type ReportUsecase interface {
	Revenue() ([]entities.RevenueReportItem, error)
	Occupancy(start, end time.Time) ([]entities.OccupancyReportItem, error)
	TopGuests() ([]entities.TopGuestItem, error)
	GuestTotalSpend(guestID int) (float64, error)
	Dashboard() ([]entities.DashboardItem, error)
}

type reportUsecase struct {
	reportRepo repositories.ReportRepository
	guestRepo  repositories.GuestRepository
	cache      repositories.ReportCache
}

func NewReportUsecase(reportRepo repositories.ReportRepository, guestRepo repositories.GuestRepository, cache repositories.ReportCache) ReportUsecase {
	return &reportUsecase{reportRepo: reportRepo, guestRepo: guestRepo, cache: cache}
}

func (u *reportUsecase) Revenue() ([]entities.RevenueReportItem, error) {
	var items []entities.RevenueReportItem
	if u.cache.Get("revenue", &items) {
		return items, nil
	}

	items, err := u.reportRepo.RevenueByType()
	if err != nil {
		return nil, fmt.Errorf("revenue report: %w", err)
	}
	u.cache.Set("revenue", items)
	return items, nil
}

// Occupancy emits one row per calendar day over the inclusive range
// [start, end]. A reservation occupies day d when d >= checkIn and
// d < checkOut, so a guest leaving on d does not count that day.
func (u *reportUsecase) Occupancy(start, end time.Time) ([]entities.OccupancyReportItem, error) {
	start = dateOnly(start)
	end = dateOnly(end)
	if end.Before(start) {
		return nil, entities.ErrInvalidDateRange
	}

	reservations, err := u.reportRepo.GetOverlapping(start, end)
	if err != nil {
		return nil, fmt.Errorf("occupancy report: %w", err)
	}

	days := int(end.Sub(start).Hours()/24) + 1
	report := make([]entities.OccupancyReportItem, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		count := 0
		for _, r := range reservations {
			if !d.Before(r.CheckIn) && d.Before(r.CheckOut) {
				count++
			}
		}
		report = append(report, entities.OccupancyReportItem{ReportDate: d, OccupiedCount: count})
	}
	return report, nil
}

// TopGuests ranks guests by their summed reservation totals using RANK
// semantics: ties share a rank and consume slots, so totals 100, 100, 80
// rank 1, 1, 3. Only ranks up to 10 are returned.
func (u *reportUsecase) TopGuests() ([]entities.TopGuestItem, error) {
	var items []entities.TopGuestItem
	if u.cache.Get("top_guests", &items) {
		return items, nil
	}

	totals, err := u.reportRepo.GuestSpendTotals()
	if err != nil {
		return nil, fmt.Errorf("top guests: %w", err)
	}

	items = []entities.TopGuestItem{}
	rank := 0
	for i, gs := range totals {
		if i == 0 || gs.TotalSpent != totals[i-1].TotalSpent {
			rank = i + 1
		}
		if rank > 10 {
			break
		}
		items = append(items, entities.TopGuestItem{GuestID: gs.GuestID, TotalSpent: gs.TotalSpent, Rank: rank})
	}
	u.cache.Set("top_guests", items)
	return items, nil
}

// GuestTotalSpend reads the guest's running total, which create and cancel
// maintain inside their transactions.
func (u *reportUsecase) GuestTotalSpend(guestID int) (float64, error) {
	exists, err := u.guestRepo.Exists(guestID)
	if err != nil {
		return 0, fmt.Errorf("check guest: %w", err)
	}
	if !exists {
		return 0, entities.ErrGuestNotFound
	}

	total, err := u.guestRepo.GetTotalSpent(guestID)
	if err != nil {
		return 0, fmt.Errorf("guest total spend: %w", err)
	}
	return total, nil
}

func (u *reportUsecase) Dashboard() ([]entities.DashboardItem, error) {
	items, err := u.reportRepo.Dashboard()
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return items, nil
}
