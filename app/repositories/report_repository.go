package repositories

import (
	"database/sql"
	"time"

	"github.com/NMalikk/StayOpsApp/app/entities"
)

type ReportRepository interface {
	RevenueByType() ([]entities.RevenueReportItem, error)
	GetOverlapping(start, end time.Time) ([]entities.Reservation, error)
	GuestSpendTotals() ([]entities.GuestSpend, error)
	Dashboard() ([]entities.DashboardItem, error)
}

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Reports only see live bookings. Cancelled rows never count, and closed
// stays were already excluded before status tracking replaced hard deletes.
const reportStatusFilter = `r.status IN ('active', 'checked_in')`

func (r *reportRepository) RevenueByType() ([]entities.RevenueReportItem, error) {
	query := `
		SELECT rt.type_name,
			COUNT(r.id),
			COALESCE(SUM(r.total_amount), 0),
			COALESCE(AVG(r.total_amount), 0)
		FROM room_types rt
		JOIN rooms rm ON rm.room_type_id = rt.id
		JOIN reservations r ON r.room_id = rm.id AND ` + reportStatusFilter + `
		GROUP BY rt.type_name
		ORDER BY SUM(r.total_amount) DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []entities.RevenueReportItem{}
	for rows.Next() {
		var item entities.RevenueReportItem
		if err := rows.Scan(&item.TypeName, &item.TotalBookings, &item.TotalRevenue, &item.AvgRevenuePerBooking); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetOverlapping returns live reservations touching the inclusive day range
// [start, end]; the per-day occupancy counts are computed by the usecase.
func (r *reportRepository) GetOverlapping(start, end time.Time) ([]entities.Reservation, error) {
	query := `
		SELECT r.id, r.guest_id, r.room_id, r.staff_id, r.check_in_date, r.check_out_date, r.total_amount, r.status, r.created_at
		FROM reservations r
		WHERE r.check_in_date <= $2 AND r.check_out_date >= $1
		AND ` + reportStatusFilter

	rows, err := r.db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []entities.Reservation{}
	for rows.Next() {
		var res entities.Reservation
		err := rows.Scan(&res.ID, &res.GuestID, &res.RoomID, &res.StaffID,
			&res.CheckIn, &res.CheckOut, &res.TotalAmount, &res.Status, &res.CreatedAt)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *reportRepository) GuestSpendTotals() ([]entities.GuestSpend, error) {
	query := `
		SELECT r.guest_id, SUM(r.total_amount)
		FROM reservations r
		WHERE ` + reportStatusFilter + `
		GROUP BY r.guest_id
		ORDER BY SUM(r.total_amount) DESC, r.guest_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []entities.GuestSpend{}
	for rows.Next() {
		var gs entities.GuestSpend
		if err := rows.Scan(&gs.GuestID, &gs.TotalSpent); err != nil {
			return nil, err
		}
		totals = append(totals, gs)
	}
	return totals, rows.Err()
}

func (r *reportRepository) Dashboard() ([]entities.DashboardItem, error) {
	query := `
		SELECT rm.room_number, rt.type_name, rm.status, res.check_out_date
		FROM rooms rm
		JOIN room_types rt ON rm.room_type_id = rt.id
		LEFT JOIN reservations res ON res.room_id = rm.id AND res.status = 'checked_in'
		ORDER BY rm.room_number`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []entities.DashboardItem{}
	for rows.Next() {
		var item entities.DashboardItem
		var dueOut sql.NullTime
		if err := rows.Scan(&item.RoomNumber, &item.TypeName, &item.Occupancy, &dueOut); err != nil {
			return nil, err
		}
		if dueOut.Valid {
			item.DueOut = &dueOut.Time
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
