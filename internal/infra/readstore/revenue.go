package readstore

import (
	"context"

	"hotel-management-system/internal/infra"
	"hotel-management-system/internal/infra/db"
	"hotel-management-system/internal/usecase/queries"
)

type RevenueReadStore struct {
	db db.DBTX
}

func NewRevenueReadStore(dbtx db.DBTX) *RevenueReadStore {
	return &RevenueReadStore{db: dbtx}
}

// Summary totals receipts for every non-cancelled booking. Cancellation
// deletes the receipt, so the join naturally excludes refunded stays;
// the status filter guards against rows left behind mid-cancel.
func (s *RevenueReadStore) Summary(ctx context.Context) (*queries.RevenueSummary, error) {
	summary := &queries.RevenueSummary{Monthly: []queries.MonthlyRevenue{}}

	row := s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(rc.total_cents), 0),
		       COUNT(*) FILTER (WHERE b.status = 'confirmed')
		FROM bookings b
		LEFT JOIN receipts rc ON rc.booking_id = b.id
		WHERE b.status <> 'cancelled'`)
	if err := row.Scan(&summary.TotalCents, &summary.ConfirmedCount); err != nil {
		return nil, infra.WrapRepoErr("failed to load revenue totals", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT EXTRACT(YEAR FROM b.check_in)::int,
		       EXTRACT(MONTH FROM b.check_in)::int,
		       COALESCE(SUM(rc.total_cents), 0)
		FROM bookings b
		JOIN receipts rc ON rc.booking_id = b.id
		WHERE b.status <> 'cancelled'
		GROUP BY 1, 2
		ORDER BY 1, 2`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load monthly revenue", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m queries.MonthlyRevenue
		if err := rows.Scan(&m.Year, &m.Month, &m.Cents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan monthly revenue", err)
		}
		summary.Monthly = append(summary.Monthly, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read monthly revenue", err)
	}
	return summary, nil
}
