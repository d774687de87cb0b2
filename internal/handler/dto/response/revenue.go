package response

import (
	"hotel-management-system/internal/usecase/queries"
)

type MonthlyRevenueResponse struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Cents int64 `json:"cents"`
}

type RevenueSummaryResponse struct {
	TotalCents     int64                    `json:"totalCents"`
	ConfirmedCount int64                    `json:"confirmedCount"`
	Monthly        []MonthlyRevenueResponse `json:"monthly"`
}

func FromRevenueSummary(rm *queries.RevenueSummary) *RevenueSummaryResponse {
	resp := &RevenueSummaryResponse{
		TotalCents:     rm.TotalCents,
		ConfirmedCount: rm.ConfirmedCount,
		Monthly:        make([]MonthlyRevenueResponse, 0, len(rm.Monthly)),
	}
	for _, m := range rm.Monthly {
		resp.Monthly = append(resp.Monthly, MonthlyRevenueResponse{
			Year:  m.Year,
			Month: m.Month,
			Cents: m.Cents,
		})
	}
	return resp
}
