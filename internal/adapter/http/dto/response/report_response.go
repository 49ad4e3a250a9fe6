package response

import "autokorea/internal/domain/entities"

// ReportSummaryResponse is the single payload behind the reports screen and
// its PDF/spreadsheet export: inventory counts per lifecycle stage plus the
// financial summary and the monthly chart, all in one read.
type ReportSummaryResponse struct {
	TotalVehicles int                   `json:"total_vehicles"`
	ByStatus      map[string]int        `json:"by_status"`
	Totals        TotalsResponse        `json:"totals"`
	MonthlySeries MonthlySeriesResponse `json:"monthly_series"`
}

func CountByStatus(vehicles []entities.Vehicle) map[string]int {
	counts := make(map[string]int)
	for _, v := range vehicles {
		counts[string(v.Status)]++
	}
	return counts
}
