package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"tokenvest-backend/internal/usecase/request"
)

var columns = []string{
	"request_number", "investor_name", "investor_email", "property_name",
	"tokens", "gross_value", "fee_percent", "fee_amount", "net_payout",
	"status", "requested_at",
}

// WriteCSV renders a filtered listing as CSV. It is a stateless projection of
// the listing output; nothing here reads the store.
func WriteCSV(w io.Writer, rows []request.DTO) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range rows {
		r := &rows[i]
		rec := []string{
			r.RequestNumber,
			r.InvestorName,
			r.InvestorEmail,
			r.PropertyName,
			fmt.Sprintf("%d", r.Tokens),
			fmt.Sprintf("%.2f", r.GrossValue),
			fmt.Sprintf("%.2f", r.FeePercent),
			fmt.Sprintf("%.2f", r.FeeAmount),
			fmt.Sprintf("%.2f", r.NetPayout),
			r.Status,
			r.RequestedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %s: %w", r.RequestNumber, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
