package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"tokenvest-backend/internal/usecase/request"
)

func TestWriteCSV(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	rows := []request.DTO{
		{
			RequestNumber: "LIQ-2026-0001",
			InvestorName:  "Jordan Alvarez",
			InvestorEmail: "jordan@example.com",
			PropertyName:  "Riverside Lofts",
			Tokens:        25,
			GrossValue:    2500,
			FeePercent:    7,
			FeeAmount:     175,
			NetPayout:     2325,
			Status:        "pending",
			RequestedAt:   at,
		},
		{
			RequestNumber: "LIQ-2026-0002",
			InvestorName:  "Sam Lee",
			InvestorEmail: "sam@example.com",
			PropertyName:  "Dockside Yard",
			Tokens:        3,
			GrossValue:    99.99,
			FeePercent:    7,
			FeeAmount:     7,
			NetPayout:     92.99,
			Status:        "completed",
			RequestedAt:   at.Add(time.Hour),
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	recs, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("record count = %d, want header + 2 rows", len(recs))
	}
	if got := strings.Join(recs[0], ","); got != strings.Join(columns, ",") {
		t.Fatalf("header = %q", got)
	}

	first := recs[1]
	if first[0] != "LIQ-2026-0001" || first[4] != "25" || first[5] != "2500.00" {
		t.Fatalf("first row: %v", first)
	}
	if first[6] != "7.00" || first[7] != "175.00" || first[8] != "2325.00" {
		t.Fatalf("money columns not cent-formatted: %v", first)
	}
	if first[10] != "2026-03-14T09:30:00Z" {
		t.Fatalf("requested_at = %q", first[10])
	}

	second := recs[2]
	if second[5] != "99.99" || second[8] != "92.99" || second[9] != "completed" {
		t.Fatalf("second row: %v", second)
	}
}

func TestWriteCSV_EmptyListing(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	recs, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("empty listing should still emit the header, got %d records", len(recs))
	}
}
