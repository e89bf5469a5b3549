package request

import (
	"time"

	"tokenvest-backend/internal/domain/liquidity"
)

type CreateInput struct {
	InvestorID    string  `json:"investor_id"`
	InvestorName  string  `json:"investor_name"`
	InvestorEmail string  `json:"investor_email"`
	PropertyID    string  `json:"property_id"`
	PropertyName  string  `json:"property_name"`
	Tokens        int64   `json:"tokens"`
	PricePerToken float64 `json:"price_per_token"`
	HoldingMonths int     `json:"holding_months"`
}

type DTO struct {
	RequestID           string     `json:"request_id"`
	RequestNumber       string     `json:"request_number"`
	InvestorID          string     `json:"investor_id"`
	InvestorName        string     `json:"investor_name"`
	InvestorEmail       string     `json:"investor_email"`
	PropertyID          string     `json:"property_id"`
	PropertyName        string     `json:"property_name"`
	Tokens              int64      `json:"tokens"`
	PricePerToken       float64    `json:"price_per_token"`
	GrossValue          float64    `json:"gross_value"`
	HoldingMonths       int        `json:"holding_months"`
	FeePercent          float64    `json:"fee_percent"`
	FeeAmount           float64    `json:"fee_amount"`
	NetPayout           float64    `json:"net_payout"`
	Status              string     `json:"status"`
	DenialReason        string     `json:"denial_reason,omitempty"`
	PayoutReference     string     `json:"payout_reference,omitempty"`
	RequestedAt         time.Time  `json:"requested_at"`
	ProcessingStartedAt *time.Time `json:"processing_started_at,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
}

func ToDTO(r *liquidity.Request) *DTO {
	return &DTO{
		RequestID:           r.RequestID,
		RequestNumber:       r.RequestNumber,
		InvestorID:          r.InvestorID,
		InvestorName:        r.InvestorName,
		InvestorEmail:       r.InvestorEmail,
		PropertyID:          r.PropertyID,
		PropertyName:        r.PropertyName,
		Tokens:              r.Tokens,
		PricePerToken:       r.PricePerToken,
		GrossValue:          r.GrossValue,
		HoldingMonths:       r.HoldingMonths,
		FeePercent:          r.FeePercent,
		FeeAmount:           r.FeeAmount,
		NetPayout:           r.NetPayout,
		Status:              string(r.Status),
		DenialReason:        r.DenialReason,
		PayoutReference:     r.PayoutReference,
		RequestedAt:         r.RequestedAt,
		ProcessingStartedAt: r.ProcessingStartedAt,
		CompletedAt:         r.CompletedAt,
	}
}
