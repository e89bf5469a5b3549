package liquidity

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusDenied     Status = "denied"
	StatusCancelled  Status = "cancelled"
)

// Terminal reports whether no further transition is legal from s.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusDenied, StatusCancelled:
		return true
	}
	return false
}

// Request is an investor's ask to redeem tokenized shares for cash ahead of
// maturity. Fee fields are snapshotted at creation and never recomputed, so
// later schedule changes cannot retroactively alter a pending request.
type Request struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	RequestID string `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_requests_request_id" json:"request_id"`
	// Human-readable sequential code, e.g. LIQ-2026-0042. Assigned once.
	RequestNumber string `gorm:"column:request_number;size:16;not null;uniqueIndex:ux_requests_request_number" json:"request_number"`

	InvestorID    string `gorm:"column:investor_id;type:char(32);not null;index:idx_requests_investor" json:"investor_id"`
	InvestorName  string `gorm:"column:investor_name;size:128" json:"investor_name"`
	InvestorEmail string `gorm:"column:investor_email;size:255" json:"investor_email"`
	PropertyID    string `gorm:"column:property_id;type:char(32);not null;index:idx_requests_property" json:"property_id"`
	PropertyName  string `gorm:"column:property_name;size:128" json:"property_name"`

	Tokens        int64   `gorm:"column:tokens;not null" json:"tokens"`
	PricePerToken float64 `gorm:"column:price_per_token;type:decimal(18,2);not null" json:"price_per_token"`
	GrossValue    float64 `gorm:"column:gross_value;type:decimal(18,2);not null" json:"gross_value"`
	HoldingMonths int     `gorm:"column:holding_months;not null" json:"holding_months"`
	FeePercent    float64 `gorm:"column:fee_percent;type:decimal(6,2);not null" json:"fee_percent"`
	FeeAmount     float64 `gorm:"column:fee_amount;type:decimal(18,2);not null" json:"fee_amount"`
	NetPayout     float64 `gorm:"column:net_payout;type:decimal(18,2);not null" json:"net_payout"`

	Status          Status `gorm:"column:status;type:enum('pending','processing','completed','denied','cancelled');default:'pending';index:idx_requests_status" json:"status"`
	DenialReason    string `gorm:"column:denial_reason;type:text" json:"denial_reason,omitempty"`
	PayoutReference string `gorm:"column:payout_reference;size:64" json:"payout_reference,omitempty"`

	// Bumped on every committed transition; stale writers lose the CAS.
	Revision uint64 `gorm:"column:revision;not null;default:1" json:"-"`

	RequestedAt         time.Time      `gorm:"column:requested_at;not null" json:"requested_at"`
	ProcessingStartedAt *time.Time     `gorm:"column:processing_started_at" json:"processing_started_at,omitempty"`
	CompletedAt         *time.Time     `gorm:"column:completed_at" json:"completed_at,omitempty"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt           time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt           gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Request) TableName() string { return "liquidity_requests" }

// Sequence backs the yearly LIQ-YYYY-NNNN counter. One row per year,
// claimed under a row lock inside the creation transaction.
type Sequence struct {
	Year       int    `gorm:"column:year;primaryKey" `
	LastNumber uint64 `gorm:"column:last_number;not null"`
}

func (Sequence) TableName() string { return "request_sequences" }
