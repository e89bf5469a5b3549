package fee

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks out-of-domain calculator input or a schedule gap.
// A gap is a configuration error and is never silently defaulted, since a
// made-up fee would misstate what the investor is charged.
var ErrInvalidInput = errors.New("invalid fee calculation input")

// Tier maps an inclusive holding-period range (in months) to a fee percent.
type Tier struct {
	MinMonths  int     `json:"min_months"`
	MaxMonths  int     `json:"max_months"`
	FeePercent float64 `json:"fee_percent"`
}

// Schedule is the operator-tuned early-liquidity fee table. It must be
// contiguous from month 0; the last tier's MaxMonths caps the supported
// holding period.
type Schedule struct {
	tiers []Tier
}

// NewSchedule validates the tier table and returns a Schedule. Tiers must be
// non-empty, start at month 0, be contiguous and ascending, and carry a fee
// percent within [0,100].
func NewSchedule(tiers []Tier) (*Schedule, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("fee schedule: no tiers")
	}
	if tiers[0].MinMonths != 0 {
		return nil, fmt.Errorf("fee schedule: first tier must start at month 0, got %d", tiers[0].MinMonths)
	}
	for i, t := range tiers {
		if t.MaxMonths < t.MinMonths {
			return nil, fmt.Errorf("fee schedule: tier %d has max %d < min %d", i, t.MaxMonths, t.MinMonths)
		}
		if t.FeePercent < 0 || t.FeePercent > 100 {
			return nil, fmt.Errorf("fee schedule: tier %d fee percent %.2f out of range", i, t.FeePercent)
		}
		if i > 0 && t.MinMonths != tiers[i-1].MaxMonths+1 {
			return nil, fmt.Errorf("fee schedule: gap between tier %d (max %d) and tier %d (min %d)",
				i-1, tiers[i-1].MaxMonths, i, t.MinMonths)
		}
	}
	cp := make([]Tier, len(tiers))
	copy(cp, tiers)
	return &Schedule{tiers: cp}, nil
}

// Default returns the schedule observed in production sample data:
// under a year 10%, second year 7%, third year 5%, then 3% up to 50 years.
func Default() *Schedule {
	s, _ := NewSchedule([]Tier{
		{MinMonths: 0, MaxMonths: 11, FeePercent: 10},
		{MinMonths: 12, MaxMonths: 23, FeePercent: 7},
		{MinMonths: 24, MaxMonths: 35, FeePercent: 5},
		{MinMonths: 36, MaxMonths: 600, FeePercent: 3},
	})
	return s
}

// MaxMonths is the highest holding period the schedule covers.
func (s *Schedule) MaxMonths() int { return s.tiers[len(s.tiers)-1].MaxMonths }

// Tiers returns a copy of the tier table.
func (s *Schedule) Tiers() []Tier {
	cp := make([]Tier, len(s.tiers))
	copy(cp, s.tiers)
	return cp
}

// PercentFor finds the fee percent for a holding period.
func (s *Schedule) PercentFor(holdingMonths int) (float64, error) {
	if holdingMonths < 0 {
		return 0, fmt.Errorf("%w: holding months %d < 0", ErrInvalidInput, holdingMonths)
	}
	for _, t := range s.tiers {
		if holdingMonths >= t.MinMonths && holdingMonths <= t.MaxMonths {
			return t.FeePercent, nil
		}
	}
	return 0, fmt.Errorf("%w: no schedule tier covers %d months", ErrInvalidInput, holdingMonths)
}

// Quote is the fee snapshot taken at request creation.
type Quote struct {
	GrossValue float64 `json:"gross_value"`
	FeePercent float64 `json:"fee_percent"`
	FeeAmount  float64 `json:"fee_amount"`
	NetPayout  float64 `json:"net_payout"`
}

// Calculate maps position size and holding period to the early-liquidity fee.
// Pure and deterministic: persisted results must be independently
// reproducible for audit.
func (s *Schedule) Calculate(tokens int64, pricePerToken float64, holdingMonths int) (Quote, error) {
	if tokens <= 0 {
		return Quote{}, fmt.Errorf("%w: tokens %d <= 0", ErrInvalidInput, tokens)
	}
	if pricePerToken <= 0 {
		return Quote{}, fmt.Errorf("%w: price per token %.2f <= 0", ErrInvalidInput, pricePerToken)
	}
	pct, err := s.PercentFor(holdingMonths)
	if err != nil {
		return Quote{}, err
	}
	gross := round2(float64(tokens) * pricePerToken)
	feeAmt := round2(gross * pct / 100)
	return Quote{
		GrossValue: gross,
		FeePercent: pct,
		FeeAmount:  feeAmt,
		NetPayout:  round2(gross - feeAmt),
	}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
