package fee

import (
	"errors"
	"testing"
)

func TestNewSchedule_RejectsBadTables(t *testing.T) {
	cases := map[string][]Tier{
		"empty":           {},
		"not from zero":   {{MinMonths: 1, MaxMonths: 12, FeePercent: 5}},
		"gap":             {{MinMonths: 0, MaxMonths: 11, FeePercent: 10}, {MinMonths: 13, MaxMonths: 24, FeePercent: 5}},
		"overlap":         {{MinMonths: 0, MaxMonths: 11, FeePercent: 10}, {MinMonths: 11, MaxMonths: 24, FeePercent: 5}},
		"inverted range":  {{MinMonths: 0, MaxMonths: -1, FeePercent: 10}},
		"percent too big": {{MinMonths: 0, MaxMonths: 11, FeePercent: 101}},
		"negative pct":    {{MinMonths: 0, MaxMonths: 11, FeePercent: -1}},
	}
	for name, tiers := range cases {
		if _, err := NewSchedule(tiers); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

func TestDefaultSchedule_MatchesSampledTiers(t *testing.T) {
	s := Default()
	// observed sample data: 8mo→10%, 14mo→7%, 26mo→5%, 40mo→3%
	cases := map[int]float64{8: 10, 14: 7, 26: 5, 40: 3, 0: 10, 11: 10, 12: 7, 23: 7, 24: 5, 35: 5, 36: 3, 600: 3}
	for months, want := range cases {
		got, err := s.PercentFor(months)
		if err != nil {
			t.Fatalf("PercentFor(%d): %v", months, err)
		}
		if got != want {
			t.Errorf("PercentFor(%d) = %v, want %v", months, got, want)
		}
	}
}

func TestSchedule_Exhaustive_NoGapsUpToMax(t *testing.T) {
	s := Default()
	for m := 0; m <= s.MaxMonths(); m++ {
		if _, err := s.PercentFor(m); err != nil {
			t.Fatalf("gap at month %d: %v", m, err)
		}
	}
	if _, err := s.PercentFor(s.MaxMonths() + 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("beyond max: want ErrInvalidInput, got %v", err)
	}
}

func TestTiers_ReturnsDefensiveCopy(t *testing.T) {
	s := Default()
	tiers := s.Tiers()
	if len(tiers) != 4 || tiers[0].FeePercent != 10 || s.MaxMonths() != 600 {
		t.Fatalf("unexpected default table: %+v", tiers)
	}

	// Mutating the returned slice must not reach into the schedule.
	tiers[0].FeePercent = 99
	got, err := s.PercentFor(0)
	if err != nil {
		t.Fatalf("PercentFor: %v", err)
	}
	if got != 10 {
		t.Fatalf("schedule mutated through Tiers(): PercentFor(0) = %v", got)
	}
}

func TestCalculate_EndToEndSample(t *testing.T) {
	// tokens=25, price=100, held 14 months ⇒ gross 2500, 7% fee, 175 fee, 2325 net
	q, err := Default().Calculate(25, 100, 14)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if q.GrossValue != 2500 || q.FeePercent != 7 || q.FeeAmount != 175 || q.NetPayout != 2325 {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	s := Default()
	a, err := s.Calculate(33, 97.53, 19)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	b, err := s.Calculate(33, 97.53, 19)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if a != b {
		t.Fatalf("same inputs produced different quotes: %+v vs %+v", a, b)
	}
}

func TestCalculate_PayoutIdentity(t *testing.T) {
	s := Default()
	cases := []struct {
		tokens int64
		price  float64
		months int
	}{
		{25, 100, 14},
		{1, 0.01, 0},
		{7, 33.33, 8},
		{1000, 249.99, 26},
		{3, 10.01, 40},
	}
	for _, c := range cases {
		q, err := s.Calculate(c.tokens, c.price, c.months)
		if err != nil {
			t.Fatalf("Calculate(%+v): %v", c, err)
		}
		// fee + net must reassemble gross exactly at cent precision
		if got := round2(q.FeeAmount + q.NetPayout); got != q.GrossValue {
			t.Errorf("identity broken for %+v: fee %v + net %v != gross %v", c, q.FeeAmount, q.NetPayout, q.GrossValue)
		}
	}
}

func TestCalculate_RejectsOutOfDomain(t *testing.T) {
	s := Default()
	cases := []struct {
		name   string
		tokens int64
		price  float64
		months int
	}{
		{"zero tokens", 0, 100, 10},
		{"negative tokens", -5, 100, 10},
		{"zero price", 10, 0, 10},
		{"negative price", 10, -1, 10},
		{"negative months", 10, 100, -1},
	}
	for _, c := range cases {
		if _, err := s.Calculate(c.tokens, c.price, c.months); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: want ErrInvalidInput, got %v", c.name, err)
		}
	}
}

func TestCalculate_RoundsFeeToCents(t *testing.T) {
	s, err := NewSchedule([]Tier{{MinMonths: 0, MaxMonths: 120, FeePercent: 7}})
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	// 3 * 33.33 = 99.99; 7% = 6.9993 → 7.00
	q, err := s.Calculate(3, 33.33, 5)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if q.FeeAmount != 7.00 {
		t.Fatalf("FeeAmount = %v, want 7.00", q.FeeAmount)
	}
	if q.NetPayout != 92.99 {
		t.Fatalf("NetPayout = %v, want 92.99", q.NetPayout)
	}
}
