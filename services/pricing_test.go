package services

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestQuoteStayHappyPath(t *testing.T) {
	// price 8500, no explicit deposit -> deposit defaults to 17000
	q, err := QuoteStay(8500, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TotalAmount != 25500 {
		t.Errorf("total = %d, want 25500", q.TotalAmount)
	}
	if q.AdvanceAmount != 1700 {
		t.Errorf("advance = %d, want 1700", q.AdvanceAmount)
	}
	if q.RemainingAmount != 23800 {
		t.Errorf("remaining = %d, want 23800", q.RemainingAmount)
	}
}

func TestQuoteStayWholePropertyDefaults(t *testing.T) {
	// Room-type property: price 12000, deposit nil -> 24000 (2x)
	q, err := QuoteStay(12000, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TotalAmount != 36000 {
		t.Errorf("total = %d, want 36000", q.TotalAmount)
	}
	if q.AdvanceAmount != 2400 {
		t.Errorf("advance = %d, want 2400", q.AdvanceAmount)
	}
}

func TestQuoteStayExplicitDeposit(t *testing.T) {
	q, err := QuoteStay(10000, intPtr(5000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TotalAmount != 15000 || q.AdvanceAmount != 2000 || q.RemainingAmount != 13000 {
		t.Errorf("got %+v", q)
	}
}

func TestQuoteStayRoundHalfUp(t *testing.T) {
	cases := []struct {
		price   int
		advance int
	}{
		{8503, 1701}, // 1700.6 rounds up
		{12, 2},      // 2.4 rounds down
		{13, 3},      // 2.6 rounds up
		{5, 1},       // exactly 1.0
		{2, 0},       // 0.4 rounds down
		{8497, 1699}, // 1699.4 rounds down
	}
	for _, tc := range cases {
		q, err := QuoteStay(tc.price, intPtr(0))
		if err != nil {
			t.Fatalf("price %d: unexpected error: %v", tc.price, err)
		}
		if q.AdvanceAmount != tc.advance {
			t.Errorf("price %d: advance = %d, want %d", tc.price, q.AdvanceAmount, tc.advance)
		}
	}
}

func TestQuoteStayAmountsNeverDrift(t *testing.T) {
	// remaining is always derived by subtraction, so for arbitrary inputs
	// advance + remaining must equal total exactly
	prices := []int{1, 2, 7, 99, 4999, 8500, 8503, 12000, 123457}
	deposits := []*int{nil, intPtr(0), intPtr(1), intPtr(9999), intPtr(17000)}
	for _, p := range prices {
		for _, d := range deposits {
			q, err := QuoteStay(p, d)
			if err != nil {
				t.Fatalf("price %d: unexpected error: %v", p, err)
			}
			if q.AdvanceAmount+q.RemainingAmount != q.TotalAmount {
				t.Errorf("price %d deposit %v: %d + %d != %d", p, d, q.AdvanceAmount, q.RemainingAmount, q.TotalAmount)
			}
		}
	}
}

func TestQuoteStayRejectsBadInput(t *testing.T) {
	if _, err := QuoteStay(0, nil); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("price 0: got %v, want ErrInvalidPrice", err)
	}
	if _, err := QuoteStay(-500, nil); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("negative price: got %v, want ErrInvalidPrice", err)
	}
	if _, err := QuoteStay(8500, intPtr(-1)); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("negative deposit: got %v, want ErrInvalidPrice", err)
	}
}
