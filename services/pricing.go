package services

// Quote holds every amount the payment flow needs, integer rupees.
type Quote struct {
	TotalAmount     int `json:"totalAmount"`
	AdvanceAmount   int `json:"advanceAmount"`
	RemainingAmount int `json:"remainingAmount"`
}

// Guests pay 20% of one month's per-person rent up front; the balance is
// collected out-of-band by the owner.
const advancePercent = 20

// DefaultDeposit is the fallback when a room/property has no explicit
// security deposit: two months of rent.
func DefaultDeposit(pricePerPerson int) int {
	return 2 * pricePerPerson
}

// QuoteStay derives all payment amounts from a per-person price and optional
// deposit. The advance rounds half-up; the remaining amount is always derived
// by subtraction from the total so the three amounts can never drift apart.
func QuoteStay(pricePerPerson int, securityDeposit *int) (Quote, error) {
	if pricePerPerson <= 0 {
		return Quote{}, ErrInvalidPrice
	}

	deposit := DefaultDeposit(pricePerPerson)
	if securityDeposit != nil {
		if *securityDeposit < 0 {
			return Quote{}, ErrInvalidPrice
		}
		deposit = *securityDeposit
	}

	total := pricePerPerson + deposit
	advance := (pricePerPerson*advancePercent + 50) / 100

	return Quote{
		TotalAmount:     total,
		AdvanceAmount:   advance,
		RemainingAmount: total - advance,
	}, nil
}
