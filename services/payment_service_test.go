package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"pgstay-backend/models"
)

const testSecret = "test_key_secret"

func signPayment(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// tamper flips the last character to one guaranteed different.
func tamper(sig string) string {
	last := "0"
	if sig[len(sig)-1] == '0' {
		last = "1"
	}
	return sig[:len(sig)-1] + last
}

func TestVerifySignature(t *testing.T) {
	orderID := "order_abc123"
	paymentID := "pay_def456"
	sig := signPayment(orderID, paymentID)

	if !VerifySignature(orderID, paymentID, sig, testSecret) {
		t.Error("valid signature rejected")
	}
	if VerifySignature(orderID, paymentID, tamper(sig), testSecret) {
		t.Error("tampered signature accepted")
	}
	if VerifySignature(orderID, "pay_other", sig, testSecret) {
		t.Error("signature accepted for a different payment id")
	}
	if VerifySignature(orderID, paymentID, sig, "wrong_secret") {
		t.Error("signature accepted under the wrong secret")
	}
	if VerifySignature("", "", "", testSecret) {
		t.Error("empty inputs accepted")
	}
}

// --- fakes for the verify-then-book orchestration ---

type fakeOrderStore struct {
	orders map[string]models.PaymentOrder

	markPaidCalls           int
	markReconciliationCalls int
}

func newFakeOrderStore(orders ...models.PaymentOrder) *fakeOrderStore {
	s := &fakeOrderStore{orders: map[string]models.PaymentOrder{}}
	for _, o := range orders {
		s.orders[o.OrderID] = o
	}
	return s
}

func (s *fakeOrderStore) Save(order *models.PaymentOrder) error {
	s.orders[order.OrderID] = *order
	return nil
}

func (s *fakeOrderStore) FindByOrderID(orderID string) (models.PaymentOrder, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return models.PaymentOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (s *fakeOrderStore) MarkPaid(id uint, paymentID string, bookingID uint, referenceCode string) error {
	s.markPaidCalls++
	for key, o := range s.orders {
		if o.ID == id {
			o.Status = models.OrderStatusPaid
			o.PaymentID = &paymentID
			o.BookingID = &bookingID
			o.ReferenceCode = referenceCode
			s.orders[key] = o
		}
	}
	return nil
}

func (s *fakeOrderStore) MarkReconciliation(id uint, paymentID string) error {
	s.markReconciliationCalls++
	for key, o := range s.orders {
		if o.ID == id {
			o.Status = models.OrderStatusReconciliation
			o.PaymentID = &paymentID
			s.orders[key] = o
		}
	}
	return nil
}

type fakeLedger struct {
	confirmCalls int
	failWith     error
	nextID       uint
}

func (l *fakeLedger) ConfirmBooking(order models.PaymentOrder, paymentID string) (models.Booking, error) {
	l.confirmCalls++
	if l.failWith != nil {
		return models.Booking{}, l.failWith
	}
	l.nextID++
	return models.Booking{
		ID:            l.nextID,
		ReferenceCode: "PG-TESTREF",
		PaymentID:     paymentID,
		AmountPaid:    order.Amount,
		AmountDue:     order.TotalAmount - order.Amount,
	}, nil
}

func testOrder() models.PaymentOrder {
	o := models.PaymentOrder{
		OrderID:     "order_abc123",
		Amount:      1700,
		TotalAmount: 25500,
		PropertyID:  1,
		Status:      models.OrderStatusCreated,
	}
	o.ID = 42
	return o
}

func newTestPaymentService(store OrderStore, ledger Ledger) *PaymentService {
	return &PaymentService{
		Orders: store,
		Ledger: ledger,
		secret: testSecret,
	}
}

func TestVerifyPaymentHappyPath(t *testing.T) {
	store := newFakeOrderStore(testOrder())
	ledger := &fakeLedger{}
	svc := newTestPaymentService(store, ledger)

	sig := signPayment("order_abc123", "pay_def456")
	result, err := svc.VerifyPayment("order_abc123", "pay_def456", sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BookingID == 0 {
		t.Error("expected a booking id")
	}
	if result.AmountPaid != 1700 || result.AmountDue != 23800 {
		t.Errorf("amounts = %d/%d, want 1700/23800", result.AmountPaid, result.AmountDue)
	}
	if ledger.confirmCalls != 1 {
		t.Errorf("ledger called %d times, want 1", ledger.confirmCalls)
	}
	if store.markPaidCalls != 1 {
		t.Errorf("MarkPaid called %d times, want 1", store.markPaidCalls)
	}
}

func TestVerifyPaymentTamperedSignature(t *testing.T) {
	store := newFakeOrderStore(testOrder())
	ledger := &fakeLedger{}
	svc := newTestPaymentService(store, ledger)

	_, err := svc.VerifyPayment("order_abc123", "pay_def456", "deadbeef")
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("got %v, want ErrSignatureInvalid", err)
	}
	// fail closed: nothing written, nothing marked
	if ledger.confirmCalls != 0 {
		t.Errorf("ledger must not be called on signature failure")
	}
	if store.markPaidCalls != 0 || store.markReconciliationCalls != 0 {
		t.Errorf("order must not be mutated on signature failure")
	}
	if got := store.orders["order_abc123"].Status; got != models.OrderStatusCreated {
		t.Errorf("order status = %q, want created", got)
	}
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	svc := newTestPaymentService(newFakeOrderStore(), &fakeLedger{})
	_, err := svc.VerifyPayment("order_missing", "pay_def456", "sig")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("got %v, want ErrOrderNotFound", err)
	}
}

func TestVerifyPaymentReplayIsIdempotent(t *testing.T) {
	store := newFakeOrderStore(testOrder())
	ledger := &fakeLedger{}
	svc := newTestPaymentService(store, ledger)

	sig := signPayment("order_abc123", "pay_def456")
	first, err := svc.VerifyPayment("order_abc123", "pay_def456", sig)
	if err != nil {
		t.Fatalf("first verify failed: %v", err)
	}

	second, err := svc.VerifyPayment("order_abc123", "pay_def456", sig)
	if err != nil {
		t.Fatalf("replayed verify failed: %v", err)
	}
	if !second.Replayed {
		t.Error("second call should be flagged as a replay")
	}
	if second.BookingID != first.BookingID {
		t.Errorf("replay returned booking %d, want %d", second.BookingID, first.BookingID)
	}
	if second.ReferenceCode != first.ReferenceCode {
		t.Errorf("replay reference code %q, want %q", second.ReferenceCode, first.ReferenceCode)
	}
	if ledger.confirmCalls != 1 {
		t.Errorf("ledger called %d times across replay, want exactly 1", ledger.confirmCalls)
	}
}

func TestVerifyPaymentReplayStillRequiresSignature(t *testing.T) {
	store := newFakeOrderStore(testOrder())
	ledger := &fakeLedger{}
	svc := newTestPaymentService(store, ledger)

	sig := signPayment("order_abc123", "pay_def456")
	if _, err := svc.VerifyPayment("order_abc123", "pay_def456", sig); err != nil {
		t.Fatalf("first verify failed: %v", err)
	}

	// A settled order's identifiers with a garbage signature must not
	// unlock the booking details.
	result, err := svc.VerifyPayment("order_abc123", "pay_def456", "totally-bogus-signature")
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("got %v, want ErrSignatureInvalid", err)
	}
	if result != nil {
		t.Errorf("unexpected payload on bad-signature replay: %+v", result)
	}

	tampered := tamper(sig)
	if _, err := svc.VerifyPayment("order_abc123", "pay_def456", tampered); !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("tampered replay: got %v, want ErrSignatureInvalid", err)
	}
	if ledger.confirmCalls != 1 {
		t.Errorf("ledger called %d times, want exactly 1", ledger.confirmCalls)
	}
}

func TestVerifyPaymentBedLostAfterCapture(t *testing.T) {
	store := newFakeOrderStore(testOrder())
	ledger := &fakeLedger{failWith: ErrRoomNoLongerAvailable}
	svc := newTestPaymentService(store, ledger)

	sig := signPayment("order_abc123", "pay_def456")
	_, err := svc.VerifyPayment("order_abc123", "pay_def456", sig)
	if !errors.Is(err, ErrRoomNoLongerAvailable) {
		t.Fatalf("got %v, want ErrRoomNoLongerAvailable", err)
	}
	if store.markReconciliationCalls != 1 {
		t.Errorf("order must be flagged for reconciliation exactly once, got %d", store.markReconciliationCalls)
	}
	if got := store.orders["order_abc123"].Status; got != models.OrderStatusReconciliation {
		t.Errorf("order status = %q, want needs_reconciliation", got)
	}
}
