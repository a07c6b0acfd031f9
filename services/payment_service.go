package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"pgstay-backend/models"
	"pgstay-backend/utils"

	razorpay "github.com/razorpay/razorpay-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GatewayClient creates orders at the payment provider. The amount crosses
// this boundary in paise; everything above it stays in rupees.
type GatewayClient interface {
	CreateOrder(amountPaise int, currency, receipt string, notes map[string]interface{}) (string, error)
}

// Ledger is the single writer of booking rows.
type Ledger interface {
	ConfirmBooking(order models.PaymentOrder, paymentID string) (models.Booking, error)
}

// Notifier delivers best-effort confirmations after a booking is final.
type Notifier interface {
	Notify(booking models.Booking) NotificationResult
}

// OrderStore persists gateway orders and their settlement state.
type OrderStore interface {
	Save(order *models.PaymentOrder) error
	FindByOrderID(orderID string) (models.PaymentOrder, error)
	MarkPaid(id uint, paymentID string, bookingID uint, referenceCode string) error
	MarkReconciliation(id uint, paymentID string) error
}

// --- razorpay gateway ---

type razorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) GatewayClient {
	return &razorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *razorpayGateway) CreateOrder(amountPaise int, currency, receipt string, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayError, err)
	}
	id, ok := order["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: order id missing in gateway response", ErrGatewayError)
	}
	return id, nil
}

// VerifySignature recomputes the gateway's HMAC-SHA256 over
// "order_id|payment_id" with the shared secret and compares in constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// --- gorm order store ---

type gormOrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) OrderStore {
	return &gormOrderStore{db: db}
}

func (s *gormOrderStore) Save(order *models.PaymentOrder) error {
	if err := s.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to save payment order: %w", err)
	}
	return nil
}

func (s *gormOrderStore) FindByOrderID(orderID string) (models.PaymentOrder, error) {
	var order models.PaymentOrder
	if err := s.db.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, ErrOrderNotFound
		}
		return order, fmt.Errorf("failed to load payment order: %w", err)
	}
	return order, nil
}

func (s *gormOrderStore) MarkPaid(id uint, paymentID string, bookingID uint, referenceCode string) error {
	return s.db.Model(&models.PaymentOrder{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         models.OrderStatusPaid,
			"payment_id":     paymentID,
			"booking_id":     bookingID,
			"reference_code": referenceCode,
		}).Error
}

func (s *gormOrderStore) MarkReconciliation(id uint, paymentID string) error {
	return s.db.Model(&models.PaymentOrder{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.OrderStatusReconciliation,
			"payment_id": paymentID,
		}).Error
}

// --- payment service ---

// PaymentService drives the checkout flow: server-side order creation before
// the widget opens, and server-side signature verification before anything is
// written to the ledger.
type PaymentService struct {
	Orders       OrderStore
	Gateway      GatewayClient
	Ledger       Ledger
	Notifier     Notifier
	Reservations *ReservationService

	KeyID  string
	secret string
}

func NewPaymentService(orders OrderStore, gateway GatewayClient, ledger Ledger, notifier Notifier, reservations *ReservationService, keyID, keySecret string) *PaymentService {
	return &PaymentService{
		Orders:       orders,
		Gateway:      gateway,
		Ledger:       ledger,
		Notifier:     notifier,
		Reservations: reservations,
		KeyID:        keyID,
		secret:       keySecret,
	}
}

// CheckoutOrder is what the client needs to open the hosted widget.
type CheckoutOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`

	Quote        Quote  `json:"quote"`
	PropertyName string `json:"propertyName"`
	SharingType  string `json:"sharingType"`

	Prefill struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"prefill"`
}

// CreateOrder validates the intent, resolves it to a stay, quotes it, and
// creates the gateway order for exactly the advance amount.
func (s *PaymentService) CreateOrder(intent ReservationIntent) (*CheckoutOrder, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}
	intent.Phone = utils.NormalizePhoneNumber(intent.Phone)

	stay, err := s.Reservations.ResolveStay(intent)
	if err != nil {
		return nil, err
	}

	quote, err := QuoteStay(stay.PricePerPerson, stay.SecurityDepositPerPerson)
	if err != nil {
		return nil, err
	}

	receipt := utils.NewReceiptID()
	orderID, err := s.Gateway.CreateOrder(quote.AdvanceAmount*100, "INR", receipt, map[string]interface{}{
		"property_id": stay.Property.ID,
		"guest_email": intent.Email,
	})
	if err != nil {
		return nil, err
	}

	snapshot, _ := json.Marshal(intent)
	checkIn := intent.MoveIn
	checkOut := intent.MoveOut()

	order := models.PaymentOrder{
		OrderID:  orderID,
		Receipt:  receipt,
		Amount:   quote.AdvanceAmount,
		Currency: "INR",
		Status:   models.OrderStatusCreated,

		PropertyID:               stay.Property.ID,
		RoomID:                   stay.RoomID(),
		UserID:                   intent.UserID,
		SharingType:              stay.SharingType,
		PricePerPerson:           stay.PricePerPerson,
		SecurityDepositPerPerson: quote.TotalAmount - stay.PricePerPerson,
		TotalAmount:              quote.TotalAmount,

		GuestName:  intent.FullName,
		GuestEmail: intent.Email,
		GuestPhone: intent.Phone,

		CheckInDate:  &checkIn,
		CheckOutDate: &checkOut,

		IntentSnapshot: datatypes.JSON(snapshot),
	}
	if err := s.Orders.Save(&order); err != nil {
		return nil, err
	}

	out := &CheckoutOrder{
		OrderID:      orderID,
		Amount:       quote.AdvanceAmount,
		Currency:     "INR",
		KeyID:        s.KeyID,
		Quote:        quote,
		PropertyName: stay.Property.Name,
		SharingType:  stay.SharingType,
	}
	out.Prefill.Name = intent.FullName
	out.Prefill.Email = intent.Email
	out.Prefill.Phone = intent.Phone
	return out, nil
}

// VerifiedBooking is returned once a payment has been verified and the
// booking durably written.
type VerifiedBooking struct {
	BookingID     uint   `json:"bookingId"`
	ReferenceCode string `json:"referenceCode"`
	PaymentID     string `json:"paymentId"`
	AmountPaid    int    `json:"amountPaid"`
	AmountDue     int    `json:"amountDue"`
	Replayed      bool   `json:"-"`
}

// VerifyPayment is the only path to a booking row. Ordering is strict:
// signature check first, then the guarded ledger write, and only then a
// success response. A replayed payment id returns the original booking.
func (s *PaymentService) VerifyPayment(orderID, paymentID, signature string) (*VerifiedBooking, error) {
	order, err := s.Orders.FindByOrderID(orderID)
	if err != nil {
		return nil, err
	}

	// Fail closed on any mismatch, replays included: a settled order's
	// identifiers must never unlock its booking without the right signature.
	if !VerifySignature(orderID, paymentID, signature, s.secret) {
		return nil, ErrSignatureInvalid
	}

	// Duplicate client callback for an already-settled order.
	if order.BookingID != nil && order.PaymentID != nil && *order.PaymentID == paymentID {
		return &VerifiedBooking{
			BookingID:     *order.BookingID,
			ReferenceCode: order.ReferenceCode,
			PaymentID:     paymentID,
			AmountPaid:    order.Amount,
			AmountDue:     order.TotalAmount - order.Amount,
			Replayed:      true,
		}, nil
	}

	booking, err := s.Ledger.ConfirmBooking(order, paymentID)
	if err != nil {
		if errors.Is(err, ErrRoomNoLongerAvailable) {
			// Money has already moved; never swallow this one.
			if mErr := s.Orders.MarkReconciliation(order.ID, paymentID); mErr != nil {
				log.Printf("ALERT: failed to flag order %s for reconciliation (payment %s): %v", orderID, paymentID, mErr)
			}
			log.Printf("ALERT: payment %s captured but bed lost for order %s; flagged for reconciliation", paymentID, orderID)
		}
		return nil, err
	}

	if err := s.Orders.MarkPaid(order.ID, paymentID, booking.ID, booking.ReferenceCode); err != nil {
		// Booking stands; the order row catches up on the next replay.
		log.Printf("warning: failed to mark order %s paid: %v", orderID, err)
	}

	if s.Notifier != nil {
		go func(b models.Booking) {
			res := s.Notifier.Notify(b)
			if len(res.Errors) > 0 {
				log.Printf("notification errors for booking %d: %v", b.ID, res.Errors)
			}
		}(booking)
	}

	return &VerifiedBooking{
		BookingID:     booking.ID,
		ReferenceCode: booking.ReferenceCode,
		PaymentID:     paymentID,
		AmountPaid:    booking.AmountPaid,
		AmountDue:     booking.AmountDue,
	}, nil
}
