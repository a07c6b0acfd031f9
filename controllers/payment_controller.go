package controllers

import (
	"net/http"
	"time"

	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

// CreateOrderRequest is the flat intent the frontend carries through the
// booking pages, submitted once when the guest reaches payment.
type CreateOrderRequest struct {
	PropertyID  uint   `json:"propertyId" binding:"required"`
	RoomID      *uint  `json:"roomId,omitempty"`
	SharingType string `json:"sharingType,omitempty"`

	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`

	MoveIn         string `json:"moveIn" binding:"required"` // "2006-01-02"
	DurationMonths int    `json:"durationMonths" binding:"required,min=1"`

	UserID *uint `json:"userId,omitempty"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type PaymentController struct {
	PaymentSvc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{PaymentSvc: svc}
}

func intentFromRequest(req CreateOrderRequest) (services.ReservationIntent, error) {
	moveIn, err := time.Parse("2006-01-02", req.MoveIn)
	if err != nil {
		return services.ReservationIntent{}, err
	}
	return services.ReservationIntent{
		PropertyID:     req.PropertyID,
		RoomID:         req.RoomID,
		SharingType:    req.SharingType,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		MoveIn:         moveIn,
		DurationMonths: req.DurationMonths,
		UserID:         req.UserID,
	}, nil
}

// CreateOrder creates the gateway order for the advance amount. The client
// opens the hosted checkout with what this returns; it never picks an amount.
func (pc *PaymentController) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", messageForCode("validation_error"), nil)
		return
	}

	intent, err := intentFromRequest(req)
	if err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", "moveIn must be a YYYY-MM-DD date", nil)
		return
	}

	order, err := pc.PaymentSvc.CreateOrder(intent)
	if err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

// VerifyPayment takes the three values the widget's success callback hands
// the client and settles them server-side. Only this endpoint writes bookings.
func (pc *PaymentController) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", messageForCode("validation_error"), nil)
		return
	}

	result, err := pc.PaymentSvc.VerifyPayment(req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		status, code := statusForError(err)
		extra := gin.H{}
		if code == "room_no_longer_available" {
			// money has moved — always hand back the payment id for support
			extra["paymentId"] = req.PaymentID
			extra["supportContact"] = utils.EnvOrDefault("SUPPORT_EMAIL", "support@pgstay.in")
		}
		utils.JSONErrorCode(c, status, code, messageForCode(code), extra)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	utils.JSONSuccess(c, status, result)
}
