package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// BookingEmailData carries everything the confirmation email needs.
type BookingEmailData struct {
	GuestName     string
	ReferenceCode string
	PropertyName  string
	SharingType   string
	CheckInDate   string
	AmountPaid    int
	AmountDue     int
	TotalAmount   int
	PaymentID     string
	OwnerName     string
	OwnerPhone    string
}

// SendBookingConfirmationEmail sends the post-payment confirmation.
// DEV fallback: when SMTP is not configured the email is logged instead of
// sent, so local runs never fail on mail.
func SendBookingConfirmationEmail(recipientEmail string, data BookingEmailData) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s booking:%s payment:%s paid:%d due:%d",
			recipientEmail, data.ReferenceCode, data.PaymentID, data.AmountPaid, data.AmountDue)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}

	guestName := safe(data.GuestName)
	ref := safe(data.ReferenceCode)
	propertyName := safe(data.PropertyName)

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := fmt.Sprintf("Booking Confirmed — %s", ref)
	boundary := "----=_PGSTAY_EMAIL_BOUNDARY"

	plainBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your booking at %s is confirmed!\n\n"+
			"Booking Reference: %s\n"+
			"Sharing Type: %s\n"+
			"Move-in Date: %s\n"+
			"Advance Paid: Rs. %d (Payment ID: %s)\n"+
			"Balance Due: Rs. %d (payable directly to the owner)\n"+
			"Total: Rs. %d\n\n"+
			"Owner contact: %s, %s\n\n"+
			"Best regards,\n%s",
		guestName, propertyName, ref, safe(data.SharingType), safe(data.CheckInDate),
		data.AmountPaid, safe(data.PaymentID), data.AmountDue, data.TotalAmount,
		safe(data.OwnerName), DisplayPhoneNumber(data.OwnerPhone), fromName,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking Confirmed</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.label { font-weight:700; width:160px; display:inline-block; vertical-align:top; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Booking Confirmed</h2>
    <p>Dear %s,</p>
    <p>Your booking at <strong>%s</strong> is confirmed. Details below:</p>
    <p><span class="label">Reference:</span> %s</p>
    <p><span class="label">Sharing Type:</span> %s</p>
    <p><span class="label">Move-in:</span> %s</p>
    <p><span class="label">Advance Paid:</span> Rs. %d (Payment ID: %s)</p>
    <p><span class="label">Balance Due:</span> Rs. %d — payable directly to the owner</p>
    <p><span class="label">Total:</span> Rs. %d</p>
    <p><span class="label">Owner:</span> %s, %s</p>
    <p>Best regards,<br>%s</p>
  </div>
</div>
</body>
</html>`,
		guestName, propertyName, ref, safe(data.SharingType), safe(data.CheckInDate),
		data.AmountPaid, safe(data.PaymentID), data.AmountDue, data.TotalAmount,
		safe(data.OwnerName), DisplayPhoneNumber(data.OwnerPhone), fromName,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("Failed to send confirmation email to %s: %v", recipientEmail, err)
		return err
	}

	log.Printf("Confirmation email sent to %s (booking %s)", recipientEmail, ref)
	return nil
}
