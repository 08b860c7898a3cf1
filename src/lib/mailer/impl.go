package mailer

import (
	"casadelpuente/src/common"
	"casadelpuente/src/lib"
	"casadelpuente/src/models"
	"fmt"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

func enabled() bool {
	v, err := strconv.ParseBool(os.Getenv("CONFIRMATION_EMAILS"))
	return err == nil && v
}

// SendBookingConfirmation mails the guest after a booking is confirmed.
// Best-effort: callers log the error and move on, the status change itself is
// already persisted. No-op unless CONFIRMATION_EMAILS is set.
func SendBookingConfirmation(booking *models.Booking) error {
	if !enabled() {
		return nil
	}
	guest, err := common.GetGuest(booking.GuestID)
	if err != nil {
		return err
	}
	c, err := lib.GetSMTPClient()
	if err != nil {
		return err
	}
	m := mail.NewMsg()
	if err := m.From(os.Getenv("SMTP_FROM")); err != nil {
		return err
	}
	if err := m.To(guest.Email); err != nil {
		return err
	}
	m.Subject("Your stay at Casa Del Puente is confirmed")
	body := fmt.Sprintf(
		"Hola %s,\n\nYour reservation is confirmed.\n\nCheck-in: %s\nCheck-out: %s\nNights: %d\nTotal: $%s\n\nWe look forward to welcoming you in Boquete.\n",
		guest.FirstName,
		booking.CheckInDate.Format("Mon, 02 Jan 2006"),
		booking.CheckOutDate.Format("Mon, 02 Jan 2006"),
		booking.NumberOfNights,
		booking.TotalPrice,
	)
	m.SetBodyString(mail.TypeTextPlain, body)
	return c.DialAndSend(m)
}
