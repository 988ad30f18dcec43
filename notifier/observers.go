package notifier

import (
	"fmt"
	"log"

	"movie_booking/model"
	"movie_booking/utils"

	"gorm.io/gorm"
)

// EmailObserver sends the booking confirmation email, QR included, for
// confirmed bookings. Other event types are delivered as plain notices via
// the same channel later; for now only confirmations carry a template.
type EmailObserver struct{}

func (EmailObserver) Name() string { return "email" }

func (EmailObserver) Notify(event Event) error {
	if event.UserEmail == "" {
		return nil
	}

	if event.Type == EventBookingConfirmed {
		data, ok := event.Payload["confirmation"].(utils.BookingConfirmationData)
		if !ok {
			return fmt.Errorf("confirmed event %s has no confirmation payload", event.BookingCode)
		}
		go utils.SendBookingConfirmationEmail(event.UserEmail, data)
	}
	return nil
}

// SMSObserver is a stand-in for a gateway integration. It logs the message
// that would be sent.
type SMSObserver struct{}

func (SMSObserver) Name() string { return "sms" }

func (SMSObserver) Notify(event Event) error {
	if event.UserPhone == "" {
		return nil
	}
	log.Printf("[SMS to %s] %s: %s", event.UserPhone, event.Title, event.Message)
	return nil
}

// AdminFeedObserver persists every event as an in-app notification row so the
// admin dashboard can show a live activity feed.
type AdminFeedObserver struct {
	DB *gorm.DB
}

func (AdminFeedObserver) Name() string { return "admin-feed" }

func (o AdminFeedObserver) Notify(event Event) error {
	notification := model.Notification{
		UserId:  event.UserId,
		Title:   event.Title,
		Message: event.Message,
		Type:    event.Type,
	}
	return o.DB.Create(&notification).Error
}
