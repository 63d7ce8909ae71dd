package notification

import (
	"context"
	"fmt"
	"strings"

	"tm30/config"
	"tm30/infras/kafka"
	"tm30/infras/smtp"
	"tm30/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Worker consumes booking events and sends the admin summary and the
// guest confirmation. Mail failures are logged, never retried into the
// booking path.
type Worker struct {
	client kafka.Client
	mailer smtp.Mailer
	cfg    *config.Config
}

func NewWorker(client kafka.Client, mailer smtp.Mailer, cfg *config.Config) *Worker {
	return &Worker{
		client: client,
		mailer: mailer,
		cfg:    cfg,
	}
}

func (w *Worker) Run(ctx context.Context) {
	w.client.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.NotificationTopic, w.handle)
}

func (w *Worker) handle(message kafkaGo.Message) {
	decoded, err := kafka.DecodeKafkaMessage[BookingRegistered](message)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode booking event")

		return
	}

	event, ok := decoded.Value.(BookingRegistered)
	if !ok {
		log.Error().Str("key", decoded.Key).Msg("unexpected booking event payload")

		return
	}

	if adminTo := w.cfg.External.SMTP.AdminTo; adminTo != constant.Empty {
		if err := w.mailer.Send(AdminMail(adminTo, event)); err != nil {
			log.Error().Err(err).Str("submission_id", event.SubmissionID).Msg("failed to send admin summary mail")
		}
	}

	if event.Email != constant.Empty {
		if err := w.mailer.Send(GuestMail(event)); err != nil {
			log.Error().Err(err).Str("submission_id", event.SubmissionID).Msg("failed to send guest confirmation mail")
		}
	}
}

// AdminMail renders the always-English summary for the hotel admin.
func AdminMail(to string, event BookingRegistered) smtp.Mail {
	plural := ""
	if event.NumberOfGuests > 1 {
		plural = "s"
	}

	subject := fmt.Sprintf("New TM30 Submission%s - %d Guest%s - ID: %s", plural, event.NumberOfGuests, plural, event.SubmissionID)

	var text strings.Builder
	var html strings.Builder

	fmt.Fprintf(&text, "New TM30 Guest Registration%s\n\n", plural)
	fmt.Fprintf(&text, "Hotel: %s\nRoom Number: %s\nContact Email: %s\nNights: %d\nRegistered At: %s\n\n",
		event.HotelName, event.RoomNumber, event.Email, event.NumberOfNights, event.RegisteredAt)

	html.WriteString(`<html><body style="font-family: Arial, sans-serif; color: #333;">`)
	fmt.Fprintf(&html, "<h2>New TM30 Guest Registration%s</h2>", plural)
	fmt.Fprintf(&html, "<p><b>Hotel:</b> %s<br><b>Room Number:</b> %s<br><b>Contact Email:</b> %s<br><b>Nights:</b> %d<br><b>Registered At:</b> %s</p>",
		event.HotelName, event.RoomNumber, event.Email, event.NumberOfNights, event.RegisteredAt)

	for i, guest := range event.Guests {
		name := guest.FirstName
		if guest.MiddleName != constant.Empty {
			name += " " + guest.MiddleName
		}
		name += " " + guest.LastName

		phone := guest.PhoneNumber
		if phone == constant.Empty {
			phone = "Not provided"
		}

		fmt.Fprintf(&text, "Guest %d Information\nName: %s\nPassport: %s\nNationality: %s\nBirth Date: %s\nCheck-in Date: %s\nCheck-out Date: %s\nPhone: %s\n\n",
			i+1, name, guest.PassportNumber, guest.Nationality, guest.BirthDate, guest.CheckinDate, guest.CheckoutDate, phone)

		fmt.Fprintf(&html, `<div style="margin-bottom: 20px; padding: 15px; background-color: #f9f9f9; border-radius: 5px;">`)
		fmt.Fprintf(&html, "<h4>Guest %d Information</h4>", i+1)
		fmt.Fprintf(&html, "<p><b>Name:</b> %s<br><b>Passport:</b> %s<br><b>Nationality:</b> %s<br><b>Birth Date:</b> %s<br><b>Check-in Date:</b> %s<br><b>Check-out Date:</b> %s<br><b>Phone:</b> %s</p></div>",
			name, guest.PassportNumber, guest.Nationality, guest.BirthDate, guest.CheckinDate, guest.CheckoutDate, phone)
	}

	fmt.Fprintf(&text, "Submission IDs: %s\n", strings.Join(event.SubmissionIDs, ", "))
	fmt.Fprintf(&html, "<p><b>Submission IDs:</b> %s</p>", strings.Join(event.SubmissionIDs, ", "))
	html.WriteString("</body></html>")

	return smtp.Mail{
		To:       []string{to},
		Subject:  subject,
		TextBody: text.String(),
		HTMLBody: html.String(),
	}
}

// GuestMail renders the localized confirmation carrying the room key code.
func GuestMail(event BookingRegistered) smtp.Mail {
	t := TranslationFor(event.Language)

	var guest GuestInfo
	if len(event.Guests) > 0 {
		guest = event.Guests[0]
	}

	replacements := map[string]string{
		"hotelName": event.HotelName,
		"firstName": guest.FirstName,
		"lastName":  guest.LastName,
	}

	var text strings.Builder
	var html strings.Builder

	fmt.Fprintf(&text, "%s\n\n%s\n%s\n\n", fill(t.GuestWelcome, replacements), fill(t.GuestDear, replacements), t.GuestThankYou)
	fmt.Fprintf(&text, "%s\n%s %s\n%s %s\n\n", t.GuestRoomInfo, t.GuestRoomNumber, event.RoomNumber, t.GuestRoomKey, event.RoomKeyNumber)
	fmt.Fprintf(&text, "%s\n%s %s\n%s %s\n%s %s\n%s %s\n\n",
		t.GuestRegDetails,
		t.GuestSubmissionID, event.SubmissionID,
		t.GuestCheckinDate, guest.CheckinDate,
		t.GuestCheckoutDate, guest.CheckoutDate,
		t.GuestRegTime, event.RegisteredAt)
	fmt.Fprintf(&text, "%s\n%s\n\n%s\n", t.GuestHelp, t.GuestEnjoy, t.GuestPrivacy)

	html.WriteString(`<html><body style="font-family: Arial, sans-serif; color: #333;">`)
	fmt.Fprintf(&html, "<h2>%s</h2>", fill(t.GuestWelcome, replacements))
	fmt.Fprintf(&html, "<p>%s</p><p>%s</p>", fill(t.GuestDear, replacements), t.GuestThankYou)
	fmt.Fprintf(&html, `<div style="padding: 15px; background-color: #f0f7ff; border-radius: 5px;"><h3>%s</h3>`, t.GuestRoomInfo)
	fmt.Fprintf(&html, "<p><b>%s</b> %s<br><b>%s</b> %s</p></div>", t.GuestRoomNumber, event.RoomNumber, t.GuestRoomKey, event.RoomKeyNumber)
	fmt.Fprintf(&html, "<h3>%s</h3>", t.GuestRegDetails)
	fmt.Fprintf(&html, "<p><b>%s</b> %s<br><b>%s</b> %s<br><b>%s</b> %s<br><b>%s</b> %s</p>",
		t.GuestSubmissionID, event.SubmissionID,
		t.GuestCheckinDate, guest.CheckinDate,
		t.GuestCheckoutDate, guest.CheckoutDate,
		t.GuestRegTime, event.RegisteredAt)
	fmt.Fprintf(&html, "<p>%s</p><p>%s</p>", t.GuestHelp, t.GuestEnjoy)
	fmt.Fprintf(&html, `<p style="font-size: 12px; color: #777;">%s</p>`, t.GuestPrivacy)
	html.WriteString("</body></html>")

	return smtp.Mail{
		To:       []string{event.Email},
		Subject:  fill(t.GuestSubject, replacements),
		TextBody: text.String(),
		HTMLBody: html.String(),
	}
}
