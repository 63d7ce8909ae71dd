package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tm30/internal/notification"
)

func bookingEvent() notification.BookingRegistered {
	return notification.BookingRegistered{
		SubmissionID:   "6f1f9f1e-0001-4f3c-9a1e-000000000001",
		SubmissionIDs:  []string{"6f1f9f1e-0001-4f3c-9a1e-000000000001", "6f1f9f1e-0001-4f3c-9a1e-000000000002"},
		HotelID:        "P256",
		HotelName:      "Phunaya Old Town",
		RoomNumber:     "101",
		RoomKeyNumber:  "K-101",
		Email:          "anna@example.com",
		Language:       "en",
		NumberOfGuests: 2,
		NumberOfNights: 2,
		RegisteredAt:   "01/09/2026, 14:00:00",
		Guests: []notification.GuestInfo{
			{
				FirstName:      "Anna",
				MiddleName:     "Maria",
				LastName:       "Larsson",
				PassportNumber: "X1234567",
				Nationality:    "Swedish",
				BirthDate:      "12/05/1990",
				CheckinDate:    "01/09/2026",
				CheckoutDate:   "03/09/2026",
				PhoneNumber:    "+46701234567",
			},
			{
				FirstName:      "Erik",
				LastName:       "Larsson",
				PassportNumber: "X7654321",
				Nationality:    "Swedish",
				BirthDate:      "23/11/1988",
				CheckinDate:    "01/09/2026",
				CheckoutDate:   "03/09/2026",
			},
		},
	}
}

func TestTranslationFor(t *testing.T) {
	assert.Equal(t, "Your Room Information", notification.TranslationFor("en").GuestRoomInfo)
	assert.Equal(t, "หมายเลขห้อง:", notification.TranslationFor("th").GuestRoomNumber)

	// Anything unknown falls back to English.
	assert.Equal(t, notification.TranslationFor("en"), notification.TranslationFor("fr"))
	assert.Equal(t, notification.TranslationFor("en"), notification.TranslationFor(""))
}

func TestAdminMail(t *testing.T) {
	mail := notification.AdminMail("reception@example.com", bookingEvent())

	assert.Equal(t, []string{"reception@example.com"}, mail.To)
	assert.Equal(t, "New TM30 Submissions - 2 Guests - ID: 6f1f9f1e-0001-4f3c-9a1e-000000000001", mail.Subject)

	assert.Contains(t, mail.TextBody, "Hotel: Phunaya Old Town")
	assert.Contains(t, mail.TextBody, "Name: Anna Maria Larsson")
	assert.Contains(t, mail.TextBody, "Phone: +46701234567")
	assert.Contains(t, mail.TextBody, "Name: Erik Larsson")
	assert.Contains(t, mail.TextBody, "Phone: Not provided")
	assert.Contains(t, mail.TextBody, "Submission IDs: 6f1f9f1e-0001-4f3c-9a1e-000000000001, 6f1f9f1e-0001-4f3c-9a1e-000000000002")

	assert.Contains(t, mail.HTMLBody, "<h4>Guest 2 Information</h4>")
	assert.Contains(t, mail.HTMLBody, "<b>Room Number:</b> 101")
}

func TestAdminMail_SingleGuest(t *testing.T) {
	event := bookingEvent()
	event.NumberOfGuests = 1
	event.Guests = event.Guests[:1]
	event.SubmissionIDs = event.SubmissionIDs[:1]

	mail := notification.AdminMail("reception@example.com", event)

	assert.Equal(t, "New TM30 Submission - 1 Guest - ID: 6f1f9f1e-0001-4f3c-9a1e-000000000001", mail.Subject)
	assert.Contains(t, mail.TextBody, "New TM30 Guest Registration\n")
}

func TestGuestMail(t *testing.T) {
	t.Run("english rendering fills the placeholders", func(t *testing.T) {
		mail := notification.GuestMail(bookingEvent())

		assert.Equal(t, []string{"anna@example.com"}, mail.To)
		assert.Equal(t, "Welcome to Phunaya Old Town - Room Key Information", mail.Subject)

		assert.Contains(t, mail.TextBody, "Dear Anna Larsson,")
		assert.Contains(t, mail.TextBody, "Room Key Code: K-101")
		assert.Contains(t, mail.TextBody, "Check-out Date: 03/09/2026")
		assert.NotContains(t, mail.TextBody, "{{")

		assert.Contains(t, mail.HTMLBody, "<h2>Welcome to Phunaya Old Town!</h2>")
		assert.NotContains(t, mail.HTMLBody, "{{")
	})

	t.Run("localized rendering keeps the room key", func(t *testing.T) {
		event := bookingEvent()
		event.Language = "th"

		mail := notification.GuestMail(event)

		assert.Contains(t, mail.Subject, "Phunaya Old Town")
		assert.Contains(t, mail.TextBody, "หมายเลขห้อง: 101")
		assert.Contains(t, mail.TextBody, "K-101")
	})
}
