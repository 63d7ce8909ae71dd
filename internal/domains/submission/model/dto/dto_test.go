package dto_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tm30/internal/domains/submission/model"
	"tm30/internal/domains/submission/model/dto"
)

func multipartBookingRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/submissions", body)
	request.Header.Set("Content-Type", writer.FormDataContentType())

	return request
}

func bookingFormFields() map[string]string {
	return map[string]string{
		"numberOfGuests": "1",
		"numberOfNights": "2",
		"email":          "anna@example.com",
		"hotelName":      "Phunaya Old Town",
		"roomNumber":     "101",
		"consent":        "true",
		"language":       "th",
		"firstName":      "Anna",
		"middleName":     "Maria",
		"lastName":       "Larsson",
		"gender":         "female",
		"passportNumber": "X1234567",
		"nationality":    "Swedish",
		"birthDate":      "12/05/1990",
		"checkinDate":    "01/09/2026",
		"checkoutDate":   "03/09/2026",
		"phoneNumber":    "+46701234567",
	}
}

func TestNewCreateSubmissionRequest(t *testing.T) {
	t.Run("single guest", func(t *testing.T) {
		req, err := dto.NewCreateSubmissionRequest(multipartBookingRequest(t, bookingFormFields()))

		require.NoError(t, err)
		assert.Equal(t, 1, req.NumberOfGuests)
		assert.Equal(t, 2, req.NumberOfNights)
		assert.Equal(t, "anna@example.com", req.Email)
		assert.Equal(t, "Phunaya Old Town", req.HotelName)
		assert.Equal(t, "101", req.RoomNumber)
		assert.True(t, req.Consent)
		assert.Equal(t, "th", req.Language)

		require.Len(t, req.Guests, 1)
		assert.Equal(t, "Anna", req.Guests[0].FirstName)
		assert.Equal(t, "Maria", req.Guests[0].MiddleName)
		assert.Equal(t, "01/09/2026", req.Guests[0].CheckinDate)
	})

	t.Run("second guest reads the suffixed fields", func(t *testing.T) {
		fields := bookingFormFields()
		fields["numberOfGuests"] = "2"
		fields["firstName2"] = "Erik"
		fields["lastName2"] = "Larsson"
		fields["gender2"] = "male"
		fields["passportNumber2"] = "X7654321"
		fields["nationality2"] = "Swedish"
		fields["birthDate2"] = "23/11/1988"
		fields["checkinDate2"] = "01/09/2026"
		fields["checkoutDate2"] = "03/09/2026"

		req, err := dto.NewCreateSubmissionRequest(multipartBookingRequest(t, fields))

		require.NoError(t, err)
		require.Len(t, req.Guests, 2)
		assert.Equal(t, "Erik", req.Guests[1].FirstName)
		assert.Equal(t, "X7654321", req.Guests[1].PassportNumber)
		assert.Empty(t, req.Guests[1].MiddleName)
		assert.Empty(t, req.Guests[1].PhoneNumber)
	})

	t.Run("missing language falls back to english", func(t *testing.T) {
		fields := bookingFormFields()
		delete(fields, "language")

		req, err := dto.NewCreateSubmissionRequest(multipartBookingRequest(t, fields))

		require.NoError(t, err)
		assert.Equal(t, "en", req.Language)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		fields := bookingFormFields()
		fields["checkinDate"] = "2026/09/01"

		_, err := dto.NewCreateSubmissionRequest(multipartBookingRequest(t, fields))

		require.Error(t, err)
	})

	t.Run("missing email is rejected", func(t *testing.T) {
		fields := bookingFormFields()
		delete(fields, "email")

		_, err := dto.NewCreateSubmissionRequest(multipartBookingRequest(t, fields))

		require.Error(t, err)
	})

	t.Run("non-multipart body is rejected", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/submissions", bytes.NewBufferString("{}"))
		request.Header.Set("Content-Type", "application/json")

		_, err := dto.NewCreateSubmissionRequest(request)

		require.Error(t, err)
	})
}

func TestNewSubmissionItem(t *testing.T) {
	middle := "Maria"
	submittedAt := time.Date(2026, time.September, 1, 14, 0, 0, 0, time.UTC)

	row := model.Submission{
		ID:             "6f1f9f1e-0001-4f3c-9a1e-000000000001",
		FirstName:      "Anna",
		MiddleName:     &middle,
		LastName:       "Larsson",
		Gender:         "female",
		PassportNumber: "X1234567",
		Nationality:    "Swedish",
		BirthDate:      "12/05/1990",
		CheckinDate:    "2026-09-01",
		CheckoutDate:   "03/09/2026",
		Email:          "anna@example.com",
		RoomNumber:     "101",
		HotelName:      "Phunaya Old Town",
		SubmittedAt:    submittedAt,
		Status:         "PENDING",
	}

	item := dto.NewSubmissionItem(row)

	assert.Equal(t, row.ID, item.ID)
	assert.Equal(t, &middle, item.MiddleName)

	// Legacy ISO dates come back out in the wire layout.
	assert.Equal(t, "01/09/2026", item.CheckinDate)
	assert.Equal(t, "03/09/2026", item.CheckoutDate)
	assert.Equal(t, "12/05/1990", item.BirthDate)

	assert.Equal(t, submittedAt.Format(time.RFC3339), item.SubmittedAt)
	assert.Equal(t, "PENDING", item.Status)
	assert.Nil(t, item.PhoneNumber)
}
