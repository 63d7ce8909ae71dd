package dto

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"tm30/shared/constant"
	"tm30/shared/failure"
	"tm30/shared/validator"
)

type Guest struct {
	FirstName      string `validate:"required"`
	MiddleName     string
	LastName       string `validate:"required"`
	Gender         string `validate:"required"`
	PassportNumber string `validate:"required"`
	Nationality    string `validate:"required"`
	BirthDate      string `validate:"required,dateform"`
	CheckinDate    string `validate:"required,dateform"`
	CheckoutDate   string `validate:"required,dateform"`
	PhoneNumber    string
	Photo          *multipart.FileHeader `validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=10"`
}

type CreateSubmissionRequest struct {
	NumberOfGuests int    `validate:"required,min=1,max=2"`
	NumberOfNights int    `validate:"required,min=1"`
	Email          string `validate:"required,email"`
	HotelName      string `validate:"required"`
	RoomNumber     string `validate:"required"`
	Consent        bool
	Language       string
	Guests         []Guest `validate:"required,min=1,max=2,dive"`
}

// NewCreateSubmissionRequest parses the multipart booking form. The second
// guest's fields carry a "2" suffix and are only read when the form asks
// for two guests.
func NewCreateSubmissionRequest(r *http.Request) (CreateSubmissionRequest, error) {
	var req CreateSubmissionRequest

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, failure.BadRequestFromString("failed to parse multipart form") //nolint:wrapcheck
	}

	guests, _ := strconv.Atoi(r.FormValue("numberOfGuests"))
	nights, _ := strconv.Atoi(r.FormValue("numberOfNights"))

	req = CreateSubmissionRequest{
		NumberOfGuests: guests,
		NumberOfNights: nights,
		Email:          r.FormValue("email"),
		HotelName:      r.FormValue("hotelName"),
		RoomNumber:     r.FormValue("roomNumber"),
		Consent:        r.FormValue("consent") == "true",
		Language:       r.FormValue("language"),
	}

	if req.Language == constant.Empty {
		req.Language = "en"
	}

	req.Guests = append(req.Guests, guestFromForm(r, constant.Empty))
	if req.NumberOfGuests == 2 {
		req.Guests = append(req.Guests, guestFromForm(r, "2"))
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return req, err //nolint:wrapcheck
	}

	return req, nil
}

func guestFromForm(r *http.Request, suffix string) Guest {
	var photo *multipart.FileHeader

	if r.MultipartForm != nil {
		if headers := r.MultipartForm.File["passportPhoto"+suffix]; len(headers) > 0 {
			photo = headers[0]
		}
	}

	return Guest{
		FirstName:      r.FormValue("firstName" + suffix),
		MiddleName:     r.FormValue("middleName" + suffix),
		LastName:       r.FormValue("lastName" + suffix),
		Gender:         r.FormValue("gender" + suffix),
		PassportNumber: r.FormValue("passportNumber" + suffix),
		Nationality:    r.FormValue("nationality" + suffix),
		BirthDate:      r.FormValue("birthDate" + suffix),
		CheckinDate:    r.FormValue("checkinDate" + suffix),
		CheckoutDate:   r.FormValue("checkoutDate" + suffix),
		PhoneNumber:    r.FormValue("phoneNumber" + suffix),
		Photo:          photo,
	}
}

type UpdateStatusRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=PENDING REPORTED CANCELED"`
}
