package model

import "time"

const (
	TableName  = "tm30_submissions"
	EntityName = "submission"

	FieldID               = "id"
	FieldFirstName        = "first_name"
	FieldMiddleName       = "middle_name"
	FieldLastName         = "last_name"
	FieldGender           = "gender"
	FieldPassportNumber   = "passport_number"
	FieldNationality      = "nationality"
	FieldBirthDate        = "birth_date"
	FieldCheckinDate      = "checkin_date"
	FieldCheckoutDate     = "checkout_date"
	FieldPhoneNumber      = "phone_number"
	FieldPassportPhotoURL = "passport_photo_url"
	FieldHotelName        = "hotel_name"
	FieldEmail            = "email"
	FieldRoomNumber       = "room_number"
	FieldNotes            = "notes"
	FieldStatus           = "status"
	FieldSubmittedAt      = "submitted_at"
	FieldUpdatedAt        = "updated_at"
)

// Submission is one registered guest for one stay. A two-guest booking
// produces two rows sharing room, hotel and email. The birth/check-in/
// check-out dates are stored as dd/mm/yyyy text, matching what the public
// form sends and what the export renders.
type Submission struct {
	ID               string    `db:"id"`
	FirstName        string    `db:"first_name"`
	MiddleName       *string   `db:"middle_name"`
	LastName         string    `db:"last_name"`
	Gender           string    `db:"gender"`
	PassportNumber   string    `db:"passport_number"`
	Nationality      string    `db:"nationality"`
	BirthDate        string    `db:"birth_date"`
	CheckinDate      string    `db:"checkin_date"`
	CheckoutDate     string    `db:"checkout_date"`
	PhoneNumber      *string   `db:"phone_number"`
	PassportPhotoURL *string   `db:"passport_photo_url"`
	HotelName        string    `db:"hotel_name"`
	Email            string    `db:"email"`
	RoomNumber       string    `db:"room_number"`
	Notes            string    `db:"notes"`
	Status           string    `db:"status"`
	SubmittedAt      time.Time `db:"submitted_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (s *Submission) GuestName() string {
	return s.FirstName + " " + s.LastName
}
