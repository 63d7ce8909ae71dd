package notification

// GuestInfo carries the per-guest fields the confirmation mails render.
type GuestInfo struct {
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName,omitempty"`
	LastName       string `json:"lastName"`
	PassportNumber string `json:"passportNumber"`
	Nationality    string `json:"nationality"`
	BirthDate      string `json:"birthDate"`
	CheckinDate    string `json:"checkinDate"`
	CheckoutDate   string `json:"checkoutDate"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
}

// BookingRegistered is published after a booking has been fully persisted.
// The mail worker turns it into the admin summary and the guest
// confirmation.
type BookingRegistered struct {
	SubmissionID   string      `json:"submissionId"`
	SubmissionIDs  []string    `json:"submissionIds"`
	HotelID        string      `json:"hotelId"`
	HotelName      string      `json:"hotelName"`
	RoomNumber     string      `json:"roomNumber"`
	RoomKeyNumber  string      `json:"roomKeyNumber"`
	Email          string      `json:"email"`
	Language       string      `json:"language"`
	NumberOfGuests int         `json:"numberOfGuests"`
	NumberOfNights int         `json:"numberOfNights"`
	RegisteredAt   string      `json:"registeredAt"`
	Guests         []GuestInfo `json:"guests"`
}
