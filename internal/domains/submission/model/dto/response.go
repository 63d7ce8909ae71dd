package dto

import (
	"time"

	"tm30/internal/domains/submission/model"
	"tm30/shared/dateform"
)

type CreateSubmissionResponse struct {
	Message        string   `json:"message"`
	SubmissionID   string   `json:"submissionId"`
	SubmissionIDs  []string `json:"submissionIds"`
	NumberOfGuests int      `json:"numberOfGuests"`
	NumberOfNights int      `json:"numberOfNights"`
	RoomKeyNumber  string   `json:"roomKeyNumber"`
	EmailStatus    string   `json:"emailStatus"`
	Language       string   `json:"language"`
}

// SubmissionItem mirrors the stored row. Keys stay snake_case because the
// dashboard consumes them that way, with the stay dates rendered as
// dd/mm/yyyy text.
type SubmissionItem struct {
	ID               string  `json:"id"`
	FirstName        string  `json:"first_name"`
	MiddleName       *string `json:"middle_name"`
	LastName         string  `json:"last_name"`
	Gender           string  `json:"gender"`
	PassportNumber   string  `json:"passport_number"`
	Nationality      string  `json:"nationality"`
	BirthDate        string  `json:"birth_date"`
	CheckinDate      string  `json:"checkin_date"`
	CheckoutDate     string  `json:"checkout_date"`
	PhoneNumber      *string `json:"phone_number"`
	Email            string  `json:"email"`
	RoomNumber       string  `json:"room_number"`
	PassportPhotoURL *string `json:"passport_photo_url"`
	HotelName        string  `json:"hotel_name"`
	SubmittedAt      string  `json:"submitted_at"`
	Status           string  `json:"status"`
	Notes            string  `json:"notes"`
}

func NewSubmissionItem(row model.Submission) SubmissionItem {
	return SubmissionItem{
		ID:               row.ID,
		FirstName:        row.FirstName,
		MiddleName:       row.MiddleName,
		LastName:         row.LastName,
		Gender:           row.Gender,
		PassportNumber:   row.PassportNumber,
		Nationality:      row.Nationality,
		BirthDate:        dateform.Reformat(row.BirthDate),
		CheckinDate:      dateform.Reformat(row.CheckinDate),
		CheckoutDate:     dateform.Reformat(row.CheckoutDate),
		PhoneNumber:      row.PhoneNumber,
		Email:            row.Email,
		RoomNumber:       row.RoomNumber,
		PassportPhotoURL: row.PassportPhotoURL,
		HotelName:        row.HotelName,
		SubmittedAt:      row.SubmittedAt.Format(time.RFC3339),
		Status:           row.Status,
		Notes:            row.Notes,
	}
}

type ListSubmissionsResponse struct {
	Submissions []SubmissionItem `json:"submissions"`
	Count       int              `json:"count"`
}

type UpdatedSubmission struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Status    string `json:"status"`
}

type UpdateStatusResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    UpdatedSubmission `json:"data"`
}

type DeletedRecord struct {
	ID          string    `json:"id"`
	GuestName   string    `json:"guestName"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type PurgeResponse struct {
	Message        string          `json:"message"`
	RecordsDeleted int             `json:"recordsDeleted"`
	DeletedRecords []DeletedRecord `json:"deletedRecords,omitempty"`
	Success        bool            `json:"success"`
}

type PreviewRecord struct {
	ID          string    `json:"id"`
	GuestName   string    `json:"guestName"`
	SubmittedAt time.Time `json:"submittedAt"`
	DaysOld     int       `json:"daysOld"`
}

type PurgePreviewResponse struct {
	Message         string          `json:"message"`
	RecordCount     int             `json:"recordCount"`
	CutoffDate      time.Time       `json:"cutoffDate"`
	RecordsToDelete []PreviewRecord `json:"recordsToDelete"`
	Success         bool            `json:"success"`
}

type GlobalDeletedRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type GlobalPurgeResponse struct {
	Success        bool                  `json:"success"`
	Message        string                `json:"message"`
	DeletedCount   int                   `json:"deletedCount"`
	CutoffDate     time.Time             `json:"cutoffDate"`
	DeletedRecords []GlobalDeletedRecord `json:"deletedRecords,omitempty"`
}

type GlobalPreviewRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SubmittedAt time.Time `json:"submittedAt"`
	DaysOld     int       `json:"daysOld"`
}

type GlobalPreviewResponse struct {
	Success              bool                  `json:"success"`
	DryRun               bool                  `json:"dryRun"`
	CutoffDate           time.Time             `json:"cutoffDate"`
	TotalRecordsToDelete int                   `json:"totalRecordsToDelete"`
	PreviewRecords       []GlobalPreviewRecord `json:"previewRecords"`
	Message              string                `json:"message"`
}

type SignedPhotoURLResponse struct {
	Success   bool      `json:"success"`
	SignedURL string    `json:"signedUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ExportFile is a rendered spreadsheet ready to stream to the client.
type ExportFile struct {
	FileName string
	Content  []byte
}
