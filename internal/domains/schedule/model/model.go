package model

import "time"

const (
	TableName  = "room_availability_schedule"
	EntityName = "room_schedule"

	FieldHotelID      = "hotel_id"
	FieldRoomNumber   = "room_number"
	FieldReEnableDate = "re_enable_date"
	FieldProcessed    = "processed"
	FieldCreatedAt    = "created_at"
)

// Schedule records when a disabled room becomes available again. One row
// per room, the latest registration wins.
type Schedule struct {
	HotelID      string    `db:"hotel_id"`
	RoomNumber   string    `db:"room_number"`
	ReEnableDate time.Time `db:"re_enable_date"`
	Processed    bool      `db:"processed"`
	CreatedAt    time.Time `db:"created_at"`
}
