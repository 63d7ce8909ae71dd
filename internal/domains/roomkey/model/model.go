package model

const (
	TableName  = "hotel_room_keys"
	EntityName = "room_key"

	FieldHotelID       = "hotel_id"
	FieldHotelName     = "hotel_name"
	FieldRoomNumber    = "room_number"
	FieldRoomKeyNumber = "room_key_number"
	FieldEnabled       = "enabled"
)

// WellKnownHotelIDs maps the hotel names the public form sends to their
// registered hotel codes. Unknown names fall back to a database lookup.
var WellKnownHotelIDs = map[string]string{
	"Phunaya Old Town":       "P256",
	"The KPI Plus Residence": "K123",
	"Bangkok Grand Hotel":    "B427",
}

// RoomKey is one bookable room. enabled=false means currently occupied.
type RoomKey struct {
	HotelID       string `db:"hotel_id"`
	HotelName     string `db:"hotel_name"`
	RoomNumber    string `db:"room_number"`
	RoomKeyNumber string `db:"room_key_number"`
	Enabled       bool   `db:"enabled"`
}
