package dto

import (
	"tm30/internal/domains/roomkey/model"
)

type Hotel struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Rooms   map[string]string `json:"rooms"`
}

type HotelList struct {
	Hotels []Hotel `json:"hotels"`
	Count  int     `json:"count"`
}

// NewHotelList groups enabled room rows by hotel, keeping the order the
// rows arrived in.
func NewHotelList(rows []model.RoomKey) HotelList {
	hotels := []Hotel{}
	index := map[string]int{}

	for _, row := range rows {
		pos, ok := index[row.HotelID]
		if !ok {
			hotels = append(hotels, Hotel{
				ID:      row.HotelID,
				Name:    row.HotelName,
				Enabled: true,
				Rooms:   map[string]string{},
			})
			pos = len(hotels) - 1
			index[row.HotelID] = pos
		}

		hotels[pos].Rooms[row.RoomNumber] = row.RoomKeyNumber
	}

	return HotelList{
		Hotels: hotels,
		Count:  len(hotels),
	}
}
