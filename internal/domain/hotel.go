package domain

import (
	"encoding/json"
	"fmt"
)

type Hotel struct {
	ID             string `json:"hotel_id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Rooms          int    `json:"rooms"`
	RoomsAvailable int    `json:"rooms_available"`
}

// HotelUpdate carries a partial modification; nil fields are left untouched.
type HotelUpdate struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Rooms    *int    `json:"rooms,omitempty"`
}

// UnmarshalJSON treats a record without rooms_available as fully available.
func (h *Hotel) UnmarshalJSON(b []byte) error {
	type plain Hotel
	var raw struct {
		plain
		RoomsAvailable *int `json:"rooms_available"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*h = Hotel(raw.plain)
	h.RoomsAvailable = h.Rooms
	if raw.RoomsAvailable != nil {
		h.RoomsAvailable = *raw.RoomsAvailable
	}
	return nil
}

func (h Hotel) Summary() string {
	return fmt.Sprintf("Hotel: %s | Location: %s | Rooms: %d/%d", h.Name, h.Location, h.RoomsAvailable, h.Rooms)
}
