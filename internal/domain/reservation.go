package domain

import "fmt"

// Reservation holds one room of a hotel for a customer. It has no dates or room
// number; it only accounts for one unit of the hotel's rooms_available counter.
type Reservation struct {
	ID         string `json:"reservation_id"`
	CustomerID string `json:"customer_id"`
	HotelID    string `json:"hotel_id"`
}

func (r Reservation) Summary() string {
	return fmt.Sprintf("Reservation: %s | Customer: %s | Hotel: %s", r.ID, r.CustomerID, r.HotelID)
}
