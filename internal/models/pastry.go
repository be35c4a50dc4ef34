package models

import "time"

// MaxPastryItems caps how many pastries a single pickup can hold.
const MaxPastryItems = 15

type PastryReservation struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	Items     []string  `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
}
