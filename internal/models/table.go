package models

import "time"

const (
	MinPartySize = 1
	MaxPartySize = 30
)

// TableReservation starts pending with Confirmed false. A staff decision sets
// Confirmed and notifies the customer.
type TableReservation struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	PartySize int       `json:"partySize"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"createdAt"`
}
