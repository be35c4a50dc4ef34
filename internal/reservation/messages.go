package reservation

import (
	"fmt"

	"bakeryBooker/internal/models"
	"bakeryBooker/internal/notifier"
)

const (
	subjectConfirmed = "Conferma prenotazione tavolo"
	subjectDeclined  = "Prenotazione rifiutata"
)

// StatusMessage builds the email telling the customer about the staff decision.
func StatusMessage(r *models.TableReservation) notifier.Message {
	if r.Confirmed {
		return notifier.Message{
			To:      r.Email,
			Subject: subjectConfirmed,
			Body: fmt.Sprintf(
				"Ciao %s, la tua prenotazione per il %s alle %s per %d persone è stata CONFERMATA.",
				r.Name, r.Date, r.TimeSlot, r.PartySize,
			),
		}
	}

	return notifier.Message{
		To:      r.Email,
		Subject: subjectDeclined,
		Body: fmt.Sprintf(
			"Ciao %s, purtroppo la tua prenotazione per il %s alle %s non può essere accettata. Ti invitiamo a riprovare con un altro orario.",
			r.Name, r.Date, r.TimeSlot,
		),
	}
}
