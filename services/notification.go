package services

import (
	"encoding/json"
	"log"

	"github.com/avelarde/bookdrift-be/config"
	"github.com/avelarde/bookdrift-be/models"
	"github.com/avelarde/bookdrift-be/websocket"
)

// NotificationService fans drift lifecycle events out to the affected users.
// Everything here is fire-and-forget: a dead hub or SMTP relay never fails
// the transition that triggered the notification.
type NotificationService struct {
	email *EmailService
}

func NewNotificationService() *NotificationService {
	return &NotificationService{
		email: NewEmailService(),
	}
}

// DriftRequested tells the gifter somebody wants one of their books.
func (ns *NotificationService) DriftRequested(drift *models.Drift, gifterEmail string) {
	event := ns.driftEvent(websocket.EventDriftRequested, drift)
	go func() {
		ns.push(drift.GifterID, event)
		ns.email.SendEmail(gifterEmail, "Someone wants one of your books", "drift/requested",
			map[string]interface{}{
				"GifterNickname":    drift.GifterNickname,
				"RequesterNickname": drift.RequesterNickname,
				"BookTitle":         drift.BookTitle,
			})
	}()
}

// DriftResolved tells both participants a drift left the pending state.
func (ns *NotificationService) DriftResolved(drift *models.Drift) {
	var name string
	switch drift.Status {
	case models.DriftRejected:
		name = websocket.EventDriftRejected
	case models.DriftRedrawn:
		name = websocket.EventDriftRedrawn
	case models.DriftSuccess:
		name = websocket.EventDriftMailed
	default:
		return
	}

	event := ns.driftEvent(name, drift)
	go func() {
		ns.push(drift.RequesterID, event)
		ns.push(drift.GifterID, event)
	}()
}

func (ns *NotificationService) driftEvent(name string, drift *models.Drift) websocket.DriftEvent {
	return websocket.DriftEvent{
		Event:             name,
		DriftID:           drift.ID,
		Status:            drift.Status.String(),
		BookTitle:         drift.BookTitle,
		RequesterNickname: drift.RequesterNickname,
		GifterNickname:    drift.GifterNickname,
	}
}

func (ns *NotificationService) push(userID uint, event websocket.DriftEvent) {
	if config.WSHub == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("[WS] marshal %s event: %v", event.Event, err)
		return
	}
	config.WSHub.NotifyUser(userID, payload)
}
