package websocket

// Event types for WebSocket messages
const (
	// Drift lifecycle events
	EventDriftRequested = "drift:requested"
	EventDriftRejected  = "drift:rejected"
	EventDriftRedrawn   = "drift:redrawn"
	EventDriftMailed    = "drift:mailed"
)

// DriftEvent represents a drift lifecycle event pushed to a participant
type DriftEvent struct {
	Event             string `json:"event"`
	DriftID           uint   `json:"drift_id"`
	Status            string `json:"status"`
	BookTitle         string `json:"book_title"`
	RequesterNickname string `json:"requester_nickname"`
	GifterNickname    string `json:"gifter_nickname"`
}
