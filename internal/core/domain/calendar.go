package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventFCSale       EventType = "FC_SALE"
	EventTaskDeadline EventType = "TASK_DEADLINE"
	EventTradeDate    EventType = "TRADE_DATE"
	EventGeneral      EventType = "GENERAL"
)

// CalendarEvent is a dated platform event, optionally tied to a hub (FC sale
// dates, deadlines) or free-standing (trade settlement).
type CalendarEvent struct {
	ID         uuid.UUID  `json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	AssetHubID *uuid.UUID `json:"asset_hub_id"`
	Type       EventType  `json:"type"`
	Title      string     `json:"title"`
	Notes      string     `json:"notes"`
	StartAt    time.Time  `json:"start_at"`
	EndAt      *time.Time `json:"end_at"`
}
