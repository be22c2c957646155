package domain

import (
	"time"

	"github.com/google/uuid"
)

type ContactTag string

const (
	ContactBroker   ContactTag = "BROKER"
	ContactAttorney ContactTag = "ATTORNEY"
	ContactServicer ContactTag = "SERVICER"
	ContactVendor   ContactTag = "VENDOR"
	ContactOther    ContactTag = "OTHER"
)

// Contact is a CRM row for the external parties assets get worked with.
type Contact struct {
	ID        uuid.UUID  `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Name      string     `json:"name"`
	Firm      string     `json:"firm"`
	Tag       ContactTag `json:"tag"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	State     string     `json:"state"`
	Notes     string     `json:"notes"`
}
