// Package analytics models the write-once public page events: menu views
// and WhatsApp order clicks, keyed by the owning profile.
package analytics

import (
	"fmt"
	"time"
)

// EventKind is the type of one analytics event.
type EventKind string

const (
	EventView          EventKind = "VIEW"
	EventClickWhatsApp EventKind = "CLICK_WHATSAPP"
)

// ValidKinds enumerates the known event kinds.
var ValidKinds = map[EventKind]bool{
	EventView:          true,
	EventClickWhatsApp: true,
}

// IsValid reports whether k is a known event kind.
func (k EventKind) IsValid() bool {
	return ValidKinds[k]
}

// Event is one recorded public page interaction. Events reference the
// profile (not the user) so anonymous visitors can emit them.
type Event struct {
	profileID uint
	kind      EventKind
	createdAt time.Time
}

// NewEvent creates an event for the given profile.
func NewEvent(profileID uint, kind EventKind) (*Event, error) {
	if profileID == 0 {
		return nil, fmt.Errorf("profile ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid event kind: %s", kind)
	}
	return &Event{
		profileID: profileID,
		kind:      kind,
		createdAt: time.Now().UTC(),
	}, nil
}

func (e *Event) ProfileID() uint      { return e.profileID }
func (e *Event) Kind() EventKind      { return e.kind }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
