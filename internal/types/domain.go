package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// RiskLevel grades an Event.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskLevels lists the accepted values in display order.
var RiskLevels = []RiskLevel{RiskHigh, RiskMedium, RiskLow}

// ParseRiskLevel accepts any casing ("HIGH", "high") and returns the
// canonical value.
func ParseRiskLevel(s string) (RiskLevel, error) {
	for _, r := range RiskLevels {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown risk level %q", s)
}

// Label returns the Portuguese label shown by the app.
func (r RiskLevel) Label() string {
	switch r {
	case RiskHigh:
		return "Alto"
	case RiskMedium:
		return "Médio"
	case RiskLow:
		return "Baixo"
	default:
		return string(r)
	}
}

// Event is an occurrence (flood, landslide, ...) registered by the civil defence.
type Event struct {
	ID          int64         `json:"id"`
	EventType   string        `json:"eventType"`
	Description string        `json:"description"`
	EventDate   LocalDateTime `json:"eventDate"`
	RiskLevel   RiskLevel     `json:"riskLevel"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
}

// EventType is reference data for the event form dropdown.
type EventType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Alert is a message broadcast about an Event.
type Alert struct {
	ID      int64 `json:"id"`
	EventID int64 `json:"eventId"`
	// Event is a server rendered label of the parent event.
	Event   string        `json:"event,omitempty"`
	Message string        `json:"message"`
	SentAt  LocalDateTime `json:"sentAt"`
}

// SafePlace is a shelter.
type SafePlace struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Capacity  int     `json:"capacity"`
}

// Resource is a stock of one ResourceType held at a SafePlace.
type Resource struct {
	ID                int64  `json:"id"`
	ResourceTypeID    int64  `json:"resourceTypeId"`
	ResourceTypeName  string `json:"resourceTypeName,omitempty"`
	AvailableQuantity int    `json:"availableQuantity"`
	SafePlaceID       int64  `json:"safePlaceId"`
}

// UnmarshalJSON also takes the type name from "resourceType", the key the
// production API uses in resource listings.
func (r *Resource) UnmarshalJSON(b []byte) error {
	type plain Resource
	var aux struct {
		plain
		ResourceType json.RawMessage `json:"resourceType"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = Resource(aux.plain)
	if r.ResourceTypeName == "" && len(aux.ResourceType) > 0 {
		var name string
		if json.Unmarshal(aux.ResourceType, &name) == nil {
			r.ResourceTypeName = name
		}
	}
	return nil
}

// ResourceType is read-only reference data.
type ResourceType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User is the registration record echoed by the server.
type User struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
