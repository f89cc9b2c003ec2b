package form

import (
	"strings"
	"time"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

// DefaultDescription replaces an empty event description.
const DefaultDescription = "Sem descrição"

// EventForm is the create/edit form of the events screen.
type EventForm struct {
	ID          int64 // 0 when creating
	EventType   string
	Description string
	EventDate   string
	RiskLevel   string
	Latitude    string
	Longitude   string
}

// NewEventForm returns a blank form defaulting to low risk.
func NewEventForm() *EventForm {
	return &EventForm{
		RiskLevel: string(types.RiskLow),
		Latitude:  "0",
		Longitude: "0",
	}
}

// EditEventForm pre-populates the form from an existing event.
func EditEventForm(e types.Event) *EventForm {
	return &EventForm{
		ID:          e.ID,
		EventType:   e.EventType,
		Description: e.Description,
		EventDate:   e.EventDate.String(),
		RiskLevel:   string(e.RiskLevel),
		Latitude:    FormatFloat(e.Latitude),
		Longitude:   FormatFloat(e.Longitude),
	}
}

// Editing reports whether the form updates an existing event.
func (f *EventForm) Editing() bool { return f.ID != 0 }

// Payload validates the form. now fills an unset event date.
func (f *EventForm) Payload(now time.Time) (types.EventRequest, error) {
	var req types.EventRequest

	req.EventType = strings.TrimSpace(f.EventType)
	if req.EventType == "" {
		return req, apierrors.Required("eventType")
	}

	req.Description = strings.TrimSpace(f.Description)
	if req.Description == "" {
		req.Description = DefaultDescription
	}

	risk := types.RiskLow
	if strings.TrimSpace(f.RiskLevel) != "" {
		r, err := types.ParseRiskLevel(f.RiskLevel)
		if err != nil {
			return req, &apierrors.ValidationError{Field: "riskLevel", Reason: "must be Low, Medium or High"}
		}
		risk = r
	}
	req.RiskLevel = risk

	date, err := ParseDateTime("eventDate", f.EventDate, now)
	if err != nil {
		return req, err
	}
	req.EventDate = date

	if req.Latitude, err = ParseLatitude(f.Latitude); err != nil {
		return req, err
	}
	if req.Longitude, err = ParseLongitude(f.Longitude); err != nil {
		return req, err
	}
	return req, nil
}
