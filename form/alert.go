package form

import (
	"strings"
	"time"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

// AlertForm is the create form of the alerts screen. Alerts are never
// edited, only created and deleted.
type AlertForm struct {
	EventID int64 // chosen from the event picker
	Message string
	SentAt  string
}

// NewAlertForm returns a form whose sentAt is preset to now.
func NewAlertForm(now time.Time) *AlertForm {
	return &AlertForm{SentAt: FormatDateTime(now)}
}

// Editing is always false: alerts cannot be edited.
func (f *AlertForm) Editing() bool { return false }

// Payload validates the form. now fills an unset sentAt.
func (f *AlertForm) Payload(now time.Time) (types.AlertRequest, error) {
	var req types.AlertRequest
	if f.EventID <= 0 {
		return req, apierrors.Required("eventId")
	}
	req.EventID = f.EventID

	req.Message = strings.TrimSpace(f.Message)
	if req.Message == "" {
		return req, apierrors.Required("message")
	}

	sentAt, err := ParseDateTime("sentAt", f.SentAt, now)
	if err != nil {
		return req, err
	}
	req.SentAt = sentAt
	return req, nil
}
