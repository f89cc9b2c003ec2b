package api

import (
	"context"
	"net/http"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

const eventsPath = "/events"

// ListEvents returns all events. GET /events
func ListEvents(ctx context.Context, r Requester) ([]types.Event, error) {
	var l types.List[types.Event]
	if err := r.Do(ctx, http.MethodGet, eventsPath, nil, &l); err != nil {
		return nil, err
	}
	return l.Items(), nil
}

// ListEventOptions returns the picker source used when creating alerts. GET /events/list
func ListEventOptions(ctx context.Context, r Requester) ([]types.Event, error) {
	var l types.List[types.Event]
	if err := r.Do(ctx, http.MethodGet, eventsPath+"/list", nil, &l); err != nil {
		return nil, err
	}
	return l.Items(), nil
}

// GetEvent retrieves one event. GET /events/{id}
func GetEvent(ctx context.Context, r Requester, id int64) (*types.Event, error) {
	if err := validateID(id, "eventId"); err != nil {
		return nil, err
	}
	var e types.Event
	if err := r.Do(ctx, http.MethodGet, itemPath(eventsPath, id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEvent registers a new event. POST /events
func CreateEvent(ctx context.Context, r Requester, req types.EventRequest) (*types.Event, error) {
	var e types.Event
	if err := r.Do(ctx, http.MethodPost, eventsPath, req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEvent replaces an event. PUT /events/{id}
func UpdateEvent(ctx context.Context, r Requester, id int64, req types.EventRequest) (*types.Event, error) {
	if err := validateID(id, "eventId"); err != nil {
		return nil, err
	}
	var e types.Event
	if err := r.Do(ctx, http.MethodPut, itemPath(eventsPath, id), req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteEvent removes an event. DELETE /events/{id}
func DeleteEvent(ctx context.Context, r Requester, id int64) error {
	if err := validateID(id, "eventId"); err != nil {
		return err
	}
	return r.Do(ctx, http.MethodDelete, itemPath(eventsPath, id), nil, nil)
}

// ListEventTypes returns the event type reference data. GET /event-types/list
func ListEventTypes(ctx context.Context, r Requester) ([]types.EventType, error) {
	var l types.List[types.EventType]
	if err := r.Do(ctx, http.MethodGet, "/event-types/list", nil, &l); err != nil {
		return nil, err
	}
	return l.Items(), nil
}
