package saferoute

import (
	"context"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/api"
)

// --------------------------------------------------------------------
// Event operations - delegated to internal/api
// --------------------------------------------------------------------

// EventRepository maps Event operations onto the API.
type EventRepository struct{ r api.Requester }

// List returns all events.
func (e *EventRepository) List(ctx context.Context) ([]Event, error) { return api.ListEvents(ctx, e.r) }

// Get retrieves an event by id.
func (e *EventRepository) Get(ctx context.Context, id int64) (*Event, error) {
	return api.GetEvent(ctx, e.r, id)
}

// Create registers a new event.
func (e *EventRepository) Create(ctx context.Context, req EventRequest) (*Event, error) {
	return api.CreateEvent(ctx, e.r, req)
}

// Update replaces the event with the given id.
func (e *EventRepository) Update(ctx context.Context, id int64, req EventRequest) (*Event, error) {
	return api.UpdateEvent(ctx, e.r, id, req)
}

// Delete removes an event.
func (e *EventRepository) Delete(ctx context.Context, id int64) error {
	return api.DeleteEvent(ctx, e.r, id)
}

// ListTypes returns the event type reference data.
func (e *EventRepository) ListTypes(ctx context.Context) ([]EventType, error) {
	return api.ListEventTypes(ctx, e.r)
}

// ListOptions returns the events offered when creating an alert.
func (e *EventRepository) ListOptions(ctx context.Context) ([]Event, error) {
	return api.ListEventOptions(ctx, e.r)
}

// --------------------------------------------------------------------
// Alert operations
// --------------------------------------------------------------------

// AlertRepository maps Alert operations onto the API.
type AlertRepository struct{ r api.Requester }

// List returns all alerts.
func (a *AlertRepository) List(ctx context.Context) ([]Alert, error) { return api.ListAlerts(ctx, a.r) }

// Get retrieves an alert by id.
func (a *AlertRepository) Get(ctx context.Context, id int64) (*Alert, error) {
	return api.GetAlert(ctx, a.r, id)
}

// Create posts a new alert.
func (a *AlertRepository) Create(ctx context.Context, req AlertRequest) (*Alert, error) {
	return api.CreateAlert(ctx, a.r, req)
}

// Delete removes one alert.
func (a *AlertRepository) Delete(ctx context.Context, id int64) error {
	return api.DeleteAlert(ctx, a.r, id)
}

// DeleteOlderThan removes every alert older than days in a single
// server-side operation. There is no dry run.
func (a *AlertRepository) DeleteOlderThan(ctx context.Context, days int) error {
	return api.DeleteAlertsOlderThan(ctx, a.r, days)
}

// --------------------------------------------------------------------
// SafePlace operations
// --------------------------------------------------------------------

// SafePlaceRepository maps SafePlace operations onto the API.
type SafePlaceRepository struct{ r api.Requester }

// List returns all safe places.
func (s *SafePlaceRepository) List(ctx context.Context) ([]SafePlace, error) {
	return api.ListSafePlaces(ctx, s.r)
}

// Get retrieves a safe place by id.
func (s *SafePlaceRepository) Get(ctx context.Context, id int64) (*SafePlace, error) {
	return api.GetSafePlace(ctx, s.r, id)
}

// Create registers a safe place.
func (s *SafePlaceRepository) Create(ctx context.Context, req SafePlaceRequest) (*SafePlace, error) {
	return api.CreateSafePlace(ctx, s.r, req)
}

// Update replaces a safe place.
func (s *SafePlaceRepository) Update(ctx context.Context, id int64, req SafePlaceRequest) (*SafePlace, error) {
	return api.UpdateSafePlace(ctx, s.r, id, req)
}

// Delete removes a safe place.
func (s *SafePlaceRepository) Delete(ctx context.Context, id int64) error {
	return api.DeleteSafePlace(ctx, s.r, id)
}

// --------------------------------------------------------------------
// Resource operations
// --------------------------------------------------------------------

// ResourceRepository maps Resource operations onto the API. There is no
// global listing; resources are always read per safe place.
type ResourceRepository struct{ r api.Requester }

// ListBySafePlace returns the resources held at one safe place.
func (s *ResourceRepository) ListBySafePlace(ctx context.Context, safePlaceID int64) ([]Resource, error) {
	return api.ListResourcesBySafePlace(ctx, s.r, safePlaceID)
}

// Get retrieves a resource by id.
func (s *ResourceRepository) Get(ctx context.Context, id int64) (*Resource, error) {
	return api.GetResource(ctx, s.r, id)
}

// Create adds a resource.
func (s *ResourceRepository) Create(ctx context.Context, req ResourceRequest) (*Resource, error) {
	return api.CreateResource(ctx, s.r, req)
}

// Update replaces a resource.
func (s *ResourceRepository) Update(ctx context.Context, id int64, req ResourceRequest) (*Resource, error) {
	return api.UpdateResource(ctx, s.r, id, req)
}

// Delete removes a resource.
func (s *ResourceRepository) Delete(ctx context.Context, id int64) error {
	return api.DeleteResource(ctx, s.r, id)
}

// ResourceTypeRepository reads resource type reference data.
type ResourceTypeRepository struct{ r api.Requester }

// List returns all resource types.
func (s *ResourceTypeRepository) List(ctx context.Context) ([]ResourceType, error) {
	return api.ListResourceTypes(ctx, s.r)
}

// --------------------------------------------------------------------
// User operations
// --------------------------------------------------------------------

// UserRepository backs login and registration.
type UserRepository struct{ r api.Requester }

// Login checks credentials; a nil error means the server accepted them.
func (u *UserRepository) Login(ctx context.Context, email, password string) error {
	return api.Login(ctx, u.r, LoginRequest{Email: email, Password: password})
}

// Register creates an account.
func (u *UserRepository) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	return api.RegisterUser(ctx, u.r, req)
}
