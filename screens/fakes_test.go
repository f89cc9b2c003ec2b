package screens

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/session"
)

var fixedNow = time.Date(2024, 5, 2, 9, 30, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

type allowAll struct{}

func (allowAll) Login(context.Context, string, string) error { return nil }
func (allowAll) Register(context.Context, types.RegisterRequest) (*types.User, error) {
	return &types.User{}, nil
}

func openSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.NewGate(allowAll{}).Login(context.Background(), "ana@example.com", "Secret1!")
	require.NoError(t, err)
	return s
}

func yes(string) bool { return true }
func no(string) bool  { return false }

var errServer = &apierrors.HTTPError{Op: "test", Status: 500}

// gate blocks a fake call until released, so tests can observe Busy.
type gate struct {
	entered chan struct{}
	release chan struct{}
}

func newGate() *gate {
	return &gate{entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gate) wait() {
	if g == nil {
		return
	}
	close(g.entered)
	<-g.release
}

// fakeEvents is an in-memory EventRepository.
type fakeEvents struct {
	mu        sync.Mutex
	items     []types.Event
	nextID    int64
	listCalls int
	listErr   error
	createErr error
	deleteErr error
	typesErr  error
	deleted   []int64
	block     *gate
}

func (f *fakeEvents) List(context.Context) ([]types.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]types.Event(nil), f.items...), nil
}

func (f *fakeEvents) ListOptions(ctx context.Context) ([]types.Event, error) { return f.List(ctx) }

func (f *fakeEvents) Create(_ context.Context, req types.EventRequest) (*types.Event, error) {
	f.block.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	ev := types.Event{ID: f.nextID, EventType: req.EventType, Description: req.Description,
		EventDate: req.EventDate, RiskLevel: req.RiskLevel, Latitude: req.Latitude, Longitude: req.Longitude}
	f.items = append(f.items, ev)
	return &ev, nil
}

func (f *fakeEvents) Update(_ context.Context, id int64, req types.EventRequest) (*types.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].EventType = req.EventType
			f.items[i].Description = req.Description
			f.items[i].RiskLevel = req.RiskLevel
			return &f.items[i], nil
		}
	}
	return nil, &apierrors.HTTPError{Op: "update event", Status: 404}
}

func (f *fakeEvents) Delete(_ context.Context, id int64) error {
	f.block.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeEvents) ListTypes(context.Context) ([]types.EventType, error) {
	if f.typesErr != nil {
		return nil, f.typesErr
	}
	return []types.EventType{{ID: 1, Name: "Enchente"}, {ID: 2, Name: "Deslizamento"}}, nil
}

// fakeAlerts is an in-memory AlertRepository.
type fakeAlerts struct {
	mu          sync.Mutex
	items       []types.Alert
	nextID      int64
	listCalls   int
	olderCalls  []int
	deleteErr   error
	olderThanFn func(items []types.Alert) []types.Alert
}

func (f *fakeAlerts) List(context.Context) ([]types.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return append([]types.Alert(nil), f.items...), nil
}

func (f *fakeAlerts) Create(_ context.Context, req types.AlertRequest) (*types.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	a := types.Alert{ID: f.nextID, EventID: req.EventID, Message: req.Message, SentAt: req.SentAt}
	f.items = append(f.items, a)
	return &a, nil
}

func (f *fakeAlerts) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeAlerts) DeleteOlderThan(_ context.Context, days int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.olderCalls = append(f.olderCalls, days)
	if f.olderThanFn != nil {
		f.items = f.olderThanFn(f.items)
	}
	return nil
}

// fakePlaces is an in-memory SafePlaceRepository.
type fakePlaces struct {
	mu      sync.Mutex
	items   []types.SafePlace
	listErr error
	created []types.SafePlaceRequest
}

func (f *fakePlaces) List(context.Context) ([]types.SafePlace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]types.SafePlace(nil), f.items...), nil
}

func (f *fakePlaces) Create(_ context.Context, req types.SafePlaceRequest) (*types.SafePlace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	p := types.SafePlace{ID: int64(len(f.items) + 1), Name: req.Name, Address: req.Address,
		Latitude: req.Latitude, Longitude: req.Longitude, Capacity: req.Capacity}
	f.items = append(f.items, p)
	return &p, nil
}

func (f *fakePlaces) Update(_ context.Context, id int64, req types.SafePlaceRequest) (*types.SafePlace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Name = req.Name
			f.items[i].Capacity = req.Capacity
			return &f.items[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakePlaces) Delete(context.Context, int64) error { return nil }

// fakeResources is an in-memory ResourceRepository plus ResourceTypeLister.
type fakeResources struct {
	mu      sync.Mutex
	items   []types.Resource
	queried []int64
	failFor map[int64]error
}

func (f *fakeResources) ListBySafePlace(_ context.Context, id int64) ([]types.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queried = append(f.queried, id)
	if err := f.failFor[id]; err != nil {
		return nil, err
	}
	out := []types.Resource{}
	for _, r := range f.items {
		if r.SafePlaceID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResources) Create(_ context.Context, req types.ResourceRequest) (*types.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := types.Resource{ID: int64(len(f.items) + 1), ResourceTypeID: req.ResourceTypeID,
		AvailableQuantity: req.AvailableQuantity, SafePlaceID: req.SafePlaceID}
	f.items = append(f.items, r)
	return &r, nil
}

func (f *fakeResources) Update(_ context.Context, id int64, req types.ResourceRequest) (*types.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].AvailableQuantity = req.AvailableQuantity
			return &f.items[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeResources) Delete(context.Context, int64) error { return nil }

type fakeResourceTypes []types.ResourceType

func (f fakeResourceTypes) List(context.Context) ([]types.ResourceType, error) { return f, nil }

type failingResourceTypes struct{ err error }

func (f failingResourceTypes) List(context.Context) ([]types.ResourceType, error) { return nil, f.err }
