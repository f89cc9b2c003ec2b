package devserver

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

var (
	errNotFound      = errors.New("not found")
	errEmailTaken    = errors.New("email already registered")
	errBadCredential = errors.New("invalid credentials")
)

type account struct {
	user types.User
	hash []byte
}

// Store is the in-memory state behind the dev backend. Safe for concurrent
// use.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	nextID int64

	events        map[int64]types.Event
	eventTypes    []types.EventType
	alerts        map[int64]types.Alert
	places        map[int64]types.SafePlace
	resources     map[int64]types.Resource
	resourceTypes []types.ResourceType
	accounts      map[string]account // by lower-cased email
}

// NewStore returns a store seeded with event and resource type reference
// data.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now:       now,
		events:    map[int64]types.Event{},
		alerts:    map[int64]types.Alert{},
		places:    map[int64]types.SafePlace{},
		resources: map[int64]types.Resource{},
		accounts:  map[string]account{},
		eventTypes: []types.EventType{
			{ID: 1, Name: "Enchente"},
			{ID: 2, Name: "Deslizamento"},
			{ID: 3, Name: "Incêndio"},
			{ID: 4, Name: "Tempestade"},
		},
		resourceTypes: []types.ResourceType{
			{ID: 1, Name: "Água potável"},
			{ID: 2, Name: "Alimento"},
			{ID: 3, Name: "Cobertor"},
			{ID: 4, Name: "Kit de primeiros socorros"},
		},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func sortedValues[T any](m map[int64]T, id func(T) int64) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}

// ------------------------------
// Users
// ------------------------------

// Register creates an account. Emails are unique, case-insensitively.
func (s *Store) Register(req types.RegisterRequest) (types.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, err
	}
	key := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[key]; ok {
		return types.User{}, errEmailTaken
	}
	u := types.User{ID: s.id(), Name: req.Name, Email: req.Email, Phone: req.Phone}
	s.accounts[key] = account{user: u, hash: hash}
	return u, nil
}

// Authenticate checks email and password.
func (s *Store) Authenticate(email, password string) error {
	s.mu.RLock()
	acc, ok := s.accounts[strings.ToLower(strings.TrimSpace(email))]
	s.mu.RUnlock()
	if !ok {
		return errBadCredential
	}
	if bcrypt.CompareHashAndPassword(acc.hash, []byte(password)) != nil {
		return errBadCredential
	}
	return nil
}

// ------------------------------
// Events
// ------------------------------

func (s *Store) ListEvents() []types.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.events, func(e types.Event) int64 { return e.ID })
}

func (s *Store) EventTypes() []types.EventType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.EventType(nil), s.eventTypes...)
}

func (s *Store) GetEvent(id int64) (types.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return types.Event{}, errNotFound
	}
	return e, nil
}

func (s *Store) SaveEvent(id int64, req types.EventRequest) (types.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == 0 {
		id = s.id()
	} else if _, ok := s.events[id]; !ok {
		return types.Event{}, errNotFound
	}
	e := types.Event{
		ID:          id,
		EventType:   req.EventType,
		Description: req.Description,
		EventDate:   req.EventDate,
		RiskLevel:   req.RiskLevel,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	s.events[id] = e
	return e, nil
}

// DeleteEvent removes the event and the alerts raised for it.
func (s *Store) DeleteEvent(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return errNotFound
	}
	delete(s.events, id)
	for aid, a := range s.alerts {
		if a.EventID == id {
			delete(s.alerts, aid)
		}
	}
	return nil
}

// ------------------------------
// Alerts
// ------------------------------

func eventLabel(e types.Event) string {
	if e.Description == "" {
		return e.EventType
	}
	return e.EventType + " - " + e.Description
}

func (s *Store) ListAlerts() []types.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := sortedValues(s.alerts, func(a types.Alert) int64 { return a.ID })
	for i := range out {
		if e, ok := s.events[out[i].EventID]; ok {
			out[i].Event = eventLabel(e)
		}
	}
	return out
}

func (s *Store) GetAlert(id int64) (types.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.alerts[id]
	if !ok {
		return types.Alert{}, errNotFound
	}
	if e, ok := s.events[a.EventID]; ok {
		a.Event = eventLabel(e)
	}
	return a, nil
}

// CreateAlert fails with errNotFound when the event does not exist.
func (s *Store) CreateAlert(req types.AlertRequest) (types.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[req.EventID]
	if !ok {
		return types.Alert{}, errNotFound
	}
	a := types.Alert{ID: s.id(), EventID: req.EventID, Message: req.Message, SentAt: req.SentAt}
	s.alerts[a.ID] = a
	a.Event = eventLabel(e)
	return a, nil
}

func (s *Store) DeleteAlert(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.alerts[id]; !ok {
		return errNotFound
	}
	delete(s.alerts, id)
	return nil
}

// DeleteAlertsOlderThan removes alerts sent before now minus days and
// returns how many were removed.
func (s *Store) DeleteAlertsOlderThan(days int) int {
	cutoff := s.now().AddDate(0, 0, -days)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, a := range s.alerts {
		if a.SentAt.Before(cutoff) {
			delete(s.alerts, id)
			n++
		}
	}
	return n
}

// ------------------------------
// Safe places
// ------------------------------

func (s *Store) ListSafePlaces() []types.SafePlace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.places, func(p types.SafePlace) int64 { return p.ID })
}

func (s *Store) GetSafePlace(id int64) (types.SafePlace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.places[id]
	if !ok {
		return types.SafePlace{}, errNotFound
	}
	return p, nil
}

func (s *Store) SaveSafePlace(id int64, req types.SafePlaceRequest) (types.SafePlace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == 0 {
		id = s.id()
	} else if _, ok := s.places[id]; !ok {
		return types.SafePlace{}, errNotFound
	}
	p := types.SafePlace{
		ID:        id,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Capacity:  req.Capacity,
	}
	s.places[id] = p
	return p, nil
}

// DeleteSafePlace removes the place and the resources stocked there.
func (s *Store) DeleteSafePlace(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.places[id]; !ok {
		return errNotFound
	}
	delete(s.places, id)
	for rid, r := range s.resources {
		if r.SafePlaceID == id {
			delete(s.resources, rid)
		}
	}
	return nil
}

// ------------------------------
// Resources
// ------------------------------

func (s *Store) ResourceTypes() []types.ResourceType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.ResourceType(nil), s.resourceTypes...)
}

func (s *Store) resourceTypeName(id int64) (string, bool) {
	for _, rt := range s.resourceTypes {
		if rt.ID == id {
			return rt.Name, true
		}
	}
	return "", false
}

func (s *Store) ListResources(safePlaceID int64) []types.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []types.Resource{}
	for _, r := range sortedValues(s.resources, func(r types.Resource) int64 { return r.ID }) {
		if r.SafePlaceID == safePlaceID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) GetResource(id int64) (types.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.resources[id]
	if !ok {
		return types.Resource{}, errNotFound
	}
	return r, nil
}

// errUnknownReference reports a resource pointing at a missing place or type.
var errUnknownReference = errors.New("unknown safe place or resource type")

func (s *Store) SaveResource(id int64, req types.ResourceRequest) (types.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, ok := s.resourceTypeName(req.ResourceTypeID)
	if !ok {
		return types.Resource{}, errUnknownReference
	}
	if _, ok := s.places[req.SafePlaceID]; !ok {
		return types.Resource{}, errUnknownReference
	}
	if id == 0 {
		id = s.id()
	} else if _, ok := s.resources[id]; !ok {
		return types.Resource{}, errNotFound
	}
	r := types.Resource{
		ID:                id,
		ResourceTypeID:    req.ResourceTypeID,
		ResourceTypeName:  name,
		AvailableQuantity: req.AvailableQuantity,
		SafePlaceID:       req.SafePlaceID,
	}
	s.resources[id] = r
	return r, nil
}

func (s *Store) DeleteResource(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.resources[id]; !ok {
		return errNotFound
	}
	delete(s.resources, id)
	return nil
}

// SeedAlert inserts an alert with an arbitrary sentAt, bypassing the
// request path. Used to stage old alerts.
func (s *Store) SeedAlert(eventID int64, message string, sentAt time.Time) types.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := types.Alert{ID: s.id(), EventID: eventID, Message: message, SentAt: types.NewLocalDateTime(sentAt)}
	s.alerts[a.ID] = a
	return a
}
