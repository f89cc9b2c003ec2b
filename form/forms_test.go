package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

var fixedNow = time.Date(2024, 5, 3, 14, 7, 0, 0, time.Local)

func TestEventForm_Defaults(t *testing.T) {
	t.Parallel()
	f := NewEventForm()
	f.EventType = "Enchente"

	req, err := f.Payload(fixedNow)
	require.NoError(t, err)
	require.Equal(t, DefaultDescription, req.Description)
	require.Equal(t, types.RiskLow, req.RiskLevel)
	require.Equal(t, "2024-05-03T14:07", req.EventDate.String())
	require.Zero(t, req.Latitude)
	require.False(t, f.Editing())
}

func TestEventForm_Validation(t *testing.T) {
	t.Parallel()
	f := NewEventForm()
	_, err := f.Payload(fixedNow)
	require.Equal(t, "eventType", fieldOf(t, err))

	f.EventType = "Enchente"
	f.RiskLevel = "catastrophic"
	_, err = f.Payload(fixedNow)
	require.Equal(t, "riskLevel", fieldOf(t, err))

	f.RiskLevel = "HIGH"
	f.Latitude = "abc"
	_, err = f.Payload(fixedNow)
	require.Equal(t, "latitude", fieldOf(t, err), "bad numbers are rejected, not coerced")

	f.Latitude = "-23.5"
	f.Longitude = ""
	_, err = f.Payload(fixedNow)
	require.Equal(t, "longitude", fieldOf(t, err))

	f.Longitude = "-46.6"
	req, err := f.Payload(fixedNow)
	require.NoError(t, err)
	require.Equal(t, types.RiskHigh, req.RiskLevel)
}

func TestEditEventForm_RoundTrip(t *testing.T) {
	t.Parallel()
	e := types.Event{
		ID:          7,
		EventType:   "Deslizamento",
		Description: "Morro",
		EventDate:   types.NewLocalDateTime(time.Date(2024, 4, 30, 22, 15, 0, 0, time.Local)),
		RiskLevel:   types.RiskMedium,
		Latitude:    -23.5505,
		Longitude:   -46.6333,
	}
	f := EditEventForm(e)
	require.True(t, f.Editing())
	req, err := f.Payload(fixedNow)
	require.NoError(t, err)
	require.Equal(t, types.EventRequest{
		EventType:   e.EventType,
		Description: e.Description,
		EventDate:   e.EventDate,
		RiskLevel:   e.RiskLevel,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
	}, req)
}

func TestAlertForm(t *testing.T) {
	t.Parallel()
	f := &AlertForm{}
	_, err := f.Payload(fixedNow)
	require.Equal(t, "eventId", fieldOf(t, err))

	f.EventID = 3
	f.Message = "   "
	_, err = f.Payload(fixedNow)
	require.Equal(t, "message", fieldOf(t, err))

	f.Message = "Evacuar a área"
	req, err := f.Payload(fixedNow)
	require.NoError(t, err)
	require.Equal(t, "2024-05-03T14:07", req.SentAt.String(), "unset sentAt defaults to now")

	preset := NewAlertForm(fixedNow)
	require.Equal(t, "2024-05-03T14:07", preset.SentAt)
}

func TestSafePlaceForm(t *testing.T) {
	t.Parallel()
	f := &SafePlaceForm{Name: "Abrigo Central", Address: "Rua A", Latitude: "-23.5", Longitude: "-46.6", Capacity: "120"}
	req, err := f.Payload()
	require.NoError(t, err)
	require.Equal(t, 120, req.Capacity)

	for field, mutate := range map[string]func(*SafePlaceForm){
		"name":      func(f *SafePlaceForm) { f.Name = "" },
		"address":   func(f *SafePlaceForm) { f.Address = " " },
		"latitude":  func(f *SafePlaceForm) { f.Latitude = "" },
		"longitude": func(f *SafePlaceForm) { f.Longitude = "x" },
		"capacity":  func(f *SafePlaceForm) { f.Capacity = "muitos" },
	} {
		g := *f
		mutate(&g)
		_, err := g.Payload()
		require.Equal(t, field, fieldOf(t, err))
	}

	edit := EditSafePlaceForm(types.SafePlace{ID: 2, Name: "A", Address: "B", Latitude: 1.5, Longitude: 2, Capacity: 3})
	require.True(t, edit.Editing())
	require.Equal(t, "1.5", edit.Latitude)
	require.Equal(t, "3", edit.Capacity)
}

func TestResourceForm(t *testing.T) {
	t.Parallel()
	f := &ResourceForm{}
	_, err := f.Payload(4)
	require.Equal(t, "resourceTypeId", fieldOf(t, err))

	f.ResourceTypeID = "2"
	_, err = f.Payload(4)
	require.Equal(t, "availableQuantity", fieldOf(t, err))

	f.AvailableQuantity = "30"
	_, err = f.Payload(0)
	require.Equal(t, "safePlaceId", fieldOf(t, err))

	req, err := f.Payload(4)
	require.NoError(t, err)
	require.Equal(t, types.ResourceRequest{ResourceTypeID: 2, AvailableQuantity: 30, SafePlaceID: 4}, req)

	edit := EditResourceForm(types.Resource{ID: 9, ResourceTypeID: 2, AvailableQuantity: 7})
	require.True(t, edit.Editing())
	require.Equal(t, "2", edit.ResourceTypeID)
	require.Equal(t, "7", edit.AvailableQuantity)
}

func TestRegisterForm(t *testing.T) {
	t.Parallel()
	f := &RegisterForm{Name: "Ana", Email: "ana@example.com", Password: "Abcd123!"}
	_, err := f.Payload()
	require.Equal(t, "phone", fieldOf(t, err))

	f.SetPhone("(11) 98888-7777x99")
	require.Equal(t, "11988887777", f.Phone())

	f.Password = "abcd1234"
	_, err = f.Payload()
	require.Equal(t, "password", fieldOf(t, err))

	f.Password = "Abcd123!"
	req, err := f.Payload()
	require.NoError(t, err)
	require.Equal(t, "11988887777", req.Phone)
}

func TestLoginForm(t *testing.T) {
	t.Parallel()
	_, err := (&LoginForm{Password: "x"}).Payload()
	require.Equal(t, "email", fieldOf(t, err))
	_, err = (&LoginForm{Email: "a@b.c"}).Payload()
	require.Equal(t, "password", fieldOf(t, err))
	req, err := (&LoginForm{Email: " a@b.c ", Password: "x"}).Payload()
	require.NoError(t, err)
	require.Equal(t, "a@b.c", req.Email)
}
