package screens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/session"
)

func newEventsScreen(t *testing.T, repo *fakeEvents) *EventsScreen {
	t.Helper()
	s, err := NewEventsScreen(openSession(t), repo, WithClock(clock))
	require.NoError(t, err)
	return s
}

func TestNewEventsScreenRequiresSession(t *testing.T) {
	_, err := NewEventsScreen(nil, &fakeEvents{})
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
}

func TestEventsLoad(t *testing.T) {
	repo := &fakeEvents{items: []types.Event{{ID: 1, EventType: "Enchente"}}}
	s := newEventsScreen(t, repo)
	require.Equal(t, Idle, s.State())

	require.NoError(t, s.Load(context.Background()))
	require.Equal(t, Ready, s.State())
	require.Len(t, s.Items(), 1)
}

func TestEventsLoadFailureKeepsPreviousList(t *testing.T) {
	repo := &fakeEvents{items: []types.Event{{ID: 1, EventType: "Enchente"}}}
	s := newEventsScreen(t, repo)
	require.NoError(t, s.Load(context.Background()))

	repo.listErr = &apierrors.NetworkError{Op: "list events"}
	require.Error(t, s.Load(context.Background()))
	require.Equal(t, Failed, s.State())
	require.Len(t, s.Items(), 1)

	n, ok := s.Notice()
	require.True(t, ok)
	require.Equal(t, NoticeError, n.Kind)
	require.Equal(t, MsgEventsLoadFailed, n.Message)

	s.DismissNotice()
	_, ok = s.Notice()
	require.False(t, ok)
}

func TestEventsCreateThenList(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEvents{}
	s := newEventsScreen(t, repo)
	require.NoError(t, s.Load(ctx))

	require.NoError(t, s.OpenForm(ctx, nil))
	require.Equal(t, Editing, s.State())
	require.Len(t, s.EventTypes(), 2)

	f, ok := s.Form()
	require.True(t, ok)
	f.EventType = "Enchente"
	f.RiskLevel = "high"
	f.Latitude = "-23,55"
	f.Longitude = "-46.63"

	require.NoError(t, s.Submit(ctx))
	require.Equal(t, Ready, s.State())
	_, open := s.Form()
	require.False(t, open)

	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, "Sem descrição", items[0].Description)
	require.Equal(t, types.RiskHigh, items[0].RiskLevel)
	require.Equal(t, "2024-05-02T09:30", items[0].EventDate.String())
	require.InDelta(t, -23.55, items[0].Latitude, 1e-9)

	n, _ := s.Notice()
	require.Equal(t, NoticeSuccess, n.Kind)
	require.Equal(t, MsgEventCreated, n.Message)
}

func TestEventsSubmitValidationKeepsForm(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEvents{}
	s := newEventsScreen(t, repo)
	require.NoError(t, s.OpenForm(ctx, nil))

	err := s.Submit(ctx)
	require.True(t, apierrors.IsValidation(err))
	require.Equal(t, Editing, s.State())
	_, open := s.Form()
	require.True(t, open)

	n, _ := s.Notice()
	require.Equal(t, NoticeWarning, n.Kind)
	require.Equal(t, MsgRequiredFields, n.Message)
	require.Zero(t, repo.nextID)
}

func TestEventsSubmitServerErrorKeepsForm(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEvents{createErr: errServer}
	s := newEventsScreen(t, repo)
	require.NoError(t, s.OpenForm(ctx, nil))
	f, _ := s.Form()
	f.EventType = "Enchente"

	require.ErrorIs(t, s.Submit(ctx), errServer)
	require.Equal(t, Editing, s.State())
	n, _ := s.Notice()
	require.Equal(t, NoticeError, n.Kind)
	require.Equal(t, MsgEventSaveFailed, n.Message)
}

func TestEventsEditExisting(t *testing.T) {
	ctx := context.Background()
	ev := types.Event{ID: 7, EventType: "Enchente", RiskLevel: types.RiskLow}
	repo := &fakeEvents{items: []types.Event{ev}}
	s := newEventsScreen(t, repo)

	require.NoError(t, s.OpenForm(ctx, &ev))
	f, _ := s.Form()
	require.True(t, f.Editing())
	f.RiskLevel = "Medium"
	require.NoError(t, s.Submit(ctx))

	require.Equal(t, types.RiskMedium, s.Items()[0].RiskLevel)
	n, _ := s.Notice()
	require.Equal(t, MsgEventUpdated, n.Message)
}

func TestEventsOpenFormTypesFailure(t *testing.T) {
	repo := &fakeEvents{typesErr: errServer}
	s := newEventsScreen(t, repo)
	require.Error(t, s.OpenForm(context.Background(), nil))
	_, open := s.Form()
	require.False(t, open)
	n, _ := s.Notice()
	require.Equal(t, MsgEventFormFailed, n.Message)
}

func TestEventsCancel(t *testing.T) {
	s := newEventsScreen(t, &fakeEvents{})
	require.NoError(t, s.OpenForm(context.Background(), nil))
	s.Cancel()
	require.Equal(t, Ready, s.State())
	require.ErrorIs(t, s.Submit(context.Background()), ErrNoForm)
}

func TestEventsDeleteDeclined(t *testing.T) {
	repo := &fakeEvents{items: []types.Event{{ID: 1}}}
	s := newEventsScreen(t, repo)
	require.NoError(t, s.Load(context.Background()))
	calls := repo.listCalls

	ok, err := s.Delete(context.Background(), 1, no)
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, repo.deleted)
	require.Equal(t, calls, repo.listCalls)
	require.Len(t, s.Items(), 1)
}

func TestEventsDeleteFailureStillReloads(t *testing.T) {
	repo := &fakeEvents{items: []types.Event{{ID: 1}}, deleteErr: errServer}
	s := newEventsScreen(t, repo)
	require.NoError(t, s.Load(context.Background()))
	calls := repo.listCalls

	ok, err := s.Delete(context.Background(), 1, yes)
	require.True(t, ok)
	require.ErrorIs(t, err, errServer)
	require.Equal(t, calls+1, repo.listCalls)
	n, _ := s.Notice()
	require.Equal(t, MsgEventDeleteFailed, n.Message)
}

func TestEventsConfirmPrompt(t *testing.T) {
	s := newEventsScreen(t, &fakeEvents{})
	var got string
	_, err := s.Delete(context.Background(), 1, func(p string) bool { got = p; return false })
	require.NoError(t, err)
	require.Equal(t, MsgEventDeletePrompt, got)
}

func TestEventsBusyRejectsSecondMutation(t *testing.T) {
	ctx := context.Background()
	g := newGate()
	repo := &fakeEvents{block: g}
	s := newEventsScreen(t, repo)
	require.NoError(t, s.OpenForm(ctx, nil))
	f, _ := s.Form()
	f.EventType = "Enchente"

	done := make(chan error, 1)
	go func() { done <- s.Submit(ctx) }()
	<-g.entered

	require.True(t, s.Busy())
	require.ErrorIs(t, s.Submit(ctx), ErrBusy)
	_, err := s.Delete(ctx, 1, yes)
	require.ErrorIs(t, err, ErrBusy)
	require.ErrorIs(t, s.Load(ctx), ErrBusy)

	close(g.release)
	require.NoError(t, <-done)
	require.False(t, s.Busy())
	require.Len(t, s.Items(), 1)
	require.Empty(t, repo.deleted)
}

func TestEventsLogoutStopsScreen(t *testing.T) {
	sess := openSession(t)
	s, err := NewEventsScreen(sess, &fakeEvents{})
	require.NoError(t, err)

	sess.Logout()
	require.ErrorIs(t, s.Load(context.Background()), session.ErrNotAuthenticated)
	_, err = s.Delete(context.Background(), 1, yes)
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
}

func TestRiskOptions(t *testing.T) {
	opts := RiskOptions()
	require.Len(t, opts, 3)
	require.Equal(t, RiskOption{Value: types.RiskHigh, Label: "Alto"}, opts[0])
	require.Equal(t, "Baixo", opts[2].Label)
}

func TestUserFacingMessages(t *testing.T) {
	cases := map[string]string{
		MsgEventCreated:      "Evento criado com sucesso!",
		MsgEventSaveFailed:   "Não foi possível salvar o evento.",
		MsgEventDeletePrompt: "Deseja excluir este evento?",
		MsgAlertCreated:      "Alerta criado com sucesso!",
		MsgOldAlertsDeleted:  "Alertas antigos excluídos!",
		MsgSafePlaceCreated:  "Local seguro criado!",
		MsgSafePlaceDeleted:  "Local excluído",
		MsgResourceUpdated:   "Recurso atualizado!",
	}
	for got, want := range cases {
		require.Equal(t, want, got)
	}
}
