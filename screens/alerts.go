package screens

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/form"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/session"
)

// AlertRepository is what the alerts screen needs from the client.
// *saferoute.AlertRepository satisfies it.
type AlertRepository interface {
	List(ctx context.Context) ([]types.Alert, error)
	Create(ctx context.Context, req types.AlertRequest) (*types.Alert, error)
	Delete(ctx context.Context, id int64) error
	DeleteOlderThan(ctx context.Context, days int) error
}

// EventOptionSource feeds the event picker of the alert form.
// *saferoute.EventRepository satisfies it.
type EventOptionSource interface {
	ListOptions(ctx context.Context) ([]types.Event, error)
}

const (
	MsgAlertsLoadFailed  = "Erro ao carregar alertas."
	MsgAlertFormFailed   = "Erro ao carregar eventos."
	MsgAlertCreated      = "Alerta criado com sucesso!"
	MsgAlertSaveFailed   = "Erro ao criar alerta."
	MsgAlertDeleted      = "Alerta excluído!"
	MsgAlertDeleteFailed = "Erro ao excluir alerta."
	MsgAlertDeletePrompt = "Deseja excluir este alerta?"
	MsgOldAlertsPrompt   = "Deseja excluir TODOS os alertas com mais de 7 dias?"
	MsgOldAlertsDeleted  = "Alertas antigos excluídos!"
	MsgOldAlertsFailed   = "Erro ao excluir alertas antigos."
)

// oldAlertsRetentionDays is the only age the bulk delete endpoint serves.
const oldAlertsRetentionDays = 7

// EventOption is one entry of the alert form's event picker.
type EventOption struct {
	ID    int64
	Label string
}

// NewEventOption renders e as "type - description (dd/mm/yyyy)".
func NewEventOption(e types.Event) EventOption {
	desc := e.Description
	if desc == "" {
		desc = form.DefaultDescription
	}
	label := e.EventType + " - " + desc
	if !e.EventDate.IsZero() {
		label += fmt.Sprintf(" (%s)", e.EventDate.In(time.Local).Format("02/01/2006"))
	}
	return EventOption{ID: e.ID, Label: label}
}

// AlertsScreen lists, creates and deletes alerts and filters them by date.
type AlertsScreen struct {
	*controller[types.Alert, *form.AlertForm]
	repo   AlertRepository
	events EventOptionSource

	filterMu  sync.Mutex
	day       time.Time
	hasFilter bool
	options   []EventOption
}

// NewAlertsScreen requires an open session.
func NewAlertsScreen(s *session.Session, repo AlertRepository, events EventOptionSource, opts ...Option) (*AlertsScreen, error) {
	if err := session.Require(s); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	msgs := messages{
		loadFailed:   MsgAlertsLoadFailed,
		invalid:      MsgRequiredFields,
		created:      MsgAlertCreated,
		updated:      MsgAlertCreated,
		saveFailed:   MsgAlertSaveFailed,
		deleted:      MsgAlertDeleted,
		deleteFailed: MsgAlertDeleteFailed,
		deletePrompt: MsgAlertDeletePrompt,
	}
	return &AlertsScreen{
		controller: newController[types.Alert, *form.AlertForm]("alerts", s, msgs, repo.List, o),
		repo:       repo,
		events:     events,
	}, nil
}

// SetDateFilter restricts Visible to alerts sent on the given local
// calendar date (YYYY-MM-DD or DD/MM/YYYY).
func (a *AlertsScreen) SetDateFilter(date string) error {
	day, err := form.ParseDate("date", date)
	if err != nil {
		return err
	}
	a.filterMu.Lock()
	a.day, a.hasFilter = day, true
	a.filterMu.Unlock()
	return nil
}

// ClearDateFilter shows every alert again.
func (a *AlertsScreen) ClearDateFilter() {
	a.filterMu.Lock()
	a.day, a.hasFilter = time.Time{}, false
	a.filterMu.Unlock()
}

// DateFilter returns the active filter date, if any.
func (a *AlertsScreen) DateFilter() (time.Time, bool) {
	a.filterMu.Lock()
	defer a.filterMu.Unlock()
	return a.day, a.hasFilter
}

// Visible returns the loaded alerts that pass the date filter.
func (a *AlertsScreen) Visible() []types.Alert {
	items := a.Items()
	day, ok := a.DateFilter()
	if !ok {
		return items
	}
	out := items[:0]
	for _, al := range items {
		if al.SentAt.SameDate(day) {
			out = append(out, al)
		}
	}
	return out
}

// OpenForm loads the event picker and opens a blank alert form with sentAt
// preset to now.
func (a *AlertsScreen) OpenForm(ctx context.Context) error {
	if err := a.acquire(); err != nil {
		return err
	}
	defer a.release()

	evs, err := a.events.ListOptions(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("event options load failed")
		a.notify(NoticeError, MsgAlertFormFailed, err)
		return fmt.Errorf("load event options: %w", err)
	}
	opts := make([]EventOption, 0, len(evs))
	for _, e := range evs {
		opts = append(opts, NewEventOption(e))
	}
	a.filterMu.Lock()
	a.options = opts
	a.filterMu.Unlock()

	a.openForm(form.NewAlertForm(a.now()))
	return nil
}

// EventOptions returns the picker entries loaded by the last OpenForm.
func (a *AlertsScreen) EventOptions() []EventOption {
	a.filterMu.Lock()
	defer a.filterMu.Unlock()
	out := make([]EventOption, len(a.options))
	copy(out, a.options)
	return out
}

// Submit validates and sends the open alert, then reloads the list.
func (a *AlertsScreen) Submit(ctx context.Context) error {
	return a.submit(ctx, func(ctx context.Context, f *form.AlertForm) error {
		req, err := f.Payload(a.now())
		if err != nil {
			return err
		}
		_, err = a.repo.Create(ctx, req)
		return err
	})
}

// Delete removes one alert once confirm approves.
func (a *AlertsScreen) Delete(ctx context.Context, id int64, confirm Confirm) (bool, error) {
	return a.confirmAndRun(ctx, "delete", a.msgs.deletePrompt, confirm,
		func(ctx context.Context) error { return a.repo.Delete(ctx, id) },
		a.msgs.deleted, a.msgs.deleteFailed)
}

// DeleteOlderThan7Days asks confirm, then removes every alert older than
// seven days in one server-side operation and reloads.
func (a *AlertsScreen) DeleteOlderThan7Days(ctx context.Context, confirm Confirm) (bool, error) {
	return a.confirmAndRun(ctx, "delete_old", MsgOldAlertsPrompt, confirm,
		func(ctx context.Context) error { return a.repo.DeleteOlderThan(ctx, oldAlertsRetentionDays) },
		MsgOldAlertsDeleted, MsgOldAlertsFailed)
}
