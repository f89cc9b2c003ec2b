package screens

import (
	"context"
	"fmt"
	"sync"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/form"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/session"
)

// EventRepository is what the events screen needs from the client.
// *saferoute.EventRepository satisfies it.
type EventRepository interface {
	List(ctx context.Context) ([]types.Event, error)
	Create(ctx context.Context, req types.EventRequest) (*types.Event, error)
	Update(ctx context.Context, id int64, req types.EventRequest) (*types.Event, error)
	Delete(ctx context.Context, id int64) error
	ListTypes(ctx context.Context) ([]types.EventType, error)
}

const (
	MsgEventsLoadFailed  = "Erro ao carregar eventos"
	MsgEventFormFailed   = "Erro ao carregar dados do evento"
	MsgRequiredFields    = "Preencha todos os campos obrigatórios."
	MsgEventCreated      = "Evento criado com sucesso!"
	MsgEventUpdated      = "Evento atualizado com sucesso!"
	MsgEventSaveFailed   = "Não foi possível salvar o evento."
	MsgEventDeleted      = "Evento excluído"
	MsgEventDeleteFailed = "Erro ao excluir evento"
	MsgEventDeletePrompt = "Deseja excluir este evento?"
)

// RiskOption is one entry of the risk level picker.
type RiskOption struct {
	Value types.RiskLevel
	Label string
}

// RiskOptions returns the risk picker entries, highest first.
func RiskOptions() []RiskOption {
	out := make([]RiskOption, 0, len(types.RiskLevels))
	for _, r := range types.RiskLevels {
		out = append(out, RiskOption{Value: r, Label: r.Label()})
	}
	return out
}

// EventsScreen lists, creates, edits and deletes events.
type EventsScreen struct {
	*controller[types.Event, *form.EventForm]
	repo EventRepository

	typesMu    sync.Mutex
	eventTypes []types.EventType
}

// NewEventsScreen requires an open session.
func NewEventsScreen(s *session.Session, repo EventRepository, opts ...Option) (*EventsScreen, error) {
	if err := session.Require(s); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	msgs := messages{
		loadFailed:   MsgEventsLoadFailed,
		invalid:      MsgRequiredFields,
		created:      MsgEventCreated,
		updated:      MsgEventUpdated,
		saveFailed:   MsgEventSaveFailed,
		deleted:      MsgEventDeleted,
		deleteFailed: MsgEventDeleteFailed,
		deletePrompt: MsgEventDeletePrompt,
	}
	return &EventsScreen{
		controller: newController[types.Event, *form.EventForm]("events", s, msgs, repo.List, o),
		repo:       repo,
	}, nil
}

// OpenForm loads the event types and opens the form, blank when existing
// is nil or pre-populated from it otherwise. If the types cannot be loaded
// the form stays closed.
func (e *EventsScreen) OpenForm(ctx context.Context, existing *types.Event) error {
	if err := e.acquire(); err != nil {
		return err
	}
	defer e.release()

	ts, err := e.repo.ListTypes(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("event types load failed")
		e.notify(NoticeError, MsgEventFormFailed, err)
		return fmt.Errorf("load event types: %w", err)
	}
	e.typesMu.Lock()
	e.eventTypes = ts
	e.typesMu.Unlock()

	f := form.NewEventForm()
	if existing != nil {
		f = form.EditEventForm(*existing)
	}
	e.openForm(f)
	return nil
}

// EventTypes returns the reference data loaded by the last OpenForm.
func (e *EventsScreen) EventTypes() []types.EventType {
	e.typesMu.Lock()
	defer e.typesMu.Unlock()
	out := make([]types.EventType, len(e.eventTypes))
	copy(out, e.eventTypes)
	return out
}

// Submit validates the open form, creates or updates the event, closes the
// form and reloads the list.
func (e *EventsScreen) Submit(ctx context.Context) error {
	return e.submit(ctx, func(ctx context.Context, f *form.EventForm) error {
		req, err := f.Payload(e.now())
		if err != nil {
			return err
		}
		if f.Editing() {
			_, err = e.repo.Update(ctx, f.ID, req)
		} else {
			_, err = e.repo.Create(ctx, req)
		}
		return err
	})
}

// Delete removes the event with id once confirm approves. It reports
// whether the user approved.
func (e *EventsScreen) Delete(ctx context.Context, id int64, confirm Confirm) (bool, error) {
	return e.confirmAndRun(ctx, "delete", e.msgs.deletePrompt, confirm,
		func(ctx context.Context) error { return e.repo.Delete(ctx, id) },
		e.msgs.deleted, e.msgs.deleteFailed)
}
