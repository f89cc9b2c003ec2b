package screens

import (
	"context"
	"sync"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/form"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/session"
)

// SafePlaceRepository is what the safe places screen needs from the client.
type SafePlaceRepository interface {
	List(ctx context.Context) ([]types.SafePlace, error)
	Create(ctx context.Context, req types.SafePlaceRequest) (*types.SafePlace, error)
	Update(ctx context.Context, id int64, req types.SafePlaceRequest) (*types.SafePlace, error)
	Delete(ctx context.Context, id int64) error
}

const (
	MsgSafePlacesLoadFailed  = "Erro ao carregar locais seguros."
	MsgSafePlaceCreated      = "Local seguro criado!"
	MsgSafePlaceUpdated      = "Local seguro atualizado!"
	MsgSafePlaceSaveFailed   = "Erro ao salvar local seguro."
	MsgSafePlaceDeleted      = "Local excluído"
	MsgSafePlaceDeleteFailed = "Erro ao excluir local"
	MsgSafePlaceDeletePrompt = "Deseja realmente excluir este local seguro?"
)

// SafePlacesScreen lists and edits shelters with a local name filter.
type SafePlacesScreen struct {
	*controller[types.SafePlace, *form.SafePlaceForm]
	repo SafePlaceRepository

	filterMu sync.Mutex
	query    string
}

// NewSafePlacesScreen requires an open session.
func NewSafePlacesScreen(s *session.Session, repo SafePlaceRepository, opts ...Option) (*SafePlacesScreen, error) {
	if err := session.Require(s); err != nil {
		return nil, err
	}
	msgs := messages{
		loadFailed:   MsgSafePlacesLoadFailed,
		invalid:      MsgRequiredFields,
		created:      MsgSafePlaceCreated,
		updated:      MsgSafePlaceUpdated,
		saveFailed:   MsgSafePlaceSaveFailed,
		deleted:      MsgSafePlaceDeleted,
		deleteFailed: MsgSafePlaceDeleteFailed,
		deletePrompt: MsgSafePlaceDeletePrompt,
	}
	return &SafePlacesScreen{
		controller: newController[types.SafePlace, *form.SafePlaceForm]("safe_places", s, msgs, repo.List, buildOptions(opts)),
		repo:       repo,
	}, nil
}

// SetNameFilter sets the case-insensitive substring filter on name.
func (p *SafePlacesScreen) SetNameFilter(q string) {
	p.filterMu.Lock()
	p.query = q
	p.filterMu.Unlock()
}

// Visible returns the loaded places whose name matches the filter.
func (p *SafePlacesScreen) Visible() []types.SafePlace {
	p.filterMu.Lock()
	q := p.query
	p.filterMu.Unlock()

	items := p.Items()
	out := items[:0]
	for _, sp := range items {
		if matchName(sp.Name, q) {
			out = append(out, sp)
		}
	}
	return out
}

// OpenForm opens a blank form, or one pre-populated from existing. No
// request is made.
func (p *SafePlacesScreen) OpenForm(existing *types.SafePlace) error {
	if err := session.Require(p.sess); err != nil {
		return err
	}
	if p.Busy() {
		return ErrBusy
	}
	f := &form.SafePlaceForm{}
	if existing != nil {
		f = form.EditSafePlaceForm(*existing)
	}
	p.openForm(f)
	return nil
}

// Submit validates the open form, saves it and reloads.
func (p *SafePlacesScreen) Submit(ctx context.Context) error {
	return p.submit(ctx, func(ctx context.Context, f *form.SafePlaceForm) error {
		req, err := f.Payload()
		if err != nil {
			return err
		}
		if f.Editing() {
			_, err = p.repo.Update(ctx, f.ID, req)
		} else {
			_, err = p.repo.Create(ctx, req)
		}
		return err
	})
}

// Delete removes a place once confirm approves.
func (p *SafePlacesScreen) Delete(ctx context.Context, id int64, confirm Confirm) (bool, error) {
	return p.confirmAndRun(ctx, "delete", p.msgs.deletePrompt, confirm,
		func(ctx context.Context) error { return p.repo.Delete(ctx, id) },
		p.msgs.deleted, p.msgs.deleteFailed)
}
