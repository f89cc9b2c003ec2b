package screens

import (
	"context"
	"sync"

	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/form"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/session"
)

// ResourceRepository is what the resources screen needs from the client.
// *saferoute.ResourceRepository satisfies it.
type ResourceRepository interface {
	ListBySafePlace(ctx context.Context, safePlaceID int64) ([]types.Resource, error)
	Create(ctx context.Context, req types.ResourceRequest) (*types.Resource, error)
	Update(ctx context.Context, id int64, req types.ResourceRequest) (*types.Resource, error)
	Delete(ctx context.Context, id int64) error
}

// SafePlaceLister feeds the place selector.
type SafePlaceLister interface {
	List(ctx context.Context) ([]types.SafePlace, error)
}

// ResourceTypeLister feeds the resource type picker.
type ResourceTypeLister interface {
	List(ctx context.Context) ([]types.ResourceType, error)
}

const (
	MsgResourcesLoadFailed     = "Erro ao carregar recursos."
	MsgResourceTypesLoadFailed = "Erro ao carregar tipos de recurso."
	MsgResourceRequiredFields  = "Preencha todos os campos."
	MsgResourceCreated         = "Recurso criado!"
	MsgResourceUpdated         = "Recurso atualizado!"
	MsgResourceSaveFailed      = "Erro ao salvar recurso."
	MsgResourceDeleted         = "Recurso excluído!"
	MsgResourceDeleteFailed    = "Erro ao excluir recurso."
	MsgResourceDeletePrompt    = "Deseja excluir este recurso?"
)

// ResourcesScreen manages the resources of one selected safe place.
type ResourcesScreen struct {
	*controller[types.Resource, *form.ResourceForm]
	repo       ResourceRepository
	placesRepo SafePlaceLister
	typesRepo  ResourceTypeLister

	refMu         sync.Mutex
	places        []types.SafePlace
	resourceTypes []types.ResourceType
	placeQuery    string
	selected      int64
}

// NewResourcesScreen requires an open session.
func NewResourcesScreen(s *session.Session, repo ResourceRepository, places SafePlaceLister, rtypes ResourceTypeLister, opts ...Option) (*ResourcesScreen, error) {
	if err := session.Require(s); err != nil {
		return nil, err
	}
	r := &ResourcesScreen{repo: repo, placesRepo: places, typesRepo: rtypes}
	msgs := messages{
		loadFailed:   MsgResourcesLoadFailed,
		invalid:      MsgResourceRequiredFields,
		created:      MsgResourceCreated,
		updated:      MsgResourceUpdated,
		saveFailed:   MsgResourceSaveFailed,
		deleted:      MsgResourceDeleted,
		deleteFailed: MsgResourceDeleteFailed,
		deletePrompt: MsgResourceDeletePrompt,
	}
	r.controller = newController[types.Resource, *form.ResourceForm]("resources", s, msgs, r.fetch, buildOptions(opts))
	return r, nil
}

func (r *ResourcesScreen) fetch(ctx context.Context) ([]types.Resource, error) {
	id := r.SelectedPlace()
	if id == 0 {
		return []types.Resource{}, nil
	}
	return r.repo.ListBySafePlace(ctx, id)
}

// Load fetches the safe places and resource types, then the resources of
// the selected place if there is one.
func (r *ResourcesScreen) Load(ctx context.Context) error {
	if err := r.acquire(); err != nil {
		return err
	}
	defer r.release()

	places, err := r.placesRepo.List(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("safe places load failed")
		r.fail(MsgSafePlacesLoadFailed, err)
		return err
	}
	rtypes, err := r.typesRepo.List(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("resource types load failed")
		r.fail(MsgResourceTypesLoadFailed, err)
		return err
	}
	r.refMu.Lock()
	r.places, r.resourceTypes = places, rtypes
	r.refMu.Unlock()

	return r.reload(ctx)
}

// SetPlaceFilter sets the case-insensitive name filter of the place selector.
func (r *ResourcesScreen) SetPlaceFilter(q string) {
	r.refMu.Lock()
	r.placeQuery = q
	r.refMu.Unlock()
}

// PlaceOptions returns the loaded places matching the selector filter.
func (r *ResourcesScreen) PlaceOptions() []types.SafePlace {
	r.refMu.Lock()
	defer r.refMu.Unlock()
	out := make([]types.SafePlace, 0, len(r.places))
	for _, p := range r.places {
		if matchName(p.Name, r.placeQuery) {
			out = append(out, p)
		}
	}
	return out
}

// ResourceTypes returns the resource type reference data.
func (r *ResourcesScreen) ResourceTypes() []types.ResourceType {
	r.refMu.Lock()
	defer r.refMu.Unlock()
	out := make([]types.ResourceType, len(r.resourceTypes))
	copy(out, r.resourceTypes)
	return out
}

// SelectedPlace returns the selected safe place id, or 0.
func (r *ResourcesScreen) SelectedPlace() int64 {
	r.refMu.Lock()
	defer r.refMu.Unlock()
	return r.selected
}

// SelectPlace switches the screen to safePlaceID, discards any open form
// and loads that place's resources.
func (r *ResourcesScreen) SelectPlace(ctx context.Context, safePlaceID int64) error {
	if safePlaceID <= 0 {
		return ErrNoPlaceSelected
	}
	if err := r.acquire(); err != nil {
		return err
	}
	defer r.release()

	r.refMu.Lock()
	changed := r.selected != safePlaceID
	r.selected = safePlaceID
	r.refMu.Unlock()
	r.Cancel()

	// Rows of the previous place must not survive a failed reload.
	if changed {
		r.mu.Lock()
		r.items = []types.Resource{}
		r.mu.Unlock()
	}
	return r.reload(ctx)
}

// OpenForm opens a blank form, or one pre-populated from existing, for the
// selected place.
func (r *ResourcesScreen) OpenForm(existing *types.Resource) error {
	if err := session.Require(r.sess); err != nil {
		return err
	}
	if r.SelectedPlace() == 0 {
		return ErrNoPlaceSelected
	}
	if r.Busy() {
		return ErrBusy
	}
	f := &form.ResourceForm{}
	if existing != nil {
		f = form.EditResourceForm(*existing)
	}
	r.openForm(f)
	return nil
}

// Submit saves the open form against the selected place and reloads.
func (r *ResourcesScreen) Submit(ctx context.Context) error {
	return r.submit(ctx, func(ctx context.Context, f *form.ResourceForm) error {
		id := r.SelectedPlace()
		if id == 0 {
			return ErrNoPlaceSelected
		}
		req, err := f.Payload(id)
		if err != nil {
			return err
		}
		if f.Editing() {
			_, err = r.repo.Update(ctx, f.ID, req)
		} else {
			_, err = r.repo.Create(ctx, req)
		}
		return err
	})
}

// Delete removes a resource once confirm approves.
func (r *ResourcesScreen) Delete(ctx context.Context, id int64, confirm Confirm) (bool, error) {
	if r.SelectedPlace() == 0 {
		return false, ErrNoPlaceSelected
	}
	return r.confirmAndRun(ctx, "delete", r.msgs.deletePrompt, confirm,
		func(ctx context.Context) error { return r.repo.Delete(ctx, id) },
		r.msgs.deleted, r.msgs.deleteFailed)
}
