package form

import (
	"strconv"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

// ResourceForm is the create/edit form of the resources screen. The safe
// place comes from the screen's current selection, not from the user.
type ResourceForm struct {
	ID                int64
	ResourceTypeID    string
	AvailableQuantity string
}

// EditResourceForm pre-populates the form from an existing resource.
func EditResourceForm(r types.Resource) *ResourceForm {
	f := &ResourceForm{
		ID:                r.ID,
		AvailableQuantity: strconv.Itoa(r.AvailableQuantity),
	}
	if r.ResourceTypeID > 0 {
		f.ResourceTypeID = strconv.FormatInt(r.ResourceTypeID, 10)
	}
	return f
}

// Editing reports whether the form updates an existing resource.
func (f *ResourceForm) Editing() bool { return f.ID != 0 }

// Payload validates the form for the selected safe place.
func (f *ResourceForm) Payload(safePlaceID int64) (types.ResourceRequest, error) {
	var (
		req types.ResourceRequest
		err error
	)
	if req.ResourceTypeID, err = ParseID("resourceTypeId", f.ResourceTypeID); err != nil {
		return req, err
	}
	if req.AvailableQuantity, err = ParseNonNegativeInt("availableQuantity", f.AvailableQuantity); err != nil {
		return req, err
	}
	if safePlaceID <= 0 {
		return req, apierrors.Required("safePlaceId")
	}
	req.SafePlaceID = safePlaceID
	return req, nil
}
