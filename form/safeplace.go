package form

import (
	"strconv"
	"strings"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

// SafePlaceForm is the create/edit form of the safe places screen. Every
// field is mandatory.
type SafePlaceForm struct {
	ID        int64
	Name      string
	Address   string
	Latitude  string
	Longitude string
	Capacity  string
}

// EditSafePlaceForm pre-populates the form from an existing place.
func EditSafePlaceForm(p types.SafePlace) *SafePlaceForm {
	return &SafePlaceForm{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		Latitude:  FormatFloat(p.Latitude),
		Longitude: FormatFloat(p.Longitude),
		Capacity:  strconv.Itoa(p.Capacity),
	}
}

// Editing reports whether the form updates an existing place.
func (f *SafePlaceForm) Editing() bool { return f.ID != 0 }

// Payload validates the form.
func (f *SafePlaceForm) Payload() (types.SafePlaceRequest, error) {
	var (
		req types.SafePlaceRequest
		err error
	)
	if req.Name = strings.TrimSpace(f.Name); req.Name == "" {
		return req, apierrors.Required("name")
	}
	if req.Address = strings.TrimSpace(f.Address); req.Address == "" {
		return req, apierrors.Required("address")
	}
	if req.Latitude, err = ParseLatitude(f.Latitude); err != nil {
		return req, err
	}
	if req.Longitude, err = ParseLongitude(f.Longitude); err != nil {
		return req, err
	}
	if req.Capacity, err = ParseNonNegativeInt("capacity", f.Capacity); err != nil {
		return req, err
	}
	return req, nil
}
