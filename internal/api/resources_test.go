package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
	"github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/types"
)

func TestListResourcesBySafePlace_Query(t *testing.T) {
	t.Parallel()
	tr := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/resources" || r.URL.Query().Get("safePlaceId") != "12" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`[{"id":1,"resourceTypeId":2,"availableQuantity":30,"safePlaceId":12}]`))
	})
	got, err := ListResourcesBySafePlace(context.Background(), tr, 12)
	if err != nil || len(got) != 1 || got[0].AvailableQuantity != 30 {
		t.Fatalf("ListResourcesBySafePlace: %+v %v", got, err)
	}
}

func TestResources_Mutations(t *testing.T) {
	t.Parallel()
	tr := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/resources":
			var in types.ResourceRequest
			_ = json.NewDecoder(r.Body).Decode(&in)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(types.Resource{ID: 1, ResourceTypeID: in.ResourceTypeID, AvailableQuantity: in.AvailableQuantity, SafePlaceID: in.SafePlaceID})
		case r.Method == http.MethodGet && r.URL.Path == "/api/resources/1":
			_, _ = w.Write([]byte(`{"id":1}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/resources/1":
			_, _ = w.Write([]byte(`{"id":1,"availableQuantity":5}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/resources/1":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodGet && r.URL.Path == "/api/resource-types":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Água"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()
	created, err := CreateResource(ctx, tr, types.ResourceRequest{ResourceTypeID: 2, AvailableQuantity: 3, SafePlaceID: 4})
	if err != nil || created.SafePlaceID != 4 || created.AvailableQuantity != 3 {
		t.Fatalf("CreateResource: %+v %v", created, err)
	}
	if r, err := GetResource(ctx, tr, 1); err != nil || r.ID != 1 {
		t.Fatalf("GetResource: %+v %v", r, err)
	}
	if r, err := UpdateResource(ctx, tr, 1, types.ResourceRequest{AvailableQuantity: 5, SafePlaceID: 4}); err != nil || r.AvailableQuantity != 5 {
		t.Fatalf("UpdateResource: %+v %v", r, err)
	}
	if err := DeleteResource(ctx, tr, 1); err != nil {
		t.Fatalf("DeleteResource: %v", err)
	}
	if ts, err := ListResourceTypes(ctx, tr); err != nil || len(ts) != 1 || ts[0].Name != "Água" {
		t.Fatalf("ListResourceTypes: %+v %v", ts, err)
	}
}

func TestResources_RequireSafePlace(t *testing.T) {
	t.Parallel()
	rq := &countingRequester{}
	ctx := context.Background()
	if _, err := ListResourcesBySafePlace(ctx, rq, 0); !apierrors.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
	if _, err := CreateResource(ctx, rq, types.ResourceRequest{ResourceTypeID: 1, AvailableQuantity: 1}); !apierrors.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
	if rq.calls != 0 {
		t.Fatalf("expected no requests, got %d", rq.calls)
	}
}
