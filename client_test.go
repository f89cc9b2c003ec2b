package saferoute_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	saferoute "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE"
)

func TestClient_SafePlaceCRUD(t *testing.T) {
	t.Parallel()

	place := saferoute.SafePlace{ID: 1, Name: "Abrigo Central", Address: "Rua A", Capacity: 50}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/safe-places":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(&place)
		case r.Method == http.MethodGet && r.URL.Path == "/api/safe-places":
			_ = json.NewEncoder(w).Encode(map[string]any{"content": []saferoute.SafePlace{place}})
		case r.Method == http.MethodGet && r.URL.Path == "/api/safe-places/1":
			_ = json.NewEncoder(w).Encode(&place)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/safe-places/1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
		}
	}))
	defer srv.Close()

	c, err := saferoute.New(srv.URL+"/api", saferoute.WithHTTPTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()
	repo := c.SafePlaces()

	created, err := repo.Create(ctx, saferoute.SafePlaceRequest{Name: place.Name, Address: place.Address, Capacity: 50})
	if err != nil || created.ID != 1 {
		t.Fatalf("Create: %+v %v", created, err)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 || list[0].Name != "Abrigo Central" {
		t.Fatalf("List: %+v %v", list, err)
	}
	got, err := repo.Get(ctx, 1)
	if err != nil || got.Capacity != 50 {
		t.Fatalf("Get: %+v %v", got, err)
	}
	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	err = repo.Delete(ctx, 2)
	if saferoute.StatusCode(err) != http.StatusNotFound {
		t.Fatalf("want 404, got %v", err)
	}
	var he *saferoute.HTTPError
	if !asHTTPError(err, &he) || he.Message != "not found" {
		t.Fatalf("expected HTTPError with server message, got %v", err)
	}
}

func TestClient_UnreachableServerIsNetworkError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := saferoute.New(url + "/api")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Events().List(context.Background()); !saferoute.IsNetwork(err) {
		t.Fatalf("want NetworkError, got %v", err)
	}
}

func TestClient_BaseURL(t *testing.T) {
	t.Parallel()
	c, err := saferoute.New("http://192.168.0.149:8080/api")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "http://192.168.0.149:8080/api" {
		t.Fatalf("unexpected base URL %q", c.BaseURL())
	}
}
