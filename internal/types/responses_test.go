package types

import (
	"encoding/json"
	"testing"
)

func TestList_AcceptsBothShapes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		body string
		want int
	}{
		{`[{"id":1,"name":"a"},{"id":2,"name":"b"}]`, 2},
		{`{"content":[{"id":1,"name":"a"}],"totalElements":1}`, 1},
		{`{"content":null}`, 0},
		{`[]`, 0},
		{`null`, 0},
		{`{"content":[{"id":1},{"id":2},{"id":3}],"number":0,"size":3}`, 3},
	}
	for _, tc := range cases {
		body, want := tc.body, tc.want
		var l List[ResourceType]
		if err := json.Unmarshal([]byte(body), &l); err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		if got := len(l.Items()); got != want {
			t.Fatalf("%s: want %d items got %d", body, want, got)
		}
		if l.Items() == nil {
			t.Fatalf("%s: Items must never be nil", body)
		}
	}
}

func TestList_RejectsScalars(t *testing.T) {
	t.Parallel()
	var l List[SafePlace]
	if err := json.Unmarshal([]byte(`"oops"`), &l); err == nil {
		t.Fatal("expected error for scalar body")
	}
}

func TestParseRiskLevel(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]RiskLevel{"High": RiskHigh, "LOW": RiskLow, " medium ": RiskMedium} {
		got, err := ParseRiskLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseRiskLevel(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseRiskLevel("extreme"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if RiskHigh.Label() != "Alto" {
		t.Fatalf("unexpected label %q", RiskHigh.Label())
	}
}

func TestResource_TypeNameKeys(t *testing.T) {
	t.Parallel()
	cases := []struct {
		body string
		want string
	}{
		{`{"id":1,"resourceTypeId":3,"resourceType":"Cobertor"}`, "Cobertor"},
		{`{"id":1,"resourceTypeId":3,"resourceTypeName":"Cobertor"}`, "Cobertor"},
		{`{"id":1,"resourceTypeId":3,"resourceType":{"id":3,"name":"Cobertor"}}`, ""},
		{`{"id":1,"resourceTypeId":3}`, ""},
	}
	for _, tc := range cases {
		body, want := tc.body, tc.want
		var r Resource
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		if r.ResourceTypeName != want {
			t.Fatalf("%s: want name %q got %q", body, want, r.ResourceTypeName)
		}
		if r.ID != 1 || r.ResourceTypeID != 3 {
			t.Fatalf("%s: ids not decoded: %+v", body, r)
		}
	}

	var l List[Resource]
	if err := json.Unmarshal([]byte(`{"content":[{"id":1,"resourceType":"Água"}]}`), &l); err != nil {
		t.Fatal(err)
	}
	if got := l.Items()[0].ResourceTypeName; got != "Água" {
		t.Fatalf("enveloped resource: want %q got %q", "Água", got)
	}
}
