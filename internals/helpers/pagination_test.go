package helper

import "testing"

func TestSafeOrderClauseWhitelist(t *testing.T) {
	allowed := map[string]string{
		"created_at": "student_created_at",
		"name":       "student_name",
	}

	cases := []struct {
		name   string
		params Params
		want   string
	}{
		{"known key asc", Params{SortBy: "name", SortOrder: "asc"}, "student_name ASC"},
		{"known key desc", Params{SortBy: "name", SortOrder: "desc"}, "student_name DESC"},
		{"unknown key falls back", Params{SortBy: "drop table", SortOrder: "asc"}, "student_created_at ASC"},
		{"empty key falls back", Params{SortOrder: "desc"}, "student_created_at DESC"},
		{"bad order defaults desc", Params{SortBy: "name", SortOrder: "sideways"}, "student_name DESC"},
	}
	for _, tc := range cases {
		got, err := tc.params.SafeOrderClause(allowed, "created_at")
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(101, Params{Page: 2, PerPage: 25})
	if m.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", m.TotalPages)
	}
	if !m.HasNext || !m.HasPrev {
		t.Errorf("page 2 of 5 should have both next and prev")
	}

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Errorf("empty result should have no pages: %+v", empty)
	}
}
