package studies

import (
	"context"
	"errors"
	"testing"

	"github.com/ezredbiom/studysearch/internal/filter"
)

func TestRebind(t *testing.T) {
	cases := []struct {
		clause string
		want   string
	}{
		{"", ""},
		{"s.study_id = 42", "s.study_id = 42"},
		{"sp_pi.name ILIKE %s", "sp_pi.name ILIKE ?"},
		{"(s.study_title ILIKE %s OR s.study_abstract ILIKE %s)", "(s.study_title ILIKE ? OR s.study_abstract ILIKE ?)"},
	}

	for _, tc := range cases {
		if got := rebind(tc.clause); got != tc.want {
			t.Errorf("rebind(%q) = %q, want %q", tc.clause, got, tc.want)
		}
	}
}

// A filter that fails the allow-list re-check must be rejected before any
// database work happens; a nil Postgres client proves no connection is touched.
func TestSearch_RejectsDisallowedClauseBeforeQuerying(t *testing.T) {
	store := NewStore(nil)

	_, err := store.Search(context.Background(), filter.Filter{
		Clause: "s.study_id = 1; DROP TABLE qiita.study",
	})
	if !errors.Is(err, ErrStore) {
		t.Fatalf("Search() = %v, want ErrStore", err)
	}
}

func TestSearch_RejectsPlaceholderMismatchBeforeQuerying(t *testing.T) {
	store := NewStore(nil)

	_, err := store.Search(context.Background(), filter.Filter{
		Clause: "sp_pi.name ILIKE %s",
		Params: []any{"%knight%", "%extra%"},
	})
	if !errors.Is(err, ErrStore) {
		t.Fatalf("Search() = %v, want ErrStore", err)
	}
}

func TestMostVisible(t *testing.T) {
	cases := []struct {
		states []string
		want   string
	}{
		{nil, "sandbox"},
		{[]string{}, "sandbox"},
		{[]string{"sandbox"}, "sandbox"},
		{[]string{"sandbox", "private"}, "private"},
		{[]string{"awaiting_approval", "public", "private"}, "public"},
		{[]string{"bogus"}, "sandbox"},
	}

	for _, tc := range cases {
		if got := mostVisible(tc.states); got != tc.want {
			t.Errorf("mostVisible(%v) = %q, want %q", tc.states, got, tc.want)
		}
	}
}

func TestOrDefault(t *testing.T) {
	abstract := "soil bacteria in alpine meadows"
	empty := ""

	if got := orDefault(nil, DefaultAbstract); got != DefaultAbstract {
		t.Errorf("orDefault(nil) = %q", got)
	}
	if got := orDefault(&empty, DefaultAbstract); got != DefaultAbstract {
		t.Errorf("orDefault(empty) = %q", got)
	}
	if got := orDefault(&abstract, DefaultAbstract); got != abstract {
		t.Errorf("orDefault(value) = %q", got)
	}
}
