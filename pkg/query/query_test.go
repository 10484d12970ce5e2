package query_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/litterlens/pkg/query"
)

func projection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "records", "r").
		Project("id", "ID").
		Project("score", "Score").
		Project("created_at", "CreatedAt")
}

func TestProjection(t *testing.T) {
	p := projection()

	if got := p.From(); got != "public.records r" {
		t.Errorf("From: got %q", got)
	}
	if got := p.Columns(); got != "r.id, r.score, r.created_at" {
		t.Errorf("Columns: got %q", got)
	}
	if got := p.Column("Score"); got != "r.score" {
		t.Errorf("Column(Score): got %q", got)
	}
	if got := p.Column("unmapped"); got != "unmapped" {
		t.Errorf("Column(unmapped): got %q", got)
	}
}

func TestBuildWithoutSort(t *testing.T) {
	got := query.NewBuilder(projection()).Build()
	want := "SELECT r.id, r.score, r.created_at FROM public.records r"
	if got != want {
		t.Errorf("Build:\n got  %q\n want %q", got, want)
	}
}

func TestBuildDefaultSort(t *testing.T) {
	b := query.NewBuilder(projection(), query.SortField{Field: "Score", Descending: true})
	want := "SELECT r.id, r.score, r.created_at FROM public.records r ORDER BY r.score DESC"
	if got := b.Build(); got != want {
		t.Errorf("Build:\n got  %q\n want %q", got, want)
	}
}

func TestOrderByOverridesDefault(t *testing.T) {
	b := query.NewBuilder(projection(), query.SortField{Field: "Score", Descending: true}).
		OrderByFields(query.SortField{Field: "CreatedAt"}, query.SortField{Field: "ID", Descending: true})

	want := "SELECT r.id, r.score, r.created_at FROM public.records r ORDER BY r.created_at ASC, r.id DESC"
	if got := b.Build(); got != want {
		t.Errorf("Build:\n got  %q\n want %q", got, want)
	}
}

func TestBuildLimit(t *testing.T) {
	b := query.NewBuilder(projection(), query.SortField{Field: "Score", Descending: true})
	sql, args := b.BuildLimit(5)

	want := "SELECT r.id, r.score, r.created_at FROM public.records r ORDER BY r.score DESC LIMIT $1"
	if sql != want {
		t.Errorf("sql:\n got  %q\n want %q", sql, want)
	}
	if diff := cmp.Diff([]any{5}, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}
