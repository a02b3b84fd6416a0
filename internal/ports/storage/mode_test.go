package storage

import (
	"context"
	"errors"
	"testing"
)

type fakeRepo interface{ Name() string }

type named string

func (n named) Name() string { return string(n) }

func TestBackends_For_RoutesByContextMode(t *testing.T) {
	b := Backends[fakeRepo]{Memory: named("mem"), Postgres: named("pg")}

	r, err := b.For(WithMode(context.Background(), ModeMemory))
	if err != nil || r.Name() != "mem" {
		t.Fatalf("expected mem repo, got %v err=%v", r, err)
	}

	r, err = b.For(WithMode(context.Background(), ModePostgres))
	if err != nil || r.Name() != "pg" {
		t.Fatalf("expected pg repo, got %v err=%v", r, err)
	}
}

func TestBackends_For_NoModeIsAnError(t *testing.T) {
	b := Backends[fakeRepo]{Memory: named("mem")}

	if _, err := b.For(context.Background()); !errors.Is(err, ErrNoMode) {
		t.Fatalf("expected ErrNoMode, got %v", err)
	}
}

func TestBackends_For_MissingBackend(t *testing.T) {
	b := Backends[fakeRepo]{Memory: named("mem")}

	_, err := b.For(WithMode(context.Background(), ModePostgres))
	if !errors.Is(err, ErrModeUnavailable) {
		t.Fatalf("expected ErrModeUnavailable, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"memory":   ModeMemory,
		" MOCK ":   ModeMemory,
		"postgres": ModePostgres,
		"db":       ModePostgres,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseMode("redis"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestApply_SkipThenLimit(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got := Apply(items, Page{Skip: 1, Limit: 2})
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("unexpected page: %v", got)
	}
	if got := Apply(items, Page{Skip: 10, Limit: 2}); len(got) != 0 {
		t.Fatalf("expected empty page, got %v", got)
	}
	if got := Apply(items, Page{}); len(got) != 5 {
		t.Fatalf("expected default limit to include all, got %v", got)
	}
}
