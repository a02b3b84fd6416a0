package storage

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page es el par skip/limit de los listados.
type Page struct {
	Skip  int
	Limit int
}

// Normalize aplica defaults: limit <= 0 usa DefaultLimit, skip negativo es 0.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Apply recorta items según la página (skip, luego limit).
func Apply[T any](items []T, p Page) []T {
	p = p.Normalize()
	if p.Skip >= len(items) {
		return []T{}
	}
	items = items[p.Skip:]
	if len(items) > p.Limit {
		items = items[:p.Limit]
	}
	return items
}
