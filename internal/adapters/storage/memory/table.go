package memory

import (
	"fmt"
	"sync"

	"clinical-rx/internal/ports/storage"
)

// table es una lista en orden de inserción protegida por un RWMutex.
// Escrituras toman el lock exclusivo solo mientras mutan la lista.
type table[T any] struct {
	mu   sync.RWMutex
	rows []T
	used map[int64]struct{}

	idOf func(*T) *int64
	draw func() int64
}

func newTable[T any](idOf func(*T) *int64) *table[T] {
	return &table[T]{
		used: make(map[int64]struct{}),
		idOf: idOf,
		draw: randomID,
	}
}

// insert asigna un id libre. Si conflict no es nil y algún row coincide,
// devuelve storage.ErrConflict sin insertar.
func (t *table[T]) insert(v T, conflict func(T) bool) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if conflict != nil {
		for _, row := range t.rows {
			if conflict(row) {
				return v, storage.ErrConflict
			}
		}
	}
	if int64(len(t.used)) >= idSpan {
		return v, ErrIDsExhausted
	}

	id := t.draw()
	for {
		if _, taken := t.used[id]; !taken {
			break
		}
		id = t.draw()
	}

	*t.idOf(&v) = id
	t.rows = append(t.rows, v)
	t.used[id] = struct{}{}
	return v, nil
}

// insertWithID lo usa el seed: respeta el id que trae v.
func (t *table[T]) insertWithID(v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := *t.idOf(&v)
	if _, taken := t.used[id]; taken {
		return fmt.Errorf("%w: id %d", storage.ErrConflict, id)
	}
	t.rows = append(t.rows, v)
	t.used[id] = struct{}{}
	return nil
}

func (t *table[T]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, row := range t.rows {
		if match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// filter devuelve una copia; match nil = todos.
func (t *table[T]) filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if match == nil || match(row) {
			out = append(out, row)
		}
	}
	return out
}

// replace sustituye el primer row que coincide, manteniendo su posición.
func (t *table[T]) replace(match func(T) bool, v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, row := range t.rows {
		if match(row) {
			t.rows[i] = v
			return true
		}
	}
	return false
}

// remove saca el row. Su id queda en used y no se vuelve a sortear: una
// receta huérfana nunca apunta a un paciente nuevo.
func (t *table[T]) remove(match func(T) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		if match(t.rows[i]) {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return true
		}
	}
	return false
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
