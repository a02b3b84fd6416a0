package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// jsonArgs serializa documentos para columnas TEXT. nil (slice, map o
// puntero) se guarda como NULL. El primer error queda en err.
type jsonArgs struct {
	err error
}

func (j *jsonArgs) enc(v any) any {
	if j.err != nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		j.err = fmt.Errorf("encode json column: %w", err)
		return nil
	}
	if string(b) == "null" {
		return nil
	}
	return string(b)
}

// jsonCols es el inverso: NULL o vacío deja dst sin tocar.
type jsonCols struct {
	err error
}

func (j *jsonCols) dec(src sql.NullString, dst any) {
	if j.err != nil || !src.Valid || src.String == "" {
		return
	}
	if err := json.Unmarshal([]byte(src.String), dst); err != nil {
		j.err = fmt.Errorf("decode json column: %w", err)
	}
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
