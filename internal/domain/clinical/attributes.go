// Package clinical contiene tipos compartidos por los módulos clínicos.
package clinical

// Attributes es un documento libre (labs, alergias, factores de riesgo...).
// Se guarda tal cual; solo se exige que sea un objeto JSON.
type Attributes map[string]any

// Patch sobrescribe dst solo si v viene presente (PATCH con punteros).
func Patch[T any](dst *T, v *T) bool {
	if v == nil {
		return false
	}
	*dst = *v
	return true
}
