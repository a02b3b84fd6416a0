package memory

import (
	"errors"
	"math/rand"
)

// Los ids del modo memoria se sortean en [minID, maxID]. Las colisiones se
// resuelven volviendo a sortear bajo el lock de escritura de la tabla.
const (
	minID  int64 = 1000
	maxID  int64 = 9999
	idSpan       = maxID - minID + 1
)

var ErrIDsExhausted = errors.New("memory store: id range exhausted")

func randomID() int64 {
	return minID + rand.Int63n(idSpan)
}
