package advanced

import "github.com/osuushi/crowdmesh/internal"

type TriangulateError = internal.TriangulateError

// Convert a recovered TriangulateError into an error. Any other panic is
// re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	return internal.HandleTriangulatePanicRecover(r)
}
