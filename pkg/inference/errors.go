package inference

import "errors"

// ErrService marks any failure of a classification call: agent setup,
// transport, a non-success status, or an empty completion.
var ErrService = errors.New("inference service error")
