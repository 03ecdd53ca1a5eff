package launcher

import "errors"

var (
	// ErrStartCompanion means the companion program could not be started.
	ErrStartCompanion = errors.New("failed to start companion program")
	// ErrReplaceUnsupported is returned by replaceProcess on platforms
	// without exec(2).
	ErrReplaceUnsupported = errors.New("process replacement is not supported on this platform")
)
