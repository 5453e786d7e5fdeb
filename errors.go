package properties

import "errors"

var (
	// ErrSourceType indicates a load source that is neither a string nor a readable object.
	ErrSourceType = errors.New("unsupported source type")
	// ErrDestinationType indicates a dump destination that is neither a path nor a writable object.
	ErrDestinationType = errors.New("unsupported destination type")
	// ErrOpenOutput indicates an output file could not be opened for writing.
	ErrOpenOutput = errors.New("failed to open output file")
)
