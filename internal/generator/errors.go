package generator

import "errors"

var (
	// ErrOutputDir reports that the output directory could not be created.
	ErrOutputDir = errors.New("cannot create output directory")

	// ErrExport reports that a backend failed to produce an output file.
	ErrExport = errors.New("diagram export failed")
)
