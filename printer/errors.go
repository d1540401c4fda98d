package printer

import "errors"

var (
	// ErrPreserialized is returned by the plain-text renderer when the tree
	// contains a pre-serialized node, whose original structure is gone.
	ErrPreserialized = errors.New("printer: cannot render pre-serialized HTML as plain text")

	// ErrNotElement is returned by Preserialize for non-element roots.
	ErrNotElement = errors.New("printer: can only preserialize element nodes")

	// ErrUnsupportedFormat is returned by Print when Options.Format is not
	// one of the defined Format values.
	ErrUnsupportedFormat = errors.New("printer: unsupported output format")
)
