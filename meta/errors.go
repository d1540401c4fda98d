package meta

import "errors"

var (
	// ErrUnknownTag indicates a tag name with no entry in the database.
	ErrUnknownTag = errors.New("meta: unknown tag")

	// ErrDisallowedAttribute indicates an attribute that is neither
	// tag-specific nor an admitted global attribute.
	ErrDisallowedAttribute = errors.New("meta: attribute not allowed")

	// ErrDisallowedChild indicates a child element whose tag is not in the
	// parent's permitted set.
	ErrDisallowedChild = errors.New("meta: child element not allowed")

	// ErrDisallowedText indicates text content under an element whose content
	// model does not admit text.
	ErrDisallowedText = errors.New("meta: text content not allowed")

	// ErrBadRecord indicates a malformed element record.
	ErrBadRecord = errors.New("meta: bad element record")
)
