package graphml

import "errors"

var (
	// ErrMalformedDocument indicates a structural defect: wrong root element,
	// a reference to an undeclared key id or node id, or a missing graph element.
	ErrMalformedDocument = errors.New("graphml: malformed document")
	// ErrUnsupportedType indicates an attr.type string with no known mapping,
	// or a value kind outside the writable set.
	ErrUnsupportedType = errors.New("graphml: unsupported attribute type")
	// ErrParseValue indicates data text that does not parse as its declared kind.
	ErrParseValue = errors.New("graphml: cannot parse attribute value")
	// ErrMissingAttrValue indicates a declared attribute with no value for some
	// vertex or edge during an attributed write.
	ErrMissingAttrValue = errors.New("graphml: missing attribute value")
)
