package core

import "errors"

var (
	// ErrVertexCount indicates a negative vertex count passed to NewGraph.
	ErrVertexCount = errors.New("core: vertex count must be non-negative")
	// ErrVertexIndex indicates a vertex index outside 1..VertexCount().
	ErrVertexIndex = errors.New("core: vertex index out of range")
	// ErrKindMismatch indicates a value whose kind differs from the declared table kind.
	ErrKindMismatch = errors.New("core: attribute value kind mismatch")
	// ErrAttrRedeclared indicates an attribute name declared twice in the same scope.
	ErrAttrRedeclared = errors.New("core: attribute already declared")
)
