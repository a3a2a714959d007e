package mesh

import "errors"

var (
	ErrNonTriangularFace = errors.New("only triangular faces are supported")
	ErrMalformedLine     = errors.New("malformed line")
	ErrIndexOutOfRange   = errors.New("vertex index out of range")
	ErrNotWatertight     = errors.New("mesh is not watertight")
)
