package blueprint

import "errors"

var (
	// ErrSerialize indicates the document could not be rendered or compressed.
	ErrSerialize = errors.New("blueprint: cannot serialize document")
	// ErrVersion indicates an unsupported leading version character.
	ErrVersion = errors.New("blueprint: unsupported version prefix")
	// ErrDecode indicates the string body could not be decoded back to a document.
	ErrDecode = errors.New("blueprint: cannot decode string")
)
