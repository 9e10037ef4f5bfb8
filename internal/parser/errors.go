package parser

import "errors"

var (
	// ErrMalformedDocument means a required literal, tag or delimiter was
	// not found at the expected scan position: the payload does not match
	// the known page templates.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrInvalidEnvelope means the JSON envelope of an image page is
	// missing expected fields or has the wrong shape.
	ErrInvalidEnvelope = errors.New("invalid page envelope")

	// ErrInvalidImageData means the embedded base64 image payload failed
	// to decode.
	ErrInvalidImageData = errors.New("invalid image data")
)
