package domain

import "errors"

// Fatal parse failures. Everything else degrades per line or per
// message and keeps the run alive.
var (
	// ErrUnrecognizedFormat means no known export format matched the
	// transcript's opening lines.
	ErrUnrecognizedFormat = errors.New("unrecognized transcript format")

	// ErrMalformedTranscript means the transcript does not begin with a
	// message header for the detected format.
	ErrMalformedTranscript = errors.New("malformed transcript")

	// ErrEmptyBody is returned when constructing a message with no body
	// lines at all.
	ErrEmptyBody = errors.New("message body must have at least one line")
)
