package domain

import (
	"strings"
	"time"
)

// Kind classifies an attachment by media type.
type Kind int

const (
	KindNone Kind = iota
	KindImage
	KindVideo
	KindAudio
	KindDocument
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	case KindAudio:
		return "audio"
	case KindDocument:
		return "document"
	default:
		return "none"
	}
}

// Attachment references a media file exported alongside the transcript.
// Redacted exports mention media without shipping the file; those carry
// an empty Filename and KindNone.
type Attachment struct {
	Filename string
	Kind     Kind
	// Marker is the literal marker text as it appeared in the transcript
	// (e.g. "<Media omitted>" or "xyz.jpg (file attached)").
	Marker string
}

// Message is one chat entry in transcript order.
type Message struct {
	// Stamp is the timestamp text exactly as written in the export.
	Stamp string
	// Timestamp is the parsed form of Stamp.
	Timestamp time.Time
	// Sender is the display name; empty for system notices.
	Sender string
	// Body holds the message text line by line. Blank lines inside a
	// message are kept as empty strings. Never zero-length.
	Body []string
	// Attachment is nil when the message references no media.
	Attachment *Attachment
	// Notice marks sender-less entries (group membership and encryption
	// notices).
	Notice bool
	// Transcription holds transcribed voice note text, filled in after
	// parsing when transcription is enabled.
	Transcription string
}

// NewMessage builds a validated Message. A message must carry at least
// one body line; an empty sender marks a system notice.
func NewMessage(stamp string, ts time.Time, sender string, body []string) (Message, error) {
	if len(body) == 0 {
		return Message{}, ErrEmptyBody
	}
	return Message{
		Stamp:     stamp,
		Timestamp: ts,
		Sender:    sender,
		Body:      append([]string(nil), body...),
		Notice:    sender == "",
	}, nil
}

// Text returns the body joined with line breaks.
func (m Message) Text() string {
	return strings.Join(m.Body, "\n")
}

// MarkerOnly reports whether the body consists of nothing but the
// attachment marker text, as with attachment-only messages.
func (m Message) MarkerOnly() bool {
	return m.Attachment != nil && len(m.Body) == 1 && m.Body[0] == m.Attachment.Marker
}
