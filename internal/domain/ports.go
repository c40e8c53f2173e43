package domain

import (
	"context"
	"io"
)

// Loader resolves an export path (zip archive, extracted directory or
// plain chat text file) into a Transcript.
type Loader interface {
	Load(path string) (*Transcript, error)
}

// Parser converts a Transcript into an ordered Chat.
type Parser interface {
	Parse(t *Transcript) (*Chat, error)
}

// Transcriber transcribes an audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Renderer renders a Chat to an output writer.
type Renderer interface {
	Render(w io.Writer, chat *Chat) error
}
