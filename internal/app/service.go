package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ross-spencer/whatsmapper/internal/domain"
)

// ApplicationName is the binary and config directory name.
const ApplicationName = "whatsmap"

// ConvertOptions carry the per-run settings of a conversion.
type ConvertOptions struct {
	// From and To bound the messages kept, inclusive. Nil means
	// unbounded.
	From *time.Time
	To   *time.Time
	// Transcribe sends voice notes to the transcriber and attaches the
	// returned text to their messages.
	Transcribe bool
}

// ConvertService orchestrates the conversion pipeline.
type ConvertService struct {
	loader      domain.Loader
	parser      domain.Parser
	transcriber domain.Transcriber
	renderer    domain.Renderer
	log         *zap.Logger
}

func NewConvertService(loader domain.Loader, parser domain.Parser, transcriber domain.Transcriber, renderer domain.Renderer, log *zap.Logger) *ConvertService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ConvertService{
		loader:      loader,
		parser:      parser,
		transcriber: transcriber,
		renderer:    renderer,
		log:         log,
	}
}

// Convert runs the pipeline: load, parse, filter, transcribe, render.
func (s *ConvertService) Convert(ctx context.Context, exportPath string, opts ConvertOptions, w io.Writer) error {
	log := s.log.With(zap.String("run_id", uuid.NewString()))
	start := time.Now()

	transcript, err := s.loader.Load(exportPath)
	if err != nil {
		return fmt.Errorf("loading export: %w", err)
	}

	chat, err := s.parser.Parse(transcript)
	if err != nil {
		return fmt.Errorf("parsing transcript: %w", err)
	}
	log.Info("transcript parsed",
		zap.Int("messages", len(chat.Messages)),
		zap.Int("attachments", chat.Attachments()),
		zap.Int("senders", len(chat.Senders())))

	// The time filter runs before transcription.
	if opts.From != nil || opts.To != nil {
		before := len(chat.Messages)
		chat = chat.Filter(opts.From, opts.To)
		log.Info("time filter applied",
			zap.Int("kept", len(chat.Messages)),
			zap.Int("dropped", before-len(chat.Messages)))
	}

	if opts.Transcribe && s.transcriber != nil {
		s.transcribeVoiceNotes(ctx, log, chat)
	}

	if err := s.renderer.Render(w, chat); err != nil {
		return fmt.Errorf("rendering chat: %w", err)
	}

	log.Info("conversion complete", zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (s *ConvertService) transcribeVoiceNotes(ctx context.Context, log *zap.Logger, chat *domain.Chat) {
	for i := range chat.Messages {
		att := chat.Messages[i].Attachment
		if att == nil || att.Kind != domain.KindAudio || att.Filename == "" {
			continue
		}

		path := filepath.Join(chat.Dir, att.Filename)
		text, err := s.transcriber.Transcribe(ctx, path)
		if err != nil {
			log.Warn("transcription failed", zap.String("file", att.Filename), zap.Error(err))
			continue
		}
		chat.Messages[i].Transcription = text
	}
}
