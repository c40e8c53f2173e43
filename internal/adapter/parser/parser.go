package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ross-spencer/whatsmapper/internal/domain"
)

// Parser folds transcript lines into ordered messages. A single Parser
// holds no per-run state and may be shared across goroutines.
type Parser struct {
	formats []Format
	media   *regexp.Regexp
	log     *zap.Logger
}

// Options adjust parsing behavior. The zero value selects the built-in
// formats and media naming convention and disables logging.
type Options struct {
	// Formats overrides the built-in format set.
	Formats []Format
	// MediaNamePattern overrides the naming convention used to accept
	// attachment filenames found in marker lines.
	MediaNamePattern *regexp.Regexp
	// Logger receives attachment and per-line diagnostics.
	Logger *zap.Logger
}

func New(opts Options) *Parser {
	p := &Parser{
		formats: opts.Formats,
		media:   opts.MediaNamePattern,
		log:     opts.Logger,
	}
	if p.formats == nil {
		p.formats = Formats
	}
	if p.media == nil {
		p.media = MediaNamePattern
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	return p
}

// Parse assembles the transcript's lines into messages: a header line
// opens a new message, every other line continues the one under
// construction. Messages are emitted in transcript order; timestamps
// are never used to reorder.
func (p *Parser) Parse(t *domain.Transcript) (*domain.Chat, error) {
	format, err := detectIn(p.formats, t.Lines)
	if err != nil {
		return nil, err
	}
	p.log.Debug("detected format", zap.String("format", format.Name))

	chat := &domain.Chat{Dir: t.Dir}
	var cur *builder
	for i, raw := range t.Lines {
		line := stripInvisible(raw)

		// Blank lines before the first message belong to nothing.
		if cur == nil && strings.TrimSpace(line) == "" {
			continue
		}

		match, ok := format.classify(line)
		if !ok {
			if cur == nil {
				return nil, fmt.Errorf("%w: first line is not a message header", domain.ErrMalformedTranscript)
			}
			if format.matches(line) {
				p.log.Debug("header-shaped line demoted to continuation",
					zap.Int("line", i+1), zap.String("text", line))
			}
			cur.lines = append(cur.lines, line)
			continue
		}

		if cur != nil {
			if err := p.emit(chat, cur); err != nil {
				return nil, err
			}
		}
		cur = &builder{
			stamp:  match.stamp,
			when:   match.when,
			sender: match.sender,
			lines:  []string{match.body},
		}
	}
	if cur != nil {
		if err := p.emit(chat, cur); err != nil {
			return nil, err
		}
	}
	return chat, nil
}

// builder accumulates one message until the next header closes it.
type builder struct {
	stamp  string
	when   time.Time
	sender string
	lines  []string
}

func (p *Parser) emit(chat *domain.Chat, b *builder) error {
	msg, err := domain.NewMessage(b.stamp, b.when, b.sender, b.lines)
	if err != nil {
		return fmt.Errorf("assembling message at %s: %w", b.stamp, err)
	}
	chat.Messages = append(chat.Messages, p.resolve(msg))
	return nil
}

// stripInvisible removes Unicode control characters WhatsApp embeds in
// exported lines (LTR/RTL marks, zero-width spaces, BOM). Matching and
// stored body text both use the stripped form.
func stripInvisible(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\u200e', '\u200f': // LTR / RTL mark
			return -1
		case '\u200b', '\u200c', '\u200d': // zero-width spaces
			return -1
		case '\ufeff': // BOM
			return -1
		default:
			return r
		}
	}, s)
}
