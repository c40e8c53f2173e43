package parser

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/ross-spencer/whatsmapper/internal/domain"
)

// Attachment marker shapes the application emits in place of inline
// media. Exports-with-media reference the file by name; redacted
// exports substitute a fixed placeholder token.
var (
	// <attached: filename> / <Anhang: filename>
	bracketMarker = regexp.MustCompile(`^<(?:attached|Anhang): (.+)>$`)
	// filename (file attached) / filename (Datei angehängt)
	suffixMarker = regexp.MustCompile(`^(.+?)\s*(?:\(file attached\)|\(Datei angehängt\))$`)

	redactedMarker = "<Media omitted>"
)

// MediaNamePattern is the naming convention exported media files
// follow: an eight-digit sequence number, a media type token and a
// timestamp, or the older IMG-/VID-/... scheme. The convention drifts
// across application versions, so parsers accept an override.
var MediaNamePattern = regexp.MustCompile(
	`^(?:\d{8}-[A-Z]+-\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}|(?:IMG|VID|AUD|PTT|DOC|STK)-\d{8}-WA\d+)\.[0-9A-Za-z]+$`)

// resolve scans msg's body for an attachment marker and tags the
// message accordingly. Pure string classification: the named file is
// never checked for existence here. At most one attachment per message;
// the first marker line wins.
func (p *Parser) resolve(msg domain.Message) domain.Message {
	for i, line := range msg.Body {
		trimmed := strings.TrimSpace(line)

		if trimmed == redactedMarker {
			msg.Attachment = &domain.Attachment{Marker: line}
			return msg
		}

		name, ok := markerName(trimmed)
		if !ok {
			continue
		}
		if !p.media.MatchString(name) {
			// Marker present but the filename does not follow the media
			// naming convention: keep the literal text so nothing is lost.
			p.log.Info("attachment marker with unrecognized filename", zap.String("name", name))
			msg.Attachment = &domain.Attachment{Marker: line}
			return msg
		}

		msg.Attachment = &domain.Attachment{
			Filename: name,
			Kind:     KindFor(name),
			Marker:   line,
		}
		p.log.Info("resolved attachment",
			zap.String("file", name), zap.Stringer("kind", msg.Attachment.Kind))

		// Drop the marker line from the body unless it is the only line:
		// attachment-only messages keep it as their placeholder body.
		if len(msg.Body) > 1 {
			body := make([]string, 0, len(msg.Body)-1)
			body = append(body, msg.Body[:i]...)
			body = append(body, msg.Body[i+1:]...)
			msg.Body = body
		}
		return msg
	}
	return msg
}

// markerName extracts the referenced filename from an attachment marker
// line, in either the bracketed or the suffixed form.
func markerName(line string) (string, bool) {
	if m := bracketMarker.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := suffixMarker.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// KindFor classifies a media filename by extension.
func KindFor(filename string) domain.Kind {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "jpg", "jpeg", "png", "gif", "webp":
		return domain.KindImage
	case "mp4", "mov", "3gp":
		return domain.KindVideo
	case "opus", "m4a", "ogg", "mp3", "aac":
		return domain.KindAudio
	default:
		return domain.KindDocument
	}
}
