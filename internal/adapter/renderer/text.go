package renderer

import (
	"fmt"
	"io"

	"github.com/ross-spencer/whatsmapper/internal/domain"
)

// Text renders a chat as plain text, one entry per message. Markdown
// switches notice formatting to emphasis.
type Text struct {
	Markdown bool
}

func (r *Text) Render(w io.Writer, chat *domain.Chat) error {
	for i := range chat.Messages {
		line := r.formatMessage(&chat.Messages[i])
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Text) formatMessage(msg *domain.Message) string {
	if msg.Notice {
		if r.Markdown {
			return fmt.Sprintf("*[%s] %s*", msg.Stamp, msg.Text())
		}
		return fmt.Sprintf("*** [%s] %s", msg.Stamp, msg.Text())
	}

	if att := msg.Attachment; att != nil && att.Filename != "" {
		if att.Kind == domain.KindAudio && msg.Transcription != "" {
			return fmt.Sprintf("[%s] %s: [voice note] %s", msg.Stamp, msg.Sender, msg.Transcription)
		}
		line := fmt.Sprintf("[%s] %s: [%s] %s", msg.Stamp, msg.Sender, att.Kind, att.Filename)
		if !msg.MarkerOnly() {
			line = fmt.Sprintf("%s\n%s", line, msg.Text())
		}
		return line
	}

	return fmt.Sprintf("[%s] %s: %s", msg.Stamp, msg.Sender, msg.Text())
}
