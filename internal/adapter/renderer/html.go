package renderer

import (
	"fmt"
	"html"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/ross-spencer/whatsmapper/internal/domain"
)

// Options configure the HTML renderer. Template and base directory are
// explicit configuration so rendering never depends on ambient file
// lookup.
type Options struct {
	// Title is the document title and page heading.
	Title string
	// Template overrides the built-in page template source.
	Template string
	// BaseDir overrides the chat's own directory as the base for embed
	// references.
	BaseDir string
	// Stats includes the summary block above the messages.
	Stats bool
	// CheckFiles downgrades embeds whose file is missing on disk to the
	// placeholder. Leave false for pure in-memory rendering.
	CheckFiles bool
	// Logger receives embed diagnostics.
	Logger *zap.Logger
}

// HTML renders a chat as a standalone HTML document.
type HTML struct {
	tmpl *template.Template
	opts Options
	log  *zap.Logger
}

func NewHTML(opts Options) (*HTML, error) {
	src := opts.Template
	if src == "" {
		src = pageTemplate
	}
	if opts.Title == "" {
		opts.Title = "Whatsmapper"
	}
	tmpl, err := template.New("page").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &HTML{tmpl: tmpl, opts: opts, log: log}, nil
}

// page is the data handed to the page template.
type page struct {
	Title   string
	Stats   *stats
	Entries []entry
}

type stats struct {
	Attachments int
	Senders     int
	Entries     int
	Extensions  int
}

// entry is one message prepared for the template: body lines already
// escaped and linkified, embed markup already built.
type entry struct {
	Stamp         string
	Sender        string
	Notice        bool
	Lines         []template.HTML
	Embed         template.HTML
	Transcription string
}

func (r *HTML) Render(w io.Writer, chat *domain.Chat) error {
	base := r.opts.BaseDir
	if base == "" {
		base = chat.Dir
	}

	p := page{Title: r.opts.Title}
	if r.opts.Stats {
		p.Stats = &stats{
			Attachments: chat.Attachments(),
			Senders:     len(chat.Senders()),
			Entries:     len(chat.Messages) - chat.Attachments(),
			Extensions:  len(chat.Extensions()),
		}
	}
	p.Entries = make([]entry, 0, len(chat.Messages))
	for i := range chat.Messages {
		p.Entries = append(p.Entries, r.entryFor(&chat.Messages[i], base))
	}
	return r.tmpl.Execute(w, p)
}

func (r *HTML) entryFor(msg *domain.Message, base string) entry {
	e := entry{
		Stamp:         msg.Stamp,
		Sender:        msg.Sender,
		Notice:        msg.Notice,
		Transcription: msg.Transcription,
	}
	// Attachment-only bodies are placeholder text; the embed stands in
	// for them.
	if !msg.MarkerOnly() {
		e.Lines = make([]template.HTML, 0, len(msg.Body))
		for _, line := range msg.Body {
			e.Lines = append(e.Lines, lineHTML(line))
		}
	}
	if msg.Attachment != nil {
		e.Embed = r.embedFor(msg.Attachment, base)
	}
	return e
}

// embedFor builds the markup standing in for an attachment: an inline
// image, a linked icon for videos and files, or the textual placeholder
// when there is no file to reference.
func (r *HTML) embedFor(att *domain.Attachment, base string) template.HTML {
	if att.Filename == "" {
		return placeholder(att.Marker)
	}

	path := filepath.Join(base, att.Filename)
	if r.opts.CheckFiles {
		if _, err := os.Stat(path); err != nil {
			r.log.Warn("attachment file missing, rendering placeholder", zap.String("path", path))
			return placeholder(att.Marker)
		}
	}

	href := html.EscapeString(path)
	switch att.Kind {
	case domain.KindImage:
		return template.HTML(fmt.Sprintf("<img src=%q alt=%q />", href, html.EscapeString(att.Filename)))
	case domain.KindVideo:
		return template.HTML(fmt.Sprintf("<a href=%q><img src=%q alt=\"video attachment\" /></a>", href, videoIcon))
	default:
		return template.HTML(fmt.Sprintf("<a href=%q><img src=%q alt=\"file attachment\" /></a>", href, fileIcon))
	}
}

func placeholder(marker string) template.HTML {
	text := marker
	if text == "" {
		text = "<Media omitted>"
	}
	return template.HTML(fmt.Sprintf("<p class=\"placeholder\">%s</p>", html.EscapeString(text)))
}

var urlPattern = regexp.MustCompile(`https?://[^\s<>"]+`)

// lineHTML escapes one body line and wraps bare http(s) URLs in
// anchors.
func lineHTML(line string) template.HTML {
	var b strings.Builder
	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(line, -1) {
		b.WriteString(html.EscapeString(line[last:loc[0]]))
		u := html.EscapeString(line[loc[0]:loc[1]])
		fmt.Fprintf(&b, "<a href=%q>%s</a>", u, u)
		last = loc[1]
	}
	b.WriteString(html.EscapeString(line[last:]))
	return template.HTML(b.String())
}

const pageTemplate = `<!DOCTYPE html>
<html>
   <head>
      <meta charset="utf-8" />
      <title>{{.Title}}</title>
   </head>
   <body>
   <h1>{{.Title}}</h1>
{{- with .Stats}}
   <ul>
      <li>attachments: {{.Attachments}}</li>
      <li>individuals: {{.Senders}}</li>
      <li>entries: {{.Entries}}</li>
      <li>file extensions: {{.Extensions}}</li>
   </ul>
{{- end}}
{{- range .Entries}}
   <div class="message{{if .Notice}} notice{{end}}">
      <p>{{.Stamp}}{{if .Sender}}: {{.Sender}}{{end}}</p>
{{- range .Lines}}
      <p>{{.}}</p>
{{- end}}
{{- with .Embed}}
      {{.}}
{{- end}}
{{- with .Transcription}}
      <p class="transcription">{{.}}</p>
{{- end}}
   </div>
{{- end}}
   </body>
</html>
`
