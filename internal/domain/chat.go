package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// Transcript is the raw material handed to a Parser: the export's text
// lines plus the directory attachment filenames resolve against. The
// directory is never read during parsing.
type Transcript struct {
	Dir   string
	Lines []string
}

// Chat is the ordered result of parsing one transcript. Message order
// is transcript order, which is not necessarily timestamp order.
type Chat struct {
	Dir      string
	Messages []Message
}

// Filter returns a new Chat containing only messages within the given
// time range. nil values for from/to mean no lower/upper bound.
func (c *Chat) Filter(from, to *time.Time) *Chat {
	filtered := &Chat{Dir: c.Dir}
	for _, msg := range c.Messages {
		if from != nil && msg.Timestamp.Before(*from) {
			continue
		}
		if to != nil && msg.Timestamp.After(*to) {
			continue
		}
		filtered.Messages = append(filtered.Messages, msg)
	}
	return filtered
}

// Senders returns the distinct sender names in first-seen order.
// Notices carry no sender and do not count.
func (c *Chat) Senders() []string {
	seen := make(map[string]bool)
	var senders []string
	for _, msg := range c.Messages {
		if msg.Sender == "" || seen[msg.Sender] {
			continue
		}
		seen[msg.Sender] = true
		senders = append(senders, msg.Sender)
	}
	return senders
}

// Attachments returns the number of attachment-bearing messages,
// redacted ones included.
func (c *Chat) Attachments() int {
	n := 0
	for _, msg := range c.Messages {
		if msg.Attachment != nil {
			n++
		}
	}
	return n
}

// Extensions returns the distinct attachment file extensions in
// first-seen order, lower-cased, without the leading dot.
func (c *Chat) Extensions() []string {
	seen := make(map[string]bool)
	var exts []string
	for _, msg := range c.Messages {
		if msg.Attachment == nil || msg.Attachment.Filename == "" {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(msg.Attachment.Filename), "."))
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		exts = append(exts, ext)
	}
	return exts
}
