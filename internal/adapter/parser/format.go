package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ross-spencer/whatsmapper/internal/domain"
)

// Format describes one export era: how a header line looks, the time
// layouts its timestamp uses, and whether unsaved contacts carry a
// leading "~ " marker that must be stripped from the sender name.
//
// Header patterns capture (timestamp, sender, first body line); notice
// patterns capture (timestamp, text) for sender-less system lines.
type Format struct {
	Name    string
	header  *regexp.Regexp
	notice  *regexp.Regexp
	layouts []string
	tilde   bool
}

// Formats is the closed set of supported export grammars, tried in
// order. Supporting a new export era means adding one entry here and a
// fixture to the tests, not editing a shared expression.
//
//	current: [D/M/YY, HH:MM:SS] Sender: Text  (optional "~ " before Sender)
//	legacy:  D/M/YY, HH:MM:SS: Sender: Text
var Formats = []Format{
	{
		Name:    "current",
		header:  regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}, \d{2}:\d{2}:\d{2})\] ([^:]+): (.*)$`),
		notice:  regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}, \d{2}:\d{2}:\d{2})\] (.*)$`),
		layouts: []string{"2/1/06, 15:04:05", "2/1/2006, 15:04:05"},
		tilde:   true,
	},
	{
		Name:    "legacy",
		header:  regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2}, \d{2}:\d{2}:\d{2}): ([^:]+): (.*)$`),
		notice:  regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2}, \d{2}:\d{2}:\d{2}): (.*)$`),
		layouts: []string{"2/1/06, 15:04:05"},
	},
}

// detectWindow bounds how many opening non-blank lines Detect inspects.
const detectWindow = 10

// Detect inspects the transcript's opening lines and returns the first
// built-in format whose grammar matches one of them. Blank lines are
// skipped. Detection is deterministic: the same input always yields the
// same format.
func Detect(lines []string) (*Format, error) {
	return detectIn(Formats, lines)
}

func detectIn(formats []Format, lines []string) (*Format, error) {
	window := make([]string, 0, detectWindow)
	for _, raw := range lines {
		line := stripInvisible(raw)
		if strings.TrimSpace(line) == "" {
			continue
		}
		window = append(window, line)
		if len(window) == detectWindow {
			break
		}
	}
	for i := range formats {
		f := &formats[i]
		for _, line := range window {
			if f.matches(line) {
				return f, nil
			}
		}
	}
	return nil, domain.ErrUnrecognizedFormat
}

// matches reports whether line is header-shaped for f, regardless of
// whether its timestamp parses.
func (f *Format) matches(line string) bool {
	return f.header.MatchString(line) || f.notice.MatchString(line)
}

// headerMatch is a successfully classified header line.
type headerMatch struct {
	stamp  string
	when   time.Time
	sender string
	body   string
}

// classify tests whether line begins a new message under f. The second
// return is false for continuation lines, including header-shaped lines
// whose timestamp does not parse.
func (f *Format) classify(line string) (headerMatch, bool) {
	if m := f.header.FindStringSubmatch(line); m != nil {
		when, err := f.parseStamp(m[1])
		if err != nil {
			return headerMatch{}, false
		}
		sender := m[2]
		if f.tilde {
			sender = strings.TrimPrefix(sender, "~ ")
		}
		return headerMatch{stamp: m[1], when: when, sender: sender, body: m[3]}, true
	}
	if m := f.notice.FindStringSubmatch(line); m != nil {
		when, err := f.parseStamp(m[1])
		if err != nil {
			return headerMatch{}, false
		}
		return headerMatch{stamp: m[1], when: when, body: m[2]}, true
	}
	return headerMatch{}, false
}

func (f *Format) parseStamp(s string) (time.Time, error) {
	var err error
	for _, layout := range f.layouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if err == nil {
		err = fmt.Errorf("format %q has no time layouts", f.Name)
	}
	return time.Time{}, err
}
