package app

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ross-spencer/whatsmapper/internal/domain"
)

type fakeLoader struct {
	transcript *domain.Transcript
	err        error
	gotPath    string
}

func (l *fakeLoader) Load(path string) (*domain.Transcript, error) {
	l.gotPath = path
	return l.transcript, l.err
}

type fakeParser struct {
	chat *domain.Chat
	err  error
}

func (p *fakeParser) Parse(*domain.Transcript) (*domain.Chat, error) {
	return p.chat, p.err
}

type fakeTranscriber struct {
	text     string
	err      error
	gotPaths []string
}

func (t *fakeTranscriber) Transcribe(_ context.Context, audioPath string) (string, error) {
	t.gotPaths = append(t.gotPaths, audioPath)
	return t.text, t.err
}

type fakeRenderer struct {
	gotChat *domain.Chat
	err     error
}

func (r *fakeRenderer) Render(w io.Writer, chat *domain.Chat) error {
	r.gotChat = chat
	if r.err != nil {
		return r.err
	}
	for i := range chat.Messages {
		if _, err := io.WriteString(w, chat.Messages[i].Text()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func msgAt(ts time.Time, sender, body string) domain.Message {
	return domain.Message{Stamp: ts.Format("2/1/06, 15:04:05"), Timestamp: ts, Sender: sender, Body: []string{body}}
}

func TestConvertPipeline(t *testing.T) {
	chat := &domain.Chat{Messages: []domain.Message{
		msgAt(time.Now(), "Alice", "hello"),
		msgAt(time.Now(), "Bob", "hi"),
	}}
	loader := &fakeLoader{transcript: &domain.Transcript{Dir: "/exports"}}
	renderer := &fakeRenderer{}
	svc := NewConvertService(loader, &fakeParser{chat: chat}, nil, renderer, nil)

	var out strings.Builder
	err := svc.Convert(context.Background(), "/exports/chat.zip", ConvertOptions{}, &out)
	require.NoError(t, err)

	assert.Equal(t, "/exports/chat.zip", loader.gotPath)
	assert.Same(t, chat, renderer.gotChat)
	assert.Equal(t, "hello\nhi\n", out.String())
}

func TestConvertAppliesTimeFilter(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 12, d, 12, 0, 0, 0, time.UTC) }
	chat := &domain.Chat{Messages: []domain.Message{
		msgAt(day(1), "Alice", "too early"),
		msgAt(day(5), "Bob", "kept"),
		msgAt(day(9), "Alice", "too late"),
	}}
	renderer := &fakeRenderer{}
	svc := NewConvertService(&fakeLoader{transcript: &domain.Transcript{}}, &fakeParser{chat: chat}, nil, renderer, nil)

	from, to := day(3), day(7)
	var out strings.Builder
	err := svc.Convert(context.Background(), "x", ConvertOptions{From: &from, To: &to}, &out)
	require.NoError(t, err)

	require.Len(t, renderer.gotChat.Messages, 1)
	assert.Equal(t, "kept", renderer.gotChat.Messages[0].Text())
}

func TestConvertTranscribesVoiceNotes(t *testing.T) {
	voice := msgAt(time.Now(), "Bob", "PTT-20240101-WA0003.opus (file attached)")
	voice.Attachment = &domain.Attachment{
		Filename: "PTT-20240101-WA0003.opus",
		Kind:     domain.KindAudio,
		Marker:   "PTT-20240101-WA0003.opus (file attached)",
	}
	chat := &domain.Chat{Dir: "/exports/unpacked", Messages: []domain.Message{
		msgAt(time.Now(), "Alice", "plain text"),
		voice,
	}}
	transcriber := &fakeTranscriber{text: "on my way"}
	renderer := &fakeRenderer{}
	svc := NewConvertService(&fakeLoader{transcript: &domain.Transcript{}}, &fakeParser{chat: chat}, transcriber, renderer, nil)

	var out strings.Builder
	err := svc.Convert(context.Background(), "x", ConvertOptions{Transcribe: true}, &out)
	require.NoError(t, err)

	want := filepath.Join("/exports/unpacked", "PTT-20240101-WA0003.opus")
	assert.Equal(t, []string{want}, transcriber.gotPaths)
	assert.Equal(t, "on my way", renderer.gotChat.Messages[1].Transcription)
	assert.Empty(t, renderer.gotChat.Messages[0].Transcription)
}

func TestConvertTranscriptionDisabledByDefault(t *testing.T) {
	voice := msgAt(time.Now(), "Bob", "PTT-20240101-WA0003.opus (file attached)")
	voice.Attachment = &domain.Attachment{Filename: "PTT-20240101-WA0003.opus", Kind: domain.KindAudio}
	chat := &domain.Chat{Messages: []domain.Message{voice}}
	transcriber := &fakeTranscriber{text: "never used"}
	svc := NewConvertService(&fakeLoader{transcript: &domain.Transcript{}}, &fakeParser{chat: chat}, transcriber, &fakeRenderer{}, nil)

	var out strings.Builder
	err := svc.Convert(context.Background(), "x", ConvertOptions{}, &out)
	require.NoError(t, err)
	assert.Empty(t, transcriber.gotPaths)
}

func TestConvertTranscriberErrorIsNonFatal(t *testing.T) {
	voice := msgAt(time.Now(), "Bob", "PTT-20240101-WA0003.opus (file attached)")
	voice.Attachment = &domain.Attachment{Filename: "PTT-20240101-WA0003.opus", Kind: domain.KindAudio}
	chat := &domain.Chat{Messages: []domain.Message{voice}}
	transcriber := &fakeTranscriber{err: errors.New("api unreachable")}
	renderer := &fakeRenderer{}
	svc := NewConvertService(&fakeLoader{transcript: &domain.Transcript{}}, &fakeParser{chat: chat}, transcriber, renderer, nil)

	var out strings.Builder
	err := svc.Convert(context.Background(), "x", ConvertOptions{Transcribe: true}, &out)
	require.NoError(t, err)
	assert.Empty(t, renderer.gotChat.Messages[0].Transcription)
}

func TestConvertLoadErrorAborts(t *testing.T) {
	loadErr := errors.New("no such export")
	svc := NewConvertService(&fakeLoader{err: loadErr}, &fakeParser{}, nil, &fakeRenderer{}, nil)

	err := svc.Convert(context.Background(), "x", ConvertOptions{}, io.Discard)
	require.ErrorIs(t, err, loadErr)
}

func TestConvertParseErrorAborts(t *testing.T) {
	svc := NewConvertService(
		&fakeLoader{transcript: &domain.Transcript{}},
		&fakeParser{err: domain.ErrUnrecognizedFormat},
		nil, &fakeRenderer{}, nil)

	err := svc.Convert(context.Background(), "x", ConvertOptions{}, io.Discard)
	require.ErrorIs(t, err, domain.ErrUnrecognizedFormat)
}

func TestConvertRenderErrorAborts(t *testing.T) {
	renderErr := errors.New("sink closed")
	svc := NewConvertService(
		&fakeLoader{transcript: &domain.Transcript{}},
		&fakeParser{chat: &domain.Chat{}},
		nil, &fakeRenderer{err: renderErr}, nil)

	err := svc.Convert(context.Background(), "x", ConvertOptions{}, io.Discard)
	require.ErrorIs(t, err, renderErr)
}
