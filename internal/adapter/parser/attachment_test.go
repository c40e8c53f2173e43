package parser

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ross-spencer/whatsmapper/internal/domain"
)

func TestResolveRedactedMarker(t *testing.T) {
	chat := parse(t, "[9/12/24, 08:54:43] ~ Bob: <Media omitted>")

	require.Len(t, chat.Messages, 1)
	msg := chat.Messages[0]
	assert.Equal(t, "Bob", msg.Sender)
	require.NotNil(t, msg.Attachment)
	assert.Empty(t, msg.Attachment.Filename)
	assert.Equal(t, domain.KindNone, msg.Attachment.Kind)
	assert.Equal(t, "<Media omitted>", msg.Attachment.Marker)
}

func TestResolveFileAttachedMarker(t *testing.T) {
	chat := parse(t, "[9/12/24, 08:54:43] Carol: 00000002-PHOTO-2017-05-24-06-15-02.jpg (file attached)")

	require.Len(t, chat.Messages, 1)
	msg := chat.Messages[0]
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "00000002-PHOTO-2017-05-24-06-15-02.jpg", msg.Attachment.Filename)
	assert.Equal(t, domain.KindImage, msg.Attachment.Kind)
	// The marker is the whole body, so it stays as the placeholder.
	assert.True(t, msg.MarkerOnly())
}

func TestResolveBracketMarker(t *testing.T) {
	chat := parse(t, "[9/12/24, 08:54:43] Bob: <attached: 00000012-AUDIO-2019-01-01-12-00-00.opus>")

	require.Len(t, chat.Messages, 1)
	msg := chat.Messages[0]
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "00000012-AUDIO-2019-01-01-12-00-00.opus", msg.Attachment.Filename)
	assert.Equal(t, domain.KindAudio, msg.Attachment.Kind)
}

func TestResolveShortNamingScheme(t *testing.T) {
	chat := parse(t, "[9/12/24, 08:54:43] Bob: IMG-20240101-WA0001.jpg (file attached)")

	require.Len(t, chat.Messages, 1)
	msg := chat.Messages[0]
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "IMG-20240101-WA0001.jpg", msg.Attachment.Filename)
	assert.Equal(t, domain.KindImage, msg.Attachment.Kind)
}

func TestResolveRemovesMarkerWhenCaptionPresent(t *testing.T) {
	chat := parse(t,
		"[9/12/24, 08:54:43] Carol: 00000002-PHOTO-2017-05-24-06-15-02.jpg (file attached)",
		"sunset at the beach",
	)

	require.Len(t, chat.Messages, 1)
	msg := chat.Messages[0]
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, []string{"sunset at the beach"}, msg.Body)
	assert.False(t, msg.MarkerOnly())
}

func TestResolveUnrecognizedFilenameKeepsLiteralText(t *testing.T) {
	line := "[9/12/24, 08:54:43] Bob: weird-name.xyz (file attached)"
	chat := parse(t, line)

	require.Len(t, chat.Messages, 1)
	msg := chat.Messages[0]
	require.NotNil(t, msg.Attachment)
	assert.Empty(t, msg.Attachment.Filename)
	assert.Equal(t, domain.KindNone, msg.Attachment.Kind)
	assert.Equal(t, []string{"weird-name.xyz (file attached)"}, msg.Body)
}

func TestResolvePlainMessagePassesThrough(t *testing.T) {
	chat := parse(t, "[9/12/24, 08:54:43] Bob: just words")

	require.Len(t, chat.Messages, 1)
	assert.Nil(t, chat.Messages[0].Attachment)
}

func TestResolveCustomMediaNamePattern(t *testing.T) {
	p := New(Options{MediaNamePattern: regexp.MustCompile(`^[a-z]+\.[a-z]{3}$`)})

	chat, err := p.Parse(&domain.Transcript{Lines: []string{
		"[9/12/24, 08:54:43] Bob: holiday.png (file attached)",
	}})
	require.NoError(t, err)
	require.Len(t, chat.Messages, 1)
	msg := chat.Messages[0]
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "holiday.png", msg.Attachment.Filename)
	assert.Equal(t, domain.KindImage, msg.Attachment.Kind)
}

func TestKindFor(t *testing.T) {
	assert.Equal(t, domain.KindImage, KindFor("a.jpg"))
	assert.Equal(t, domain.KindImage, KindFor("a.PNG"))
	assert.Equal(t, domain.KindVideo, KindFor("a.mp4"))
	assert.Equal(t, domain.KindAudio, KindFor("a.opus"))
	assert.Equal(t, domain.KindAudio, KindFor("a.m4a"))
	assert.Equal(t, domain.KindDocument, KindFor("a.pdf"))
	assert.Equal(t, domain.KindDocument, KindFor("noextension"))
}
