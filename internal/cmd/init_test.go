package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "sk-proj***xyz", maskKey("sk-proj-abcdefxyz"))
	assert.Equal(t, "0123456***789", maskKey("0123456789"))
	assert.Equal(t, "***", maskKey("sk-short"))
	assert.Equal(t, "***", maskKey(""))
}
