package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendStatus_Terminal(t *testing.T) {
	t.Parallel()

	assert.False(t, SendStatusSetupped.Terminal())
	assert.True(t, SendStatusSent.Terminal())
	assert.True(t, SendStatusSkipped.Terminal())
	assert.True(t, SendStatusFailed.Terminal())
}
