package queue

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishError(t *testing.T) {
	t.Parallel()

	cause := errors.New("channel/connection is not open")
	err := fmt.Errorf("publishing: %w", newPublishError(ImageProcessingQueue, "m1", cause))

	assert.ErrorIs(t, err, ErrPublish)
	assert.ErrorIs(t, err, cause)

	var publishErr *PublishError
	require.ErrorAs(t, err, &publishErr)
	assert.Equal(t, ImageProcessingQueue, publishErr.Queue)
	assert.Equal(t, "m1", publishErr.MessageID)
	assert.Contains(t, publishErr.Error(), `"m1"`)

	assert.NotContains(t, newPublishError("q", "", cause).Error(), `""`)
}

func TestPermanent(t *testing.T) {
	t.Parallel()

	cause := errors.New("invalid payload")

	assert.NoError(t, Permanent(nil))
	assert.False(t, IsPermanent(cause))
	assert.True(t, IsPermanent(Permanent(cause)))
	assert.True(t, IsPermanent(fmt.Errorf("handler: %w", Permanent(cause))))
	assert.ErrorIs(t, Permanent(cause), cause)
	assert.Equal(t, "invalid payload", Permanent(cause).Error())
}
