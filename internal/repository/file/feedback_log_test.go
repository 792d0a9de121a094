package file

import (
	"path/filepath"
	"testing"
	"time"

	"campus-chat-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackLogAppendAndCount(t *testing.T) {
	log := NewFeedbackLog(filepath.Join(t.TempDir(), "feedback.jsonl"))

	count, err := log.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for i := 0; i < 3; i++ {
		require.NoError(t, log.Append(&entity.Feedback{
			MessageId: "m1",
			Rating:    5,
			Comment:   "helpful",
			Timestamp: time.Now(),
		}))
	}

	count, err = log.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
