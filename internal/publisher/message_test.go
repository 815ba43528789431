package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"til_mirror/internal/domain"
)

func TestNewBuildMessage(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("KST", 9*60*60))

	body, err := newBuildMessage(&domain.SiteBuilt{
		RunID:   "run-1",
		Entries: 2,
		Feeds:   7,
		Slugs:   []string{"a", "b"},
	}, now)
	require.NoError(t, err)

	var msg BuildMessage
	require.NoError(t, json.Unmarshal(body, &msg))
	assert.Equal(t, EventSiteBuilt, msg.Event)
	assert.Equal(t, "run-1", msg.Build.RunID)
	assert.Equal(t, []string{"a", "b"}, msg.Build.Slugs)
	assert.Equal(t, []string{}, msg.Build.Removed)
	assert.Equal(t, time.UTC, msg.Timestamp.Location())
	assert.True(t, now.Equal(msg.Timestamp))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Contains(t, raw["build"], "removed")
}
