package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadarsh214/seogen/internal/config"
)

func TestNewPublisherDisabled(t *testing.T) {
	_, err := NewPublisher(nil, nil)
	assert.Error(t, err)

	_, err = NewPublisher(&config.EventsConfig{Enabled: false}, nil)
	assert.Error(t, err)
}

func TestRunCompletedEventJSON(t *testing.T) {
	event := RunCompletedEvent{
		RunID:        "a4f7c2d1",
		Status:       "succeeded",
		Pages:        120,
		Hubs:         10,
		Categories:   5,
		SitemapFiles: 7,
		Duration:     "42s",
		OutputDir:    "dist/",
		Timestamp:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "a4f7c2d1", decoded["run_id"])
	assert.Equal(t, "succeeded", decoded["status"])
	assert.Equal(t, float64(120), decoded["pages"])
	assert.Equal(t, "42s", decoded["duration"])

	// Empty error is omitted.
	_, present := decoded["error"]
	assert.False(t, present)
}
