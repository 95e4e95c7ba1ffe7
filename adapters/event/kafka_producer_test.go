package event

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-builder/internal/config"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

func TestPayloadTopic(t *testing.T) {
	assert.Equal(t, TopicExportEvents, ResumeEventPayload{EventType: ResumeEventExported}.Topic())
	assert.Equal(t, TopicResumeEvents, ResumeEventPayload{EventType: ResumeEventUpdated}.Topic())
	assert.Equal(t, TopicResumeEvents, ResumeEventPayload{EventType: ResumeEventDeleted}.Topic())
}

func TestPayloadJSON(t *testing.T) {
	id := uuid.New()
	raw, err := json.Marshal(ResumeEventPayload{EventType: ResumeEventDeleted, ResumeID: id, OwnerID: id})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "deleted", m["event_type"])
	assert.Equal(t, id.String(), m["resume_id"])
	assert.NotContains(t, m, "template")
	assert.NotContains(t, m, "artifact_key")
}

func TestNewKafkaProducerClient_RequiresBrokers(t *testing.T) {
	_, err := NewKafkaProducerClient(config.Config{}, logger.NewNopLogger())
	assert.Error(t, err)

	var cfg config.Config
	cfg.Kafka.Brokers = []string{"localhost:9092"}
	client, err := NewKafkaProducerClient(cfg, logger.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, TopicResumeEvents, client.ResumeEventsWriter.Topic)
	assert.Equal(t, TopicExportEvents, client.ExportEventsWriter.Topic)
	client.Close()
}
