package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/resume-builder/internal/config"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

const (
	TopicResumeEvents = "resume.events"
	TopicExportEvents = "export.events"
)

type ResumeEventType string

const (
	ResumeEventCreated  ResumeEventType = "created"
	ResumeEventUpdated  ResumeEventType = "updated"
	ResumeEventDeleted  ResumeEventType = "deleted"
	ResumeEventExported ResumeEventType = "exported"
)

type ResumeEventPayload struct {
	EventType ResumeEventType `json:"event_type"`
	ResumeID  uuid.UUID       `json:"resume_id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Template  string          `json:"template,omitempty"`
	// ArtifactKey is where the worker stores the exported file.
	ArtifactKey string `json:"artifact_key,omitempty"`
}

// Topic routes exports to their own topic so archiving does not queue behind edits.
func (p ResumeEventPayload) Topic() string {
	if p.EventType == ResumeEventExported {
		return TopicExportEvents
	}
	return TopicResumeEvents
}

type KafkaProducerClient struct {
	ResumeEventsWriter *kafka.Writer
	ExportEventsWriter *kafka.Writer
	logger             logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'resume.events'
	resumeWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicResumeEvents,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	// writer 'export.events'
	exportWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicExportEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		ResumeEventsWriter: resumeWriter,
		ExportEventsWriter: exportWriter,
		logger:             log,
	}, nil
}

// PublishResumeEvent writes the payload keyed by resume id, keeping one resume's
// events in order on a single partition.
func (c *KafkaProducerClient) PublishResumeEvent(ctx context.Context, payload ResumeEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal resume event: %w", err)
	}

	writer := c.ResumeEventsWriter
	if payload.Topic() == TopicExportEvents {
		writer = c.ExportEventsWriter
	}

	msg := kafka.Message{
		Key:   []byte(payload.ResumeID.String()),
		Value: value,
	}
	if err := writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s event to %s: %w", payload.EventType, writer.Topic, err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ResumeEventsWriter != nil {
		c.ResumeEventsWriter.Close()
	}
	if c.ExportEventsWriter != nil {
		c.ExportEventsWriter.Close()
	}
	c.logger.Info("Closed Kafka Producers")
}
