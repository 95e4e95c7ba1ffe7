package service

import (
	"context"

	"github.com/khoahotran/resume-builder/adapters/event"
)

type EventPublisher interface {
	PublishResumeEvent(ctx context.Context, payload event.ResumeEventPayload) error
}
