package resume

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/adapters/event"
	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/internal/compose"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

var tracer = otel.Tracer("resume_usecase")

// publish sends the event without holding up the request; failures are logged only.
func publish(pub service.EventPublisher, log logger.Logger, r *resume.Resume, eventType event.ResumeEventType) {
	payload := event.ResumeEventPayload{
		EventType: eventType,
		ResumeID:  r.ID,
		OwnerID:   r.OwnerID,
		Template:  r.Template,
	}
	go func() {
		if err := pub.PublishResumeEvent(context.Background(), payload); err != nil {
			log.Error("Failed to publish resume event", err,
				zap.String("event_type", string(eventType)),
				zap.String("resume_id", r.ID.String()),
			)
		}
	}()
}

// resolveTemplate accepts a blank name as classic and rejects unknown ones.
func resolveTemplate(name string) (string, error) {
	if name == "" {
		return compose.Classic{}.Name(), nil
	}
	tpl, err := compose.ParseTemplate(name)
	if err != nil {
		return "", apperror.NewValidation(map[string]string{"template": "must be one of classic, modern, minimalist, executive, creative"})
	}
	return tpl.Name(), nil
}
