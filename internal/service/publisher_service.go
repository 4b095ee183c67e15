package service

import (
	"context"
	"encoding/json"
	"time"

	"brandscope-be/internal/pkg/logger"
	"brandscope-be/pkg/events"
	pktNats "brandscope-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// TopicNotifications is the watermill topic the notifier consumes.
const TopicNotifications = "DASHBOARD_NOTIFICATIONS"

// IPublisherService is the in-process event bus the stores and the
// HTTP adapter publish on. Events also go out to NATS best-effort when
// a connection exists.
type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

// busMessage is the wire shape on the watermill topic.
type busMessage struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	natsPub   *pktNats.Publisher
	logger    logger.ILogger
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel, natsPub *pktNats.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
		natsPub:   natsPub,
		logger:    log,
	}
}

func (s *publisherService) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(busMessage{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(uuid.New().String(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		return err
	}

	// NATS mirror is best-effort: the gateway keeps working without it.
	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Warn("Publisher", "NATS mirror publish failed", map[string]interface{}{
				"type": event.EventType(), "error": err.Error(),
			})
		}
	}

	return nil
}
