package service

import (
	"context"
	"encoding/json"
	"fmt"

	"brandscope-be/internal/model"
	"brandscope-be/internal/pkg/logger"
	"brandscope-be/internal/websocket"
	"brandscope-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// INotifierService turns bus events into user-visible toasts on the
// websocket channel. The session-expired toast is what forces the
// dashboard back to the login flow after a 401.
type INotifierService interface {
	Consume(ctx context.Context) error
}

type notifierService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	hub       *websocket.Hub
	logger    logger.ILogger
}

func NewNotifierService(pubSub *gochannel.GoChannel, topicName string, hub *websocket.Hub, log logger.ILogger) INotifierService {
	return &notifierService{
		pubSub:    pubSub,
		topicName: topicName,
		hub:       hub,
		logger:    log,
	}
}

func (s *notifierService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *notifierService) processMessage(msg *message.Message) {
	var payload busMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Error("Notifier", "Failed to unmarshal bus message", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry.
		msg.Ack()
		return
	}

	if toast, ok := toastFor(payload); ok {
		s.hub.Broadcast(toast)
		s.logger.Info("Notifier", "Toast delivered", map[string]interface{}{
			"type": payload.Type,
		})
	}

	msg.Ack()
}

func toastFor(m busMessage) (model.Toast, bool) {
	switch m.Type {
	case events.TypeSessionExpired:
		return model.NewToast(model.ToastError, m.Type,
			"Your session has expired. Please sign in again."), true
	case events.TypeScrapeStarted:
		brand, _ := m.Data["brand"].(string)
		return model.NewToast(model.ToastInfo, m.Type,
			fmt.Sprintf("Scraping started for %s. Data will appear shortly.", brand)), true
	case events.TypeCompanyAdded:
		brand, _ := m.Data["brand"].(string)
		return model.NewToast(model.ToastInfo, m.Type,
			fmt.Sprintf("%s added to your tracked competitors.", brand)), true
	case events.TypeCompanyRemoved:
		return model.NewToast(model.ToastInfo, m.Type, "Competitor removed."), true
	default:
		return model.Toast{}, false
	}
}
