package service

import (
	"context"
	"encoding/json"
	"time"

	"college-compass-be/internal/entity"
	"college-compass-be/internal/pkg/logger"
	"college-compass-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const activityTopic = "activity.recorded"

type ActivityMessage struct {
	UserId *uuid.UUID             `json:"user_id"`
	Kind   entity.ActivityKind    `json:"kind"`
	Detail map[string]interface{} `json:"detail"`
}

type IActivityPublisher interface {
	Publish(ctx context.Context, msg ActivityMessage)
}

type activityPublisher struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger
}

func NewActivityPublisher(pubSub *gochannel.GoChannel, log logger.ILogger) IActivityPublisher {
	return &activityPublisher{
		pubSub: pubSub,
		logger: log,
	}
}

// Publish is fire-and-forget: activity recording never blocks or fails the
// request that produced the event.
func (p *activityPublisher) Publish(ctx context.Context, msg ActivityMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		p.logger.Warn("activity", "Failed to marshal activity message", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	wmMsg := message.NewMessage(uuid.NewString(), payload)
	if err := p.pubSub.Publish(activityTopic, wmMsg); err != nil {
		p.logger.Warn("activity", "Failed to publish activity message", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

type IActivityConsumer interface {
	Consume(ctx context.Context) error
}

type activityConsumer struct {
	pubSub     *gochannel.GoChannel
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewActivityConsumer(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IActivityConsumer {
	return &activityConsumer{
		pubSub:     pubSub,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (c *activityConsumer) Consume(ctx context.Context) error {
	messages, err := c.pubSub.Subscribe(ctx, activityTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (c *activityConsumer) processMessage(ctx context.Context, msg *message.Message) {
	var payload ActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		c.logger.Warn("activity", "Failed to unmarshal activity message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	detail, _ := json.Marshal(payload.Detail)
	activity := &entity.Activity{
		Id:        uuid.New(),
		UserId:    payload.UserId,
		Kind:      payload.Kind,
		Detail:    string(detail),
		CreatedAt: time.Now(),
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ActivityRepository().Create(ctx, activity); err != nil {
		c.logger.Warn("activity", "Failed to record activity", map[string]interface{}{
			"kind":  string(payload.Kind),
			"error": err.Error(),
		})
	}

	msg.Ack()
}
