// Package pubsub publishes domain events to Google Pub/Sub, or to a local
// HTTP endpoint that mimics Pub/Sub push delivery during development.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"feira/config"
	"feira/internal/domain/constants"
	"feira/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// envelope is a serialized event ready for a transport.
type envelope struct {
	eventType  string
	key        string
	data       []byte
	attributes map[string]string
}

// transport delivers one envelope.
type transport interface {
	send(ctx context.Context, env *envelope) error
	close() error
}

// eventPublisher turns typed events into envelopes for a transport.
type eventPublisher struct {
	transport transport
	logger    *slog.Logger
}

func newEnvelope(eventType, key, requestID string, event any) (*envelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s event", eventType)
	}

	attributes := map[string]string{
		constants.AttrEventType: eventType,
		constants.AttrEventKey:  key,
	}
	if requestID != "" {
		attributes[constants.AttrRequestID] = requestID
	}

	return &envelope{eventType: eventType, key: key, data: data, attributes: attributes}, nil
}

func (p *eventPublisher) publish(ctx context.Context, eventType, key, requestID string, event any) error {
	env, err := newEnvelope(eventType, key, requestID, event)
	if err != nil {
		return err
	}

	if err := p.transport.send(ctx, env); err != nil {
		return errors.Wrapf(err, "failed to publish %s", eventType)
	}

	p.logger.Debug("Event published", slog.String("event_type", eventType), slog.String("event_key", key))

	return nil
}

func (p *eventPublisher) PublishMessageSent(ctx context.Context, event *service.MessageSentEvent) error {
	return p.publish(ctx, service.EventTypeMessageSent, event.ChatID, event.RequestID, event)
}

func (p *eventPublisher) PublishSearchPerformed(ctx context.Context, event *service.SearchPerformedEvent) error {
	return p.publish(ctx, service.EventTypeSearchPerformed, event.Term, event.RequestID, event)
}

func (p *eventPublisher) Close() error {
	return p.transport.close()
}

// noopTransport drops events when Pub/Sub is not configured.
type noopTransport struct {
	logger *slog.Logger
}

func (t *noopTransport) send(_ context.Context, env *envelope) error {
	t.logger.Debug("[NoopPubSub] Event publishing disabled, skipping", slog.String("event_type", env.eventType))

	return nil
}

func (t *noopTransport) close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the transport named by pubsub.provider. An empty
// provider yields a publisher that drops every event.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &eventPublisher{transport: &noopTransport{logger: logger}, logger: logger}, nil
	}

	var (
		tr  transport
		err error
	)

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", cfg.LocalEndpoint))

		tr = newLocalHTTPTransport(cfg.LocalEndpoint, cfg.TopicID)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		tr, err = newGoogleTransport(params.Ctx, cfg.ProjectID, cfg.TopicID)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher := &eventPublisher{transport: tr, logger: logger}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
