package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"feira/config"
	"feira/internal/domain/constants"
	"feira/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	pub, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	err = pub.PublishSearchPerformed(context.Background(), &service.SearchPerformedEvent{Term: "tomate"})
	assert.NoError(t, err)
	assert.NoError(t, pub.Close())
}

func TestNewEventPublisher_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			assert.Error(t, err)
		})
	}
}

func TestLocalHTTPPublisher_PushFormat(t *testing.T) {
	received := make(chan PushMessage, 1)
	var requestIDHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg PushMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		requestIDHeader = r.Header.Get("X-Request-Id")
		received <- msg
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	lc := fxtest.NewLifecycle(t)
	pub, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: srv.URL, TopicID: "feira"}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	event := &service.MessageSentEvent{
		RequestID:   "req-1",
		MessageID:   "m-1",
		ChatID:      "c-1",
		SenderType:  "user",
		SenderID:    "u-1",
		RecipientID: "s-1",
		Preview:     "Tem tomate hoje?",
		SentAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, pub.PublishMessageSent(context.Background(), event))

	msg := <-received
	assert.Equal(t, "projects/local/subscriptions/feira-sub", msg.Subscription)
	assert.Equal(t, service.EventTypeMessageSent, msg.Message.Attributes[constants.AttrEventType])
	assert.Equal(t, "c-1", msg.Message.Attributes[constants.AttrEventKey])
	assert.Equal(t, "req-1", msg.Message.Attributes[constants.AttrRequestID])
	assert.Equal(t, "req-1", requestIDHeader)
	assert.NotEmpty(t, msg.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	require.NoError(t, err)

	var decoded service.MessageSentEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	pub := &eventPublisher{transport: newLocalHTTPTransport(srv.URL, ""), logger: discardLogger()}

	err := pub.PublishSearchPerformed(context.Background(), &service.SearchPerformedEvent{Term: "alface"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
