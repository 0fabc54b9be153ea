package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"feira/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPTransport POSTs each event to an HTTP endpoint in the Pub/Sub
// push format, so a consumer can be developed without the emulator.
type localHTTPTransport struct {
	endpoint     string
	subscription string
	httpClient   *http.Client
}

// PushMessage is the body Google Pub/Sub sends to push subscribers.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func newLocalHTTPTransport(endpoint, topicID string) *localHTTPTransport {
	if topicID == "" {
		topicID = "feira-events"
	}

	return &localHTTPTransport{
		endpoint:     endpoint,
		subscription: "projects/local/subscriptions/" + topicID + "-sub",
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *localHTTPTransport) send(ctx context.Context, env *envelope) error {
	pushMsg := PushMessage{Subscription: t.subscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(env.data)
	pushMsg.Message.Attributes = env.attributes
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := env.attributes[constants.AttrRequestID]; requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

func (t *localHTTPTransport) close() error {
	return nil
}
