package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googleTransport struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
}

// newGoogleTransport fails fast when the topic does not exist.
func newGoogleTransport(ctx context.Context, projectID, topicID string) (*googleTransport, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googleTransport{client: client, publisher: publisher}, nil
}

// send waits for the server ack. Events sharing a key (a chat id or a
// search term) keep their publish order.
func (t *googleTransport) send(ctx context.Context, env *envelope) error {
	result := t.publisher.Publish(ctx, &pubsub.Message{
		Data:        env.data,
		Attributes:  env.attributes,
		OrderingKey: env.key,
	})

	if _, err := result.Get(ctx); err != nil {
		t.publisher.ResumePublish(env.key)

		return errors.WithStack(err)
	}

	return nil
}

func (t *googleTransport) close() error {
	if t.publisher != nil {
		t.publisher.Stop()
	}
	if t.client != nil {
		return errors.WithStack(t.client.Close())
	}

	return nil
}
