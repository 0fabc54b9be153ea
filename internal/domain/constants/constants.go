// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Attribute keys set on every published event.
const (
	AttrEventType = "event_type"
	AttrEventKey  = "event_key"
	AttrRequestID = "request_id"
)

// DefaultLastMessage is shown for chats that have no messages yet.
const DefaultLastMessage = "Nenhuma mensagem"
