package schema

const InteractionSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "interaction_event",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "value", "type": "string"},
		{"name": "occurred_at", "type": "long"}
	]
}`

// An InteractionV1 is one storefront interaction on the analytics
// stream. OccurredAt is unix milliseconds.
type InteractionV1 struct {
	EventID    string `avro:"event_id"`
	Kind       string `avro:"kind"`
	Value      string `avro:"value"`
	OccurredAt int64  `avro:"occurred_at"`
}
