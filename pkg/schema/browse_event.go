package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const BrowseEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "browse_event",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "category", "type": "string"},
		{"name": "filter", "type": "string"},
		{"name": "results", "type": "long"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

type BrowseEventV1 struct {
	EventID    string    `avro:"event_id"`
	Kind       string    `avro:"kind"`
	ProductID  int64     `avro:"product_id"`
	Category   string    `avro:"category"`
	Filter     string    `avro:"filter"`
	Results    int64     `avro:"results"`
	OccurredAt time.Time `avro:"occurred_at"`
}

func BrowseEventV1Avro() avro.Schema {
	return avro.MustParse(BrowseEventSchemaTextV1)
}
