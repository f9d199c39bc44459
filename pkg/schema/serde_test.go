package schema_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hamba/avro/v2"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/sr"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

type MockRegistryClient struct {
	mock.Mock
}

func (c *MockRegistryClient) CreateSchema(
	ctx context.Context, subject string, s sr.Schema,
) (sr.SubjectSchema, error) {
	args := c.Called(ctx, subject, s)
	return args.Get(0).(sr.SubjectSchema), args.Error(1)
}

func testBrowseEvent() schema.BrowseEventV1 {
	return schema.BrowseEventV1{
		EventID:    "0b6f4c1e-4a52-4df3-9d0e-5d7e8f7a1c11",
		Kind:       "product_list_viewed",
		ProductID:  0,
		Category:   "smartphones",
		Filter:     "category:smartphones",
		Results:    5,
		OccurredAt: time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC),
	}
}

func TestBrowseEventV1(t *testing.T) {
	var s avro.Schema
	require.NotPanics(t, func() {
		s = schema.BrowseEventV1Avro()
	})

	v := testBrowseEvent()
	data, err := avro.Marshal(s, v)
	require.NoError(t, err)

	var got schema.BrowseEventV1
	require.NoError(t, avro.Unmarshal(s, data, &got))

	assert.Equal(t, v.EventID, got.EventID)
	assert.Equal(t, v.Kind, got.Kind)
	assert.Equal(t, v.Category, got.Category)
	assert.Equal(t, v.Filter, got.Filter)
	assert.Equal(t, v.Results, got.Results)
	assert.True(t, v.OccurredAt.Equal(got.OccurredAt))
}

func TestSerdeBrowseEventV1(t *testing.T) {

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeBrowseEventV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeBrowseEventV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("EmptySubject", func(t *testing.T) {
		_, err := schema.NewSerdeBrowseEventV1(
			t.Context(),
			schema.SubjectOpt(""),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
	})

	t.Run("IdentifierFails", func(t *testing.T) {
		registryErr := errors.New("registry unavailable")
		si := new(MockSchemaIdentifier)
		si.On(
			"DetermineID", t.Context(), "browse_events-value", schema.BrowseEventSchemaTextV1,
		).Return(0, registryErr)

		_, err := schema.NewSerdeBrowseEventV1(
			t.Context(),
			schema.SubjectOpt("browse_events-value"),
			schema.SchemaIdentifierOpt(si),
		)
		assert.ErrorIs(t, err, registryErr)
	})

	t.Run("EncodeWireFormat", func(t *testing.T) {
		si := new(MockSchemaIdentifier)
		schemaID := 7
		subject := "browse_events-value"

		si.On(
			"DetermineID", t.Context(), subject, schema.BrowseEventSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeBrowseEventV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(si),
		)
		require.NoError(t, err)

		v := testBrowseEvent()
		encoded, err := serde.Encode(v)
		require.NoError(t, err)

		var hdr sr.ConfluentHeader
		id, payload, err := hdr.DecodeID(encoded)
		require.NoError(t, err)
		assert.Equal(t, schemaID, id)

		var got schema.BrowseEventV1
		require.NoError(t, avro.Unmarshal(schema.BrowseEventV1Avro(), payload, &got))
		assert.Equal(t, v.EventID, got.EventID)
		assert.Equal(t, v.Filter, got.Filter)
		assert.True(t, v.OccurredAt.Equal(got.OccurredAt))
	})
}

func TestSchemaIdentifier(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		cl := new(MockRegistryClient)
		cl.On("CreateSchema", t.Context(), "browse_events-value", sr.Schema{
			Type:   sr.TypeAvro,
			Schema: schema.BrowseEventSchemaTextV1,
		}).Return(sr.SubjectSchema{ID: 3}, nil)

		id, err := schema.NewSchemaIdentifier(cl).DetermineID(
			t.Context(), "browse_events-value", schema.BrowseEventSchemaTextV1,
		)
		require.NoError(t, err)
		assert.Equal(t, 3, id)
	})

	t.Run("NilClient", func(t *testing.T) {
		assert.Panics(t, func() {
			schema.NewSchemaIdentifier(nil)
		})
	})
}
