package kafka

import (
	"testing"
	"time"

	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTallyValueCodec(t *testing.T) {
	t.Run("EncodeDecode", func(t *testing.T) {
		codec := tallyValueCodec{}

		data, err := codec.Encode(tallyValue(42))
		require.NoError(t, err)

		v, err := codec.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, tallyValue(42), v)
	})

	t.Run("EncodeWrongType", func(t *testing.T) {
		codec := tallyValueCodec{}
		_, err := codec.Encode("not a tally")
		assert.ErrorIs(t, err, ErrInvalidValueType)
	})

	t.Run("DecodeGarbage", func(t *testing.T) {
		codec := tallyValueCodec{}
		_, err := codec.Decode([]byte("abc"))
		assert.Error(t, err)
	})
}

func TestInteractionToSchemaV1(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	v := domain.Interaction{
		ID:         "evt-1",
		Kind:       domain.InteractionSearch,
		Value:      "bamboo",
		OccurredAt: at,
	}

	s := interactionToSchemaV1(v)
	assert.Equal(t, "evt-1", s.EventID)
	assert.Equal(t, "search", s.Kind)
	assert.Equal(t, "bamboo", s.Value)
	assert.Equal(t, at.UnixMilli(), s.OccurredAt)
}

func TestInteractionTallyKey(t *testing.T) {
	v := domain.Interaction{Kind: domain.InteractionFilterCategory, Value: "eco"}
	assert.Equal(t, "filter_category:eco", v.TallyKey())
}
