package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	some := Some(42)
	none := None[int]()

	assert.True(t, some.NonEmpty())
	assert.False(t, some.Empty())
	assert.False(t, none.NonEmpty())
	assert.True(t, none.Empty())

	value, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	value, ok = none.Get()
	assert.False(t, ok)
	assert.Zero(t, value)
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "present", Some("present").GetOrElse("fallback"))
	assert.Equal(t, "fallback", None[string]().GetOrElse("fallback"))
}

func TestEquals(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	tests := []struct {
		name     string
		a        Value[int]
		b        Value[int]
		expected bool
	}{
		{name: "both none", a: None[int](), b: None[int](), expected: true},
		{name: "both some equal", a: Some(1), b: Some(1), expected: true},
		{name: "both some unequal", a: Some(1), b: Some(2), expected: false},
		{name: "some vs none", a: Some(1), b: None[int](), expected: false},
		{name: "none vs some", a: None[int](), b: Some(1), expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.Equals(tt.b, eq))
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(7)", Some(7).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := Map(Some(21), func(n int) int { return n * 2 })
	value, ok := doubled.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	mapped := Map(None[int](), func(n int) int { return n * 2 })
	assert.True(t, mapped.Empty())
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("some", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(Some("hello"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"value":"hello"}`, string(data))

		var decoded Value[string]
		require.NoError(t, json.Unmarshal(data, &decoded))

		value, ok := decoded.Get()
		assert.True(t, ok)
		assert.Equal(t, "hello", value)
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(None[string]())
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))

		var decoded Value[string]
		require.NoError(t, json.Unmarshal([]byte("null"), &decoded))
		assert.True(t, decoded.Empty())
	})

	t.Run("missing value field", func(t *testing.T) {
		t.Parallel()

		var decoded Value[string]
		require.Error(t, json.Unmarshal([]byte(`{"other":"x"}`), &decoded))
	})
}
