package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockQuantity(t *testing.T) {
	s := NewStock()
	s.Set("apple", 10)

	assert.Equal(t, 10, s.Quantity("apple"))
	assert.Equal(t, 0, s.Quantity("pear"))
	assert.True(t, s.Has("apple"))
	assert.False(t, s.Has("pear"))
}

func TestStockSetNonPositiveDeletes(t *testing.T) {
	s := NewStock()
	s.Set("apple", 10)

	s.Set("apple", 0)
	assert.False(t, s.Has("apple"))
	assert.Equal(t, 0, s.Len())

	s.Set("apple", 5)
	s.Set("apple", -3)
	assert.False(t, s.Has("apple"))
}

func TestStockInsertionOrder(t *testing.T) {
	s := NewStock()
	s.Set("cherry", 1)
	s.Set("apple", 2)
	s.Set("banana", 3)

	// Updating an existing entry keeps its slot.
	s.Set("apple", 7)
	require.Equal(t, []Item{
		{Name: "cherry", Quantity: 1},
		{Name: "apple", Quantity: 7},
		{Name: "banana", Quantity: 3},
	}, s.Items())

	// Deleting and re-adding moves the entry to the back.
	s.Delete("apple")
	s.Set("apple", 4)
	require.Equal(t, []Item{
		{Name: "cherry", Quantity: 1},
		{Name: "banana", Quantity: 3},
		{Name: "apple", Quantity: 4},
	}, s.Items())
}

func TestStockDeleteAbsent(t *testing.T) {
	s := NewStock()
	s.Set("apple", 1)
	s.Delete("pear")
	assert.Equal(t, 1, s.Len())
}

func TestStockMarshalJSON(t *testing.T) {
	s := NewStock()
	s.Set("banana", 20)
	s.Set("apple", 15)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"banana":20,"apple":15}`, string(data))

	empty := NewStock()
	data, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestStockJSONRoundTrip(t *testing.T) {
	s := NewStock()
	s.Set("banana", 20)
	s.Set("apple", 15)
	s.Set("cherry", 1)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	decoded := NewStock()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.True(t, s.Equal(decoded))
	assert.Equal(t, s.Items(), decoded.Items())
}

func TestStockUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    []Item
	}{
		{name: "object", input: `{"apple": 10, "banana": 2}`, want: []Item{{Name: "apple", Quantity: 10}, {Name: "banana", Quantity: 2}}},
		{name: "empty object", input: `{}`, want: []Item{}},
		{name: "zero value dropped", input: `{"apple": 0, "banana": 2}`, want: []Item{{Name: "banana", Quantity: 2}}},
		{name: "array top level", input: `[1, 2]`, wantErr: true},
		{name: "string top level", input: `"apple"`, wantErr: true},
		{name: "number top level", input: `42`, wantErr: true},
		{name: "fractional quantity", input: `{"apple": 1.5}`, wantErr: true},
		{name: "negative quantity", input: `{"apple": -1}`, wantErr: true},
		{name: "string quantity", input: `{"apple": "ten"}`, wantErr: true},
		{name: "not json", input: `not json`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStock()
			err := json.Unmarshal([]byte(tc.input), s)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Items())
		})
	}
}

func TestStockEqual(t *testing.T) {
	a := NewStock()
	a.Set("apple", 1)
	a.Set("banana", 2)

	b := NewStock()
	b.Set("banana", 2)
	b.Set("apple", 1)

	assert.True(t, a.Equal(b), "order must not affect equality")

	b.Set("banana", 3)
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(NewStock()))
}
