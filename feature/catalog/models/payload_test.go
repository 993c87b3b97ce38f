package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestOptionPayloadIdentifier(t *testing.T) {
	cases := []struct {
		name    string
		payload OptionPayload
		want    uint
	}{
		{"no identifier", OptionPayload{}, 0},
		{"pk only", OptionPayload{PK: uintPtr(3)}, 3},
		{"id only", OptionPayload{ID: uintPtr(7)}, 7},
		{"pk wins over id", OptionPayload{PK: uintPtr(3), ID: uintPtr(7)}, 3},
		{"zero pk falls through to id", OptionPayload{PK: uintPtr(0), ID: uintPtr(7)}, 7},
		{"zero both means absent", OptionPayload{PK: uintPtr(0), ID: uintPtr(0)}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.payload.Identifier())
		})
	}
}

func TestProductPayloadOmittedVsEmpty(t *testing.T) {
	var omitted ProductPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Tea"}`), &omitted))
	assert.Nil(t, omitted.OptionSet)
	assert.Nil(t, omitted.TagSet)

	var empty ProductPayload
	require.NoError(t, json.Unmarshal([]byte(`{"option_set": [], "tag_set": []}`), &empty))
	require.NotNil(t, empty.OptionSet)
	assert.Empty(t, *empty.OptionSet)
	require.NotNil(t, empty.TagSet)
	assert.Empty(t, *empty.TagSet)
	assert.Nil(t, empty.Name)
}

func TestTagName(t *testing.T) {
	name := "hot"
	assert.Equal(t, "hot", TagPayload{Name: &name}.TagName())
	assert.Equal(t, "", TagPayload{}.TagName())
}
