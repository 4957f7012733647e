package database

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyIfNilRendersEmptyArray(t *testing.T) {
	var none []int
	got := emptyIfNil(none)
	require.NotNil(t, got)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestEmptyIfNilKeepsExistingSlice(t *testing.T) {
	some := []string{"a", "b"}
	assert.Equal(t, some, emptyIfNil(some))

	empty := []string{}
	assert.Equal(t, empty, emptyIfNil(empty))
}
