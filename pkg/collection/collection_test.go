package collection

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))

	out := Map([]int(nil), strconv.Itoa)
	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestContains(t *testing.T) {
	roles := []string{"user", "admin"}
	assert.True(t, Contains(roles, func(r string) bool { return r == "admin" }))
	assert.False(t, Contains(roles, func(r string) bool { return r == "owner" }))
}
