package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFormat(t *testing.T) {
	id := Generate()
	assert.True(t, strings.HasPrefix(id, "CIV-"))
	assert.Len(t, id, len("CIV-")+8)
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestGenerateIsPracticallyUnique(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := Generate()
		_, dup := seen[id]
		assert.False(t, dup, "generated duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
