package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeResource(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"lemo", "lemo"},
		{"LEMO", "lemo"},
		{"ΛΕΜΟ", "lemo"},
		{"λεμο", "lemo"},
		{"ΦΟΡΟΥ", "forou"},
		{" forou ", "forou"},
		{"", ""},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeResource(tt.raw), tt.raw)
	}
}

func TestResourceLabel(t *testing.T) {
	assert.Equal(t, "ΛΕΜΟ", ResourceLabel("lemo"))
	assert.Equal(t, "ΦΟΡΟΥ", ResourceLabel("FOROU"))
	assert.Equal(t, "unknown", ResourceLabel("unknown"))
}

func TestSameResource(t *testing.T) {
	assert.True(t, SameResource("lemo", "ΛΕΜΟ"))
	assert.True(t, SameResource("", "lemo"), "unscoped side matches everything")
	assert.True(t, SameResource("forou", ""))
	assert.False(t, SameResource("lemo", "forou"))
}

func TestResources(t *testing.T) {
	assert.Equal(t, []string{"forou", "lemo"}, Resources())
}
