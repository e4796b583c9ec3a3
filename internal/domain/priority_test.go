package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input string
		want  Priority
	}{
		{"紧急重要", PriorityUrgentImportant},
		{"紧急不重要", PriorityUrgentNotImportant},
		{"不紧急重要", PriorityNotUrgentImportant},
		{"不紧急不重要", PriorityNotUrgentNotImportant},
		{"高", PriorityUrgentImportant},
		{"中", PriorityNotUrgentImportant},
		{"低", PriorityNotUrgentNotImportant},
		{"uni", PriorityUrgentNotImportant},
		{"nuni", PriorityNotUrgentNotImportant},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestPriority_IndexAndShort(t *testing.T) {
	for i, p := range Priorities() {
		assert.Equal(t, i, p.Index())
		assert.True(t, p.IsValid())
		back, err := ParsePriority(p.Short())
		require.NoError(t, err)
		assert.Equal(t, p, back)
	}
	assert.Equal(t, -1, Priority("高").Index())
	assert.Empty(t, Priority("x").Short())
}
