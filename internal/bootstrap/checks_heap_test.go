package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHeapSizeEqualityCheck(t *testing.T) {
	tests := []struct {
		name      string
		initial   int64
		max       int64
		violated  bool
	}{
		{"equal heap sizes", 1024, 1024, false},
		{"mismatched heap sizes", 512, 1024, true},
		{"initial unreported", 0, 1024, false},
		{"max unreported", 1024, 0, false},
		{"both unreported", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := NewHeapSizeEqualityCheck(
				func() int64 { return tt.initial },
				func() int64 { return tt.max },
			)
			assert.Equal(t, tt.violated, check.Violated())
			if tt.violated {
				assert.Contains(t, check.Diagnostic(), "not equal to maximum heap size")
			}
			assert.False(t, check.AlwaysEnforced())
			assert.Equal(t, "heap_size_equality", check.ID())
		})
	}
}
