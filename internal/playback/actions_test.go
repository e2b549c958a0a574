package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyActions(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		action      Action
		wantIndex   int
		wantPlaying bool
	}{
		{"reset", 7, ActionReset, 1, false},
		{"toggle starts playing", 1, ActionTogglePlayback, 1, true},
		{"step back", 5, ActionStepBack, 4, false},
		{"step back coarse", 20, ActionStepBackCoarse, 10, false},
		{"step forward", 5, ActionStepForward, 6, false},
		{"step forward coarse", 5, ActionStepForwardCoarse, 15, false},
		{"none", 5, ActionNone, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewController(30, Options{Ticker: NewManualTicker()})
			require.NoError(t, err)
			c.JumpTo(tt.start)
			c.Apply(tt.action)
			assert.Equal(t, tt.wantIndex, c.Current())
			assert.Equal(t, tt.wantPlaying, c.IsPlaying())
		})
	}
}
