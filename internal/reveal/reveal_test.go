package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggerLatchesOnce(t *testing.T) {
	tr := NewTrigger(0.1)
	assert.Equal(t, Hidden, tr.State())

	assert.False(t, tr.Observe(0.05), "below threshold should stay hidden")
	assert.True(t, tr.Observe(0.1), "threshold reached should reveal")

	for _, ratio := range []float64{0, 0.01, 1, 0, -1} {
		assert.True(t, tr.Observe(ratio), "revealed latch must never revert (ratio %v)", ratio)
	}
	assert.Equal(t, Revealed, tr.State())
}

func TestTriggerIgnoresZeroRatio(t *testing.T) {
	tr := NewTrigger(0.1)
	assert.False(t, tr.Observe(0))
	assert.Equal(t, Hidden, tr.State())
}

func TestTriggerThresholdFallback(t *testing.T) {
	for _, threshold := range []float64{0, -0.5, 1.5} {
		tr := NewTrigger(threshold)
		assert.False(t, tr.Observe(0.09))
		assert.True(t, tr.Observe(0.1))
	}
}

func TestUnsupportedIsRevealed(t *testing.T) {
	tr := Unsupported()
	assert.Equal(t, Revealed, tr.State())
	assert.True(t, tr.Observe(0))
}

func TestPreset(t *testing.T) {
	assert.Equal(t, PresetHidden, Preset(Hidden))
	assert.Equal(t, PresetVisible, Preset(Revealed))
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "revealed", Revealed.String())
}

func TestBoard(t *testing.T) {
	b := NewBoard(0.25, true)

	assert.Equal(t, Hidden, b.State("about"))
	assert.Equal(t, Hidden, b.Observe("about", 0.2))
	assert.Equal(t, Revealed, b.Observe("about", 0.3))
	assert.Equal(t, Revealed, b.Observe("about", 0))

	assert.Equal(t, Hidden, b.State("skills"), "latches are per section")
	assert.Equal(t, PresetHidden, b.Preset("skills"))
	assert.Equal(t, PresetVisible, b.Preset("about"))
}

func TestBoardWithoutObserver(t *testing.T) {
	b := NewBoard(DefaultThreshold, false)
	for _, section := range []string{"about", "skills", "projects", "contact"} {
		assert.Equal(t, Revealed, b.State(section))
	}
}
