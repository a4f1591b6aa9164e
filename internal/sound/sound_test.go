package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	require.NotNil(t, s)
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if v := smp[0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return total, peak
}

func TestCueLengths(t *testing.T) {
	n, peak := drain(t, click())
	assert.Equal(t, sampleRate.N(8*time.Millisecond), n)
	assert.Greater(t, peak, 0.0)

	n, _ = drain(t, denied())
	assert.Equal(t, sampleRate.N(120*time.Millisecond)+sampleRate.N(40*time.Millisecond)+sampleRate.N(180*time.Millisecond), n)

	n, _ = drain(t, granted())
	assert.Equal(t, 2*sampleRate.N(90*time.Millisecond)+sampleRate.N(160*time.Millisecond), n)
}

func TestToneRejectsOutOfRangeFrequency(t *testing.T) {
	// above Nyquist
	assert.Nil(t, tone(float64(sampleRate), time.Millisecond))
	assert.Nil(t, seq(nil, nil))
}

func TestWithVolumeScales(t *testing.T) {
	_, full := drain(t, withVolume(tone(440, 20*time.Millisecond), 1))
	_, half := drain(t, withVolume(tone(440, 20*time.Millisecond), 0.5))
	_, mute := drain(t, withVolume(tone(440, 20*time.Millisecond), 0))

	assert.InDelta(t, full/2, half, 0.01)
	assert.Zero(t, mute)
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(1)
	assert.NotPanics(t, func() {
		p.Click()
		p.Denied()
		p.Granted()
		p.Close()
	})
}
