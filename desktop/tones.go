package desktop

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/lguibr/duelpong/game"
)

const (
	sampleRate    = 44100
	bytesPerFrame = 4 // 16-bit stereo
	fadeOut       = 5 * time.Millisecond
)

// Tone is a sine beep, optionally sweeping exponentially from StartHz to
// EndHz over its duration.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration time.Duration
	Gain     float64
}

var toneTable = map[game.Cue]Tone{
	game.CuePong:    {StartHz: 800, EndHz: 800, Duration: 100 * time.Millisecond, Gain: 0.1},
	game.CueWall:    {StartHz: 600, EndHz: 600, Duration: 80 * time.Millisecond, Gain: 0.08},
	game.CueScore:   {StartHz: 1200, EndHz: 1200, Duration: 200 * time.Millisecond, Gain: 0.15},
	game.CuePowerUp: {StartHz: 300, EndHz: 1200, Duration: 300 * time.Millisecond, Gain: 0.12},
	game.CueWinner:  {StartHz: 440, EndHz: 440, Duration: 100 * time.Millisecond, Gain: 0.05},
	game.CueLoser:   {StartHz: 440, EndHz: 440, Duration: 100 * time.Millisecond, Gain: 0.05},
}

// ToneFor returns the tone played for a cue.
func ToneFor(cue game.Cue) (Tone, bool) {
	t, ok := toneTable[cue]
	return t, ok
}

// frequencyAt follows an exponential ramp, so equal times cover equal
// musical intervals.
func (t Tone) frequencyAt(elapsed float64) float64 {
	total := t.Duration.Seconds()
	if t.StartHz == t.EndHz || total <= 0 || t.StartHz <= 0 || t.EndHz <= 0 {
		return t.StartHz
	}
	return t.StartHz * math.Pow(t.EndHz/t.StartHz, elapsed/total)
}

// Synthesize renders the tone as little-endian 16-bit stereo PCM at
// sampleRate. The last few milliseconds fade linearly to avoid a click.
func Synthesize(t Tone) []byte {
	n := int(t.Duration.Seconds() * sampleRate)
	if n <= 0 {
		return nil
	}
	fadeSamples := int(fadeOut.Seconds() * sampleRate)
	if fadeSamples > n {
		fadeSamples = n
	}

	buf := make([]byte, n*bytesPerFrame)
	phase := 0.0
	for i := 0; i < n; i++ {
		elapsed := float64(i) / sampleRate
		gain := t.Gain
		if remaining := n - i; remaining < fadeSamples {
			gain *= float64(remaining) / float64(fadeSamples)
		}
		v := int16(math.Sin(phase) * gain * math.MaxInt16)
		phase += 2 * math.Pi * t.frequencyAt(elapsed) / sampleRate

		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], uint16(v))
	}
	return buf
}
