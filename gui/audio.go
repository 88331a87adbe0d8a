package gui

import (
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/skerrett/yoke/logger"
)

const (
	sampleFreq = 44100

	// a tenth of a second at 880Hz
	blipSamples = sampleFreq / 10
	blipPeriod  = sampleFreq / (880 * 2)

	blipVolume = 6000
)

// blip plays a short square wave on the trigger channel. The oto context is
// created on the first pulse; if that fails the failure is logged once and
// audio stays silent for the rest of the run.
type blip struct {
	player *oto.Player
	failed bool

	// remaining and phase are advanced by Read, which the audio engine
	// calls from its own goroutine
	crit      sync.Mutex
	remaining int
	phase     int
}

// Read synthesizes the waveform. Silence when no pulse is in flight.
func (b *blip) Read(buf []uint8) (int, error) {
	b.crit.Lock()
	defer b.crit.Unlock()

	n := len(buf) &^ 1
	for i := 0; i < n; i += 2 {
		var s int16
		if b.remaining > 0 {
			if (b.phase/blipPeriod)%2 == 0 {
				s = blipVolume
			} else {
				s = -blipVolume
			}
			b.phase++
			b.remaining--
		}
		buf[i] = uint8(s)
		buf[i+1] = uint8(s >> 8)
	}
	return n, nil
}

func (b *blip) play() {
	if b.failed {
		return
	}

	if b.player == nil {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleFreq,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			b.failed = true
			logger.Logf(logger.Allow, "audio", "disabled: %s", err.Error())
			return
		}
		<-ready
		b.player = ctx.NewPlayer(b)
		b.player.Play()
	}

	b.crit.Lock()
	b.remaining = blipSamples
	b.phase = 0
	b.crit.Unlock()
}

func (b *blip) close() {
	if b.player != nil {
		err := b.player.Close()
		if err != nil {
			logger.Log(logger.Allow, "audio", err.Error())
		}
		b.player = nil
	}
}
