// Package haptics stands in for the watch's vibration motor.
package haptics

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Buzzer plays a short low tone through the speaker for every pulse.
// If the audio device cannot be opened it stays silent.
type Buzzer struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	duration    time.Duration
	freq        float64
	initialized bool
	pulses      int
}

func NewBuzzer(rate int, freq float64, duration time.Duration) *Buzzer {
	return &Buzzer{
		rate:     beep.SampleRate(rate),
		duration: duration,
		freq:     freq,
	}
}

// Initialize opens the speaker. Failure is logged and not fatal.
func (b *Buzzer) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(b.rate, b.rate.N(time.Millisecond*100)); err != nil {
		log.Printf("WARNING: haptics disabled, audio init failed: %v", err)
		return err
	}
	b.initialized = true
	return nil
}

// Pulse plays one buzz.
func (b *Buzzer) Pulse() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pulses++
	if !b.initialized {
		return
	}
	tone, err := generators.SineTone(b.rate, b.freq)
	if err != nil {
		log.Printf("WARNING: haptic tone: %v", err)
		return
	}
	speaker.Play(beep.Take(b.rate.N(b.duration), tone))
}

// Pulses returns how many pulses were requested, played or not.
func (b *Buzzer) Pulses() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pulses
}

// Close stops playback and releases the speaker.
func (b *Buzzer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}

// Nop discards pulses.
type Nop struct{}

func (Nop) Pulse() {}
