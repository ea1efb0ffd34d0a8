package systems

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// SoundID identifies one of the synthesized effects.
type SoundID int

const (
	SoundMenuNavigate SoundID = iota
	SoundMenuSelect
	SoundJoin
	SoundFire
)

const audioSampleRate = 44100

// The effects are short sine blips generated at startup, so the game ships
// without any audio assets.
var soundParams = map[SoundID]struct {
	freq     float64
	duration float64
}{
	SoundMenuNavigate: {freq: 660, duration: 0.06},
	SoundMenuSelect:   {freq: 880, duration: 0.10},
	SoundJoin:         {freq: 520, duration: 0.15},
	SoundFire:         {freq: 220, duration: 0.12},
}

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFX          map[SoundID][]byte
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(audioSampleRate)
		globalSFX = make(map[SoundID][]byte, len(soundParams))
		for id, p := range soundParams {
			globalSFX[id] = synthesizeBlip(p.freq, p.duration)
		}
	})
}

// synthesizeBlip renders a decaying sine tone as 16-bit stereo PCM.
func synthesizeBlip(freq, duration float64) []byte {
	samples := int(duration * audioSampleRate)
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / audioSampleRate
		decay := 1 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*freq*t) * decay * 0.25
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}

// PlaySFX plays a synthesized effect. Safe to call every frame; each call
// spawns a fresh fire-and-forget player.
func PlaySFX(e *ecs.ECS, id SoundID) {
	initGlobalAudio()
	if globalMuted {
		return
	}
	data, ok := globalSFX[id]
	if !ok {
		return
	}
	player := globalAudioContext.NewPlayerFromBytes(data)
	player.Play()
}

// SetMuted silences all effects.
func SetMuted(muted bool) {
	globalMuted = muted
}
