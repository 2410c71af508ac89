package player

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"github.com/Cadiac/leipae"
)

const sampleRate = 44100

// driftTolerance is how far playback may wander from the day time before
// it is seeked back.
const driftTolerance = 250 * time.Millisecond

// track is the subset of *audio.Player the soundtrack drives.
type track interface {
	Play()
	Pause()
	IsPlaying() bool
	Position() time.Duration
	SetPosition(offset time.Duration) error
}

// Soundtrack keeps an audio track in step with the show: it pauses and
// resumes with the Demo and seeks to the day time after skips.
type Soundtrack struct {
	player track
	length time.Duration // zero when unknown
	ended  bool
}

// LoadSoundtrack decodes an MP3 file into a player on the shared audio
// context.
func LoadSoundtrack(path string) (*Soundtrack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read soundtrack: %w", err)
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	stream, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode soundtrack: %w", err)
	}
	p, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("soundtrack player: %w", err)
	}
	// 16-bit stereo: four bytes per sample frame.
	length := time.Duration(stream.Length()) * time.Second / time.Duration(4*ctx.SampleRate())
	return &Soundtrack{player: p, length: length}, nil
}

// Sync brings playback in line with d. A nil Soundtrack does nothing.
func (s *Soundtrack) Sync(d *leipae.Demo) {
	if s == nil || s.player == nil {
		return
	}
	if d.ShouldExit() {
		if !s.ended {
			s.player.Pause()
			s.ended = true
		}
		return
	}
	if d.IsPaused() {
		if s.player.IsPlaying() {
			s.player.Pause()
		}
		return
	}
	want := time.Duration(d.DayTime() * float64(time.Second))
	if s.length > 0 && want >= s.length {
		// The show outlasts the track.
		return
	}
	if drift := s.player.Position() - want; math.Abs(float64(drift)) > float64(driftTolerance) {
		if err := s.player.SetPosition(want); err != nil {
			logf("soundtrack: seek: %v", err)
		}
	}
	if !s.player.IsPlaying() {
		s.player.Play()
	}
}
