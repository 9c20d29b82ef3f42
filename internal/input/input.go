// Package input turns a raw terminal byte stream into per-frame input snapshots.
package input

import (
	"io"
	"time"
)

// DefaultHoldDuration is how long a movement or fire key is considered
// "held" after its last byte. Terminals only report key repeats, never
// releases, so holding is approximated by recency.
const DefaultHoldDuration = 120 * time.Millisecond

// NoNumber is the Number value when no digit was pressed this frame.
const NoNumber = -1

// Input represents the current frame's input state.
//
// Up, Down, Left, Right and Fire are held states. Restart, NextWeapon,
// Number and Quit are edges: they are set only on the frame the key arrives.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool

	Restart    bool
	NextWeapon bool
	Number     int
	Quit       bool
}

// Empty returns an input with nothing pressed.
func Empty() Input {
	return Input{Number: NoNumber}
}

//go:generate go tool mockgen -destination=mocks/mock_source.go -package=mocks . Source

// Source provides one input snapshot per frame.
type Source interface {
	Poll() Input
}

// Resetter is implemented by sources that track held keys.
type Resetter interface {
	Reset()
}

var _ Resetter = (*Stream)(nil)

// keyState tracks the last time each held key was pressed.
type keyState struct {
	up    time.Time
	down  time.Time
	left  time.Time
	right time.Time
	fire  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	hold  time.Duration
	now   func() time.Time
	state keyState
	eof   bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r returns an error; the stream then reports Quit.
func StartStream(r io.ByteReader, hold time.Duration) *Stream {
	s := newStream(hold)
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream(hold time.Duration) *Stream {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &Stream{
		ch:   make(chan byte, 128),
		hold: hold,
		now:  time.Now,
	}
}

// Poll drains all available bytes from the stream (non-blocking)
// and returns the frame's input.
func (s *Stream) Poll() Input {
	var buf []byte

drain:
	for !s.eof {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.eof = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.apply(buf, s.now())
	if s.eof {
		in.Quit = true
	}
	return in
}

// Reset forgets held keys, e.g. after a restart.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// apply parses the collected bytes, updates key state timestamps and
// builds the snapshot for time now.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	in := Empty()

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		s.applyByte(&in, b, now)
	}

	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < s.hold
	}
	in.Up = held(s.state.up)
	in.Down = held(s.state.down)
	in.Left = held(s.state.left)
	in.Right = held(s.state.right)
	in.Fire = held(s.state.fire)
	return in
}

// applyByte updates the key state timestamps or frame edges for one byte.
func (s *Stream) applyByte(in *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03: // Ctrl+C arrives as a byte in raw mode
		in.Quit = true
	case 'w', 'W':
		s.state.up = now
	case 's', 'S':
		s.state.down = now
	case 'a', 'A':
		s.state.left = now
	case 'd', 'D':
		s.state.right = now
	case ' ':
		s.state.fire = now
	case '\t':
		in.NextWeapon = true
	case 'r', 'R':
		in.Restart = true
	case '1', '2', '3', '4':
		in.Number = int(b - '0')
	}
}
