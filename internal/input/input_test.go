package input

import (
	"bytes"
	"testing"
	"time"
)

func TestApplyKeys(t *testing.T) {
	tests := []struct {
		name   string
		bytes  string
		expect Input
	}{
		{"nothing", "", Input{Number: NoNumber}},
		{"wasd", "wasd", Input{Up: true, Left: true, Down: true, Right: true, Number: NoNumber}},
		{"uppercase", "WD", Input{Up: true, Right: true, Number: NoNumber}},
		{"arrows", "\x1b[A\x1b[D", Input{Up: true, Left: true, Number: NoNumber}},
		{"fire", " ", Input{Fire: true, Number: NoNumber}},
		{"tab", "\t", Input{NextWeapon: true, Number: NoNumber}},
		{"restart", "r", Input{Restart: true, Number: NoNumber}},
		{"shape digit", "3", Input{Number: 3}},
		{"ignored digit", "7", Input{Number: NoNumber}},
		{"quit", "q", Input{Quit: true, Number: NoNumber}},
		{"ctrl-c", "\x03", Input{Quit: true, Number: NoNumber}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream(DefaultHoldDuration)
			if got := s.apply([]byte(tt.bytes), time.Unix(100, 0)); got != tt.expect {
				t.Errorf("apply(%q) = %+v, expected %+v", tt.bytes, got, tt.expect)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	s := newStream(100 * time.Millisecond)
	start := time.Unix(100, 0)

	if in := s.apply([]byte(" a"), start); !in.Fire || !in.Left {
		t.Fatalf("apply() = %+v, expected Fire and Left", in)
	}
	if in := s.apply(nil, start.Add(50*time.Millisecond)); !in.Fire || !in.Left {
		t.Errorf("within hold: %+v, expected Fire and Left held", in)
	}
	if in := s.apply(nil, start.Add(100*time.Millisecond)); in.Fire || in.Left {
		t.Errorf("after hold: %+v, expected keys released", in)
	}
}

func TestEdgesDoNotPersist(t *testing.T) {
	s := newStream(DefaultHoldDuration)
	now := time.Unix(100, 0)

	if in := s.apply([]byte("r\t2"), now); !in.Restart || !in.NextWeapon || in.Number != 2 {
		t.Fatalf("apply() = %+v, expected edges set", in)
	}
	if in := s.apply(nil, now.Add(time.Millisecond)); in.Restart || in.NextWeapon || in.Number != NoNumber {
		t.Errorf("next frame = %+v, expected edges cleared", in)
	}
}

func TestReset(t *testing.T) {
	s := newStream(DefaultHoldDuration)
	now := time.Unix(100, 0)
	s.apply([]byte("w "), now)
	s.Reset()
	if in := s.apply(nil, now); in.Up || in.Fire {
		t.Errorf("after Reset: %+v, expected no held keys", in)
	}
}

func TestStreamReportsQuitOnEOF(t *testing.T) {
	s := StartStream(bytes.NewReader([]byte("w")), DefaultHoldDuration)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if in := s.Poll(); in.Quit {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Poll() never reported Quit after reader EOF")
}
