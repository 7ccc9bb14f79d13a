package diagnostics

import (
	"path/filepath"
	"testing"

	"github.com/onyx-lang/onyxfront/internal/token"
)

func TestSQLiteSinkPostReplayRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagnostics.db")

	sink, err := OpenSQLiteSink(path)
	if err != nil {
		t.Fatalf("OpenSQLiteSink: %v", err)
	}
	defer sink.Close()

	at := token.Token{Type: token.Semicolon, Text: ";", Pos: token.Position{Line: 3, Column: 7}}
	sink.Post(NewExpectedToken(at, token.RParen, token.Semicolon))
	sink.Post(NewUnknownDirective(at, "bogus"))

	got, err := sink.Replay(sink.SessionID())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Replay returned %d diagnostics, want 2", len(got))
	}
	if got[0].Code != ExpectedToken || got[1].Code != UnknownDirective {
		t.Errorf("Replay codes = [%s %s], want [%s %s]", got[0].Code, got[1].Code, ExpectedToken, UnknownDirective)
	}
	if got[0].At.Pos != at.Pos {
		t.Errorf("Replay position = %v, want %v", got[0].At.Pos, at.Pos)
	}

	want := NewExpectedToken(at, token.RParen, token.Semicolon).Error()
	if got[0].Error() != want {
		t.Errorf("replayed Error() = %q, want the original rendering %q", got[0].Error(), want)
	}
}

func TestSQLiteSinkReplayFiltersBySession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagnostics.db")

	a, err := OpenSQLiteSink(path)
	if err != nil {
		t.Fatalf("OpenSQLiteSink a: %v", err)
	}
	defer a.Close()
	b, err := OpenSQLiteSink(path)
	if err != nil {
		t.Fatalf("OpenSQLiteSink b: %v", err)
	}
	defer b.Close()

	at := token.Token{Pos: token.Position{Line: 1, Column: 1}}
	a.Post(NewUnexpectedToken(at))
	b.Post(NewUnexpectedToken(at))
	b.Post(NewUnexpectedToken(at))

	gotA, err := a.Replay(a.SessionID())
	if err != nil {
		t.Fatalf("Replay a: %v", err)
	}
	if len(gotA) != 1 {
		t.Errorf("session a replay = %d rows, want 1", len(gotA))
	}

	gotB, err := a.Replay(b.SessionID())
	if err != nil {
		t.Fatalf("Replay b via a's handle: %v", err)
	}
	if len(gotB) != 2 {
		t.Errorf("session b replay = %d rows, want 2", len(gotB))
	}
}
