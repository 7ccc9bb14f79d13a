package diagnostics

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // driver registration only

	"github.com/onyx-lang/onyxfront/internal/token"
)

// SQLiteSink persists every posted diagnostic into a SQLite-backed table so
// offline tooling (an editor plugin, a CI log viewer) can replay a parse
// session's error history after the process exits. It implements the same
// Sink contract as MemorySink; the parser is never aware which one it is
// talking to.
type SQLiteSink struct {
	db        *sql.DB
	sessionID string
}

// OpenSQLiteSink opens (creating if necessary) a diagnostics database at
// path and prepares the diagnostics table. Each SQLiteSink instance stamps
// its rows with a fresh session id so multiple parse runs against the same
// database file can be told apart.
func OpenSQLiteSink(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("diagnostics: open sqlite sink: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS diagnostics (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	code       TEXT NOT NULL,
	line       INTEGER NOT NULL,
	column     INTEGER NOT NULL,
	message    TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("diagnostics: create schema: %w", err)
	}
	return &SQLiteSink{db: db, sessionID: uuid.NewString()}, nil
}

func (s *SQLiteSink) Post(d Diagnostic) {
	// Best-effort: a failed diagnostics write must never be the reason a
	// parse fails, so errors here are swallowed rather than propagated.
	_, _ = s.db.Exec(
		`INSERT INTO diagnostics (session_id, code, line, column, message) VALUES (?, ?, ?, ?, ?)`,
		s.sessionID, string(d.Code), d.At.Pos.Line, d.At.Pos.Column, d.Error(),
	)
}

// SessionID identifies this sink's rows within a shared diagnostics
// database.
func (s *SQLiteSink) SessionID() string { return s.sessionID }

func (s *SQLiteSink) Close() error { return s.db.Close() }

// replayToken reconstructs just enough of a token to locate a stored row;
// full fidelity (original Text) is not retained, since the message column
// already carries the rendered string.
func replayToken(line, column int) token.Token {
	return token.Token{Pos: token.Position{Line: line, Column: column}}
}

// ReplayedDiagnostic is a diagnostic read back from a SQLiteSink's table.
// Error returns exactly the message that was originally posted: Replay only
// has that pre-rendered string to work with, not the original Args, so it
// cannot rebuild a Diagnostic and re-run its Code-specific template without
// garbling the text.
type ReplayedDiagnostic struct {
	Code    Code
	At      token.Token
	Message string
}

func (d ReplayedDiagnostic) Error() string { return d.Message }

// Replay reads back every diagnostic for a session in insertion order.
func (s *SQLiteSink) Replay(sessionID string) ([]ReplayedDiagnostic, error) {
	rows, err := s.db.Query(
		`SELECT code, line, column, message FROM diagnostics WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("diagnostics: replay: %w", err)
	}
	defer rows.Close()

	var out []ReplayedDiagnostic
	for rows.Next() {
		var code string
		var line, col int
		var message string
		if err := rows.Scan(&code, &line, &col, &message); err != nil {
			return nil, fmt.Errorf("diagnostics: scan row: %w", err)
		}
		out = append(out, ReplayedDiagnostic{
			Code:    Code(code),
			At:      replayToken(line, col),
			Message: message,
		})
	}
	return out, rows.Err()
}
