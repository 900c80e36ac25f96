package gridlog

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Kind is the error taxonomy of spec.md §7.
type Kind string

const (
	KindInputMissing      Kind = "input_missing"
	KindMalformedRecord   Kind = "malformed_record"
	KindTopologyInvariant Kind = "topology_invariant"
	KindNumerical         Kind = "numerical"
	KindDegenerate        Kind = "degenerate"
	KindPolicyWarning     Kind = "policy_warning"
)

// Logger is a zerolog.Logger scoped to one country's run.
type Logger struct {
	zerolog.Logger
	RunID   uuid.UUID
	Country string
}

// New returns a process-scoped root Logger writing to w (os.Stdout if
// nil), tagged with one fresh run ID. Call WithCountry on the result to
// get a per-country child logger that shares the same run ID — the ID is
// generated once per invocation, not once per country, so every log line
// and output filename from one gridif run can be correlated.
func New(w io.Writer) Logger {
	if w == nil {
		w = os.Stdout
	}
	runID := uuid.New()
	base := zerolog.New(w).With().
		Timestamp().
		Str("run_id", runID.String()).
		Logger()
	return Logger{Logger: base, RunID: runID}
}

// WithCountry returns a child Logger tagged with country, sharing this
// Logger's run ID.
func (l Logger) WithCountry(country string) Logger {
	child := l.Logger.With().Str("country", country).Logger()
	return Logger{Logger: child, RunID: l.RunID, Country: country}
}

// Fatal logs a fatal-for-this-country error tagged with kind. It does not
// call os.Exit; callers decide how to abort the country's pipeline.
func (l Logger) Fatal(kind Kind, err error) {
	l.Error().Str("kind", string(kind)).Err(err).Msg("fatal for country")
}

// Warn logs a PolicyWarning/Degenerate-class message: continue, but
// surface it.
func (l Logger) Warn(kind Kind, msg string) {
	l.Logger.Warn().Str("kind", string(kind)).Msg(msg)
}

// DebugSkip logs a MalformedRecord-class skip.
func (l Logger) DebugSkip(msg string) {
	l.Logger.Debug().Str("kind", string(KindMalformedRecord)).Msg(msg)
}
