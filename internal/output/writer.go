// Package output writes arena results as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/dama-go/internal/config"
)

// ResultWriter is the interface for writing arena results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteRecord writes a single finished game.
	WriteRecord(r *GameRecord) error

	// WriteSummary writes the totals for the batch.
	WriteSummary(s *Summary) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewResultWriter returns the writer selected by cfg.Output.
func NewResultWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one line per game and a closing summary.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteRecord writes a game line, followed by the final board when
// cfg.Output.ShowBoards is set.
func (tw *TextWriter) WriteRecord(r *GameRecord) error {
	note := ""
	switch {
	case r.Duplicate:
		note = " (duplicate)"
	case r.PlyLimit:
		note = " (ply limit)"
	}

	_, err := fmt.Fprintf(tw.w, "Game %d: %s in %d plies, light %d dark %d, score %+d%s\n",
		r.Index+1, r.Result, r.Plies, r.LightPieces, r.DarkPieces, r.Score, note)
	if err != nil {
		return err
	}

	if tw.cfg.Output.ShowBoards && r.Board != nil {
		if err := WriteBoard(tw.w, r.Board); err != nil {
			return err
		}
		_, err = fmt.Fprintln(tw.w)
	}
	return err
}

// WriteSummary writes the batch totals.
func (tw *TextWriter) WriteSummary(s *Summary) error {
	_, err := fmt.Fprintf(tw.w,
		"%d games: Light %d, Dark %d, draws %d (ply limit %d), duplicates %d, errors %d, %.1f plies per game, %d nodes\n",
		s.Games, s.LightWins, s.DarkWins, s.Draws, s.PlyLimit, s.Duplicates, s.Errors, s.AvgPlies, s.Nodes)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds a batch of games and its summary.
type JSONOutput struct {
	Games   []*GameRecord `json:"games"`
	Summary *Summary      `json:"summary,omitempty"`
}

// JSONWriter writes results in JSON format.
// It buffers records and writes them as one document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	records []*GameRecord
	summary *Summary
	single  bool // If true, write each record immediately as its own object
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		records: make([]*GameRecord, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record
// immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteRecord buffers a record (or writes it immediately in single mode).
func (jw *JSONWriter) WriteRecord(r *GameRecord) error {
	if jw.single {
		return jw.encode(r)
	}
	jw.records = append(jw.records, r)
	return nil
}

// WriteSummary stores the summary for the next Flush (or writes it
// immediately in single mode).
func (jw *JSONWriter) WriteSummary(s *Summary) error {
	if jw.single {
		return jw.encode(s)
	}
	jw.summary = s
	return nil
}

// Flush writes all buffered records and the summary as one JSON object.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.records) == 0 && jw.summary == nil) {
		return nil
	}

	err := jw.encode(&JSONOutput{Games: jw.records, Summary: jw.summary})

	jw.records = jw.records[:0]
	jw.summary = nil
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
