package litematic

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/litematic/internal/hash"
	"github.com/arloliu/litematic/nbt"
)

// Fingerprint returns the xxHash64 of doc's unframed payload. Two documents
// with equal fingerprints encode to the same bytes before gzip wrapping.
func Fingerprint(doc *nbt.Document, opts ...Option) (uint64, error) {
	cfg := newConfig(opts)

	payload, err := nbt.EncodePayload(doc, cfg.codecOptions()...)
	if err != nil {
		return 0, err
	}

	return hash.Sum(payload), nil
}

// VerifyReport is the outcome of re-reading a saved schematic.
type VerifyReport struct {
	Missing  []string // required keys missing from the saved file
	Expected uint64   // fingerprint of the in-memory document
	Actual   uint64   // fingerprint of the file on disk
}

// StructureOK reports whether every required key is present.
func (r VerifyReport) StructureOK() bool {
	return len(r.Missing) == 0
}

// Match reports whether the file holds exactly the in-memory document.
func (r VerifyReport) Match() bool {
	return r.Expected == r.Actual
}

// OK reports whether the saved file is complete and identical to the document.
func (r VerifyReport) OK() bool {
	return r.StructureOK() && r.Match()
}

// VerifySaved reloads path and compares it with want.
//
// Returns:
//   - VerifyReport: structure and fingerprint comparison
//   - error: ErrLoad if the file cannot be read back
func VerifySaved(path string, want *nbt.Document, opts ...Option) (VerifyReport, error) {
	cfg := newConfig(opts)

	expected, err := Fingerprint(want, opts...)
	if err != nil {
		return VerifyReport{}, fmt.Errorf("fingerprint: %w", err)
	}

	got, _, err := Load(path, opts...)
	if err != nil {
		return VerifyReport{}, err
	}

	actual, err := Fingerprint(got, opts...)
	if err != nil {
		return VerifyReport{}, fmt.Errorf("fingerprint: %w", err)
	}

	report := VerifyReport{Missing: MissingKeys(got), Expected: expected, Actual: actual}
	if !report.Match() {
		cfg.logger.Warn("saved schematic differs from memory",
			slog.String("path", path),
			slog.String("expected", fmt.Sprintf("%016x", expected)),
			slog.String("actual", fmt.Sprintf("%016x", actual)))
	}

	return report, nil
}
