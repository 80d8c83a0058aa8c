package litematic

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/arloliu/litematic/errs"
	"github.com/arloliu/litematic/format"
	"github.com/arloliu/litematic/nbt"
)

// Load reads and decodes the schematic at path.
//
// Parameters:
//   - path: schematic file, plain or gzip-wrapped
//   - opts: logger and codec options
//
// Returns:
//   - *nbt.Document: the decoded tree
//   - format.ContainerMode: the framing found on disk, to pass back to Save
//   - error: ErrLoad wrapping the read or decode failure
func Load(path string, opts ...Option) (*nbt.Document, format.ContainerMode, error) {
	cfg := newConfig(opts)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", errs.ErrLoad, err)
	}

	doc, err := nbt.Decode(data, cfg.codecOptions()...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", errs.ErrLoad, path, err)
	}

	cfg.logger.Info("loaded schematic",
		slog.String("path", path),
		slog.String("mode", doc.Mode.String()),
		slog.Int("bytes", len(data)))

	return doc, doc.Mode, nil
}

// Save encodes doc with the given container mode and writes it to path.
//
// The primary path writes a temporary file next to path and renames it over
// the target, so readers never observe a partial file. If that fails (for
// example when the directory is not writable but the file is), the target is
// truncated and written in place. doc.Mode is left untouched.
//
// Returns:
//   - error: ErrSave carrying the causes of both attempts
func Save(doc *nbt.Document, path string, mode format.ContainerMode, opts ...Option) error {
	cfg := newConfig(opts)

	if doc == nil {
		return fmt.Errorf("%w: %w: document", errs.ErrSave, errs.ErrNilTag)
	}
	out := *doc
	out.Mode = mode

	data, err := nbt.Encode(&out, cfg.codecOptions()...)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSave, err)
	}

	primaryErr := writeAtomic(path, data)
	if primaryErr == nil {
		cfg.logger.Info("saved schematic",
			slog.String("path", path), slog.String("mode", mode.String()), slog.Int("bytes", len(data)))

		return nil
	}

	cfg.logger.Warn("atomic save failed, writing in place",
		slog.String("path", path), slog.Any("error", primaryErr))

	fallbackErr := writeInPlace(path, &out, cfg)
	if fallbackErr != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrSave, path, errors.Join(primaryErr, fallbackErr))
	}

	cfg.logger.Info("saved schematic in place", slog.String("path", path), slog.String("mode", mode.String()))

	return nil
}

func writeAtomic(path string, data []byte) error {
	perm := filePerm(path)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

func writeInPlace(path string, doc *nbt.Document, cfg *IOConfig) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm(path))
	if err != nil {
		return err
	}

	if err := nbt.EncodeTo(f, doc, cfg.codecOptions()...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// filePerm returns the permission bits of an existing file, 0o644 otherwise.
func filePerm(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}

	return 0o644
}
