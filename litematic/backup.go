package litematic

import (
	"fmt"
	"os"

	"github.com/arloliu/litematic/compress"
	"github.com/arloliu/litematic/format"
)

// BackupPath returns where Backup stores the copy of path: path + ".backup",
// followed by the codec's extension when compressed.
func BackupPath(path string, compression format.CompressionType) string {
	return path + ".backup" + compression.Extension()
}

// Backup copies the file at path to BackupPath, compressing the copy with
// the given codec. The original file's permissions are kept.
//
// Returns:
//   - string: the backup file path
//   - error: read, compression or write failure
func Backup(path string, compression format.CompressionType) (string, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}

	packed, err := codec.Compress(data)
	if err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}

	dst := BackupPath(path, compression)
	if err := os.WriteFile(dst, packed, filePerm(path)); err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}

	return dst, nil
}

// Restore overwrites path with the content of its backup.
func Restore(path string, compression format.CompressionType) error {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return err
	}

	packed, err := os.ReadFile(BackupPath(path, compression))
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	data, err := codec.Decompress(packed)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	if err := writeAtomic(path, data); err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	return nil
}
