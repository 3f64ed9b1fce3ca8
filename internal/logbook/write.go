package logbook

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write атомарно перезаписывает файл лога: header, затем записи в порядке
// убывания id. Содержимое пишется во временный файл в том же каталоге
// и подменяется rename'ом — читатель никогда не увидит наполовину
// записанный лог, а при ошибке прежний файл остается нетронутым.
func Write(path string, log *Log) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".stravasync-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(log.Render()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write log: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace log file: %w", err)
	}

	return nil
}
