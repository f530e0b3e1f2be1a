package gamestate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileBridge implements Bridge over a directory of text files, one file per
// key, the way the game plugin exchanges values with external tools.
type FileBridge struct {
	dir    string
	logger *slog.Logger
}

// Ensure FileBridge implements Bridge interface
var _ Bridge = (*FileBridge)(nil)

// NewFileBridge creates a bridge rooted at dir (usually the game folder).
func NewFileBridge(dir string, logger *slog.Logger) *FileBridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileBridge{
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the directory the bridge reads from and writes to.
func (b *FileBridge) Dir() string {
	return b.dir
}

func (b *FileBridge) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(b.dir, key+".txt"), nil
}

func (b *FileBridge) ReadGameInfo(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p, err := b.path(key)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.logger.Debug("Game info file not found", "key", key, "path", p)
			return "", nil
		}
		return "", fmt.Errorf("failed to read game info %s: %w", key, err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (b *FileBridge) WriteGameInfo(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := b.path(key)
	if err != nil {
		return err
	}

	if err := os.WriteFile(p, []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write game info %s: %w", key, err)
	}

	b.logger.Debug("Game info written", "key", key, "value", value)
	return nil
}
