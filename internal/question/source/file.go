package source

import (
	"context"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-engine/internal/question"
)

// FileLoader reads the mode files from a directory tree.
type FileLoader struct {
	fsys   fs.FS
	logger zerolog.Logger
}

var _ Loader = (*FileLoader)(nil)

// NewFileLoader reads data files from fsys, typically os.DirFS(dir).
func NewFileLoader(fsys fs.FS, logger zerolog.Logger) *FileLoader {
	return &FileLoader{
		fsys:   fsys,
		logger: logger.With().Str("component", "file_loader").Logger(),
	}
}

// Load decodes every mode file into a catalog.
func (l *FileLoader) Load(ctx context.Context) (*question.Catalog, error) {
	items, themes, err := decodeAll(ctx, func(_ context.Context, name string) ([]byte, error) {
		return fs.ReadFile(l.fsys, name)
	})
	if err != nil {
		return nil, err
	}
	return assemble(items, themes, l.logger)
}
