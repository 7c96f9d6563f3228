package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	pkgopenapi "github.com/goliatone/go-certform/pkg/openapi"
)

// Loader implements pkgopenapi.Loader for file and fs.FS sources.
type Loader struct {
	fs fs.FS
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New constructs a Loader from resolved options.
func New(options pkgopenapi.LoaderOptions) pkgopenapi.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgopenapi.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgopenapi.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = fmt.Errorf("openapi loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgopenapi.Document{}, err
	}

	return pkgopenapi.NewDocument(src, data)
}
