package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("openapi loader: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %q: %w", path, err)
	}
	return data, nil
}
