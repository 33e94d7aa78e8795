package file

import (
	"context"
	"fmt"
	"os"

	"legaldata-srv/internal/catalogue/repository"
)

// SaveReadme replaces the file content. opts.FileName is ignored; the configured path wins.
func (r *implRepository) SaveReadme(ctx context.Context, opts repository.SaveReadmeOptions) (repository.SaveReadmeOutput, error) {
	if err := os.WriteFile(r.path, opts.Content, defaultFileMode); err != nil {
		r.l.Errorf(ctx, "catalogue.repository.file.SaveReadme: Failed to write %s: %v", r.path, err)
		return repository.SaveReadmeOutput{}, fmt.Errorf("%w: %v", repository.ErrReadmeSaveFailed, err)
	}

	r.l.Debugf(ctx, "catalogue.repository.file.SaveReadme: Wrote %d bytes to %s", len(opts.Content), r.path)
	return repository.SaveReadmeOutput{Locations: []string{r.path}}, nil
}
