package generate

import (
	"context"
	"io"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

func WriteFiles(ctx context.Context, fs afero.Fs, stdout io.Writer, outputs []OutputFile) error {
	for _, file := range outputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if file.Path == "" {
			if _, err := stdout.Write(file.Content); err != nil {
				return errors.Wrap(err, "write stdout")
			}
			continue
		}
		if err := fs.MkdirAll(filepath.Dir(file.Path), 0o755); err != nil {
			return errors.Wrapf(err, "create dir %s", filepath.Dir(file.Path))
		}
		if err := afero.WriteFile(fs, file.Path, file.Content, 0o644); err != nil {
			return errors.Wrapf(err, "write file %s", file.Path)
		}
	}
	return nil
}
