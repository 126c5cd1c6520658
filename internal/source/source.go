// Package source resolves input arguments to the Rust files to parse.
package source

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

var ErrNoMatch = errors.New("pattern matched no files")

// Expand resolves each pattern (a plain path or a doublestar glob such as
// src/**/*.rs) against fs. Matches are sorted per pattern and a path matched
// by an earlier pattern is not repeated.
func Expand(fs afero.Fs, patterns []string) ([]string, error) {
	var result []string
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := glob(fs, pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			err := errors.Wrapf(ErrNoMatch, "%s", pattern)
			return nil, errors.WithHint(err, "quote glob patterns so the shell does not expand them, and check the working directory")
		}
		sort.Strings(matches)
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			result = append(result, match)
		}
	}
	return result, nil
}

func glob(fs afero.Fs, pattern string) ([]string, error) {
	base, rest := doublestar.SplitPattern(filepath.ToSlash(filepath.Clean(pattern)))
	root := fs
	if base != "." {
		root = afero.NewBasePathFs(fs, filepath.FromSlash(base))
	}
	matches, err := doublestar.Glob(afero.NewIOFS(root), rest, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Wrapf(err, "glob %s", pattern)
	}
	if base == "." {
		return matches, nil
	}
	for i, match := range matches {
		matches[i] = filepath.Join(filepath.FromSlash(base), filepath.FromSlash(match))
	}
	return matches, nil
}
