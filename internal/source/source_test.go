package source

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, path := range []string{
		"src/lib.rs",
		"src/attrs/dyn_attr.rs",
		"src/attrs/dyn_prop.rs",
		"src/combat/damages.rs",
		"src/combat/notes.txt",
	} {
		require.NoError(t, afero.WriteFile(fs, path, []byte("// "+path), 0o644))
	}
	return fs
}

func TestExpand(t *testing.T) {
	fs := testFs(t)

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "plain path",
			patterns: []string{"src/lib.rs"},
			want:     []string{"src/lib.rs"},
		},
		{
			name:     "recursive glob",
			patterns: []string{"src/**/*.rs"},
			want: []string{
				"src/attrs/dyn_attr.rs",
				"src/attrs/dyn_prop.rs",
				"src/combat/damages.rs",
				"src/lib.rs",
			},
		},
		{
			name:     "duplicates keep first position",
			patterns: []string{"src/combat/damages.rs", "src/combat/*"},
			want:     []string{"src/combat/damages.rs", "src/combat/notes.txt"},
		},
		{
			name:     "directories are not matched",
			patterns: []string{"src/*"},
			want:     []string{"src/lib.rs"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Expand(fs, tc.patterns)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExpandNoMatch(t *testing.T) {
	_, err := Expand(testFs(t), []string{"src/**/*.rs", "src/motions/*.rs"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoMatch))
	assert.Contains(t, err.Error(), "src/motions/*.rs")
	assert.NotEmpty(t, errors.GetAllHints(err))
}
