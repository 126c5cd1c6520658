package generate

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	var stdout bytes.Buffer

	err := WriteFiles(context.Background(), fs, &stdout, []OutputFile{
		{Path: "out/nested/a_proxy.rs", Content: []byte("a")},
		{Content: []byte("to stdout")},
		{Path: "out/b_proxy.rs", Content: []byte("b")},
	})
	require.NoError(t, err)

	assert.Equal(t, "to stdout", stdout.String())
	got, err := afero.ReadFile(fs, "out/nested/a_proxy.rs")
	require.NoError(t, err)
	assert.Equal(t, "a", string(got))
	got, err = afero.ReadFile(fs, "out/b_proxy.rs")
	require.NoError(t, err)
	assert.Equal(t, "b", string(got))
}

func TestWriteFilesReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := WriteFiles(context.Background(), fs, &bytes.Buffer{}, []OutputFile{{Path: "out/a_proxy.rs"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out")
}

func TestWriteFilesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout bytes.Buffer
	err := WriteFiles(ctx, afero.NewMemMapFs(), &stdout, []OutputFile{{Content: []byte("x")}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stdout.String())
}
