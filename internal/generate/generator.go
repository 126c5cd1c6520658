package generate

import "github.com/jptrs93/proxygen/internal/ir"

// OutputFile is one rendered output. An empty Path means standard output.
type OutputFile struct {
	Path    string
	Content []byte
}

type Options struct {
	OutDir string
	Suffix string
}

type Generator interface {
	Name() string
	Generate(files []ir.File, options Options) ([]OutputFile, error)
}
