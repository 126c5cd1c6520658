package parser

import (
	"context"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/jptrs93/proxygen/internal/ir"
	"github.com/jptrs93/proxygen/internal/logger"
)

// ErrMissingSeparator is returned when a field line inside a struct has no
// "name: Type" separator. It aborts the whole parse.
var ErrMissingSeparator = errors.New("field line has no name/type separator")

type Parser struct {
	Fs     afero.Fs
	Logger *zap.SugaredLogger
}

func (p *Parser) ParseFiles(ctx context.Context, filePaths []string) ([]ir.File, error) {
	var result []ir.File
	for _, path := range filePaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := afero.ReadFile(p.fs(), path)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		decls, err := Parse(string(data))
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
		p.log().Debugw("parsed source", "file", path, "declarations", len(decls))
		result = append(result, ir.File{Path: path, Declarations: decls})
	}
	return result, nil
}

// ParseReader parses a single stream such as stdin. path is only used to label
// the result and errors.
func (p *Parser) ParseReader(ctx context.Context, path string, r io.Reader) (ir.File, error) {
	if err := ctx.Err(); err != nil {
		return ir.File{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return ir.File{}, errors.Wrapf(err, "read %s", label(path))
	}
	decls, err := Parse(string(data))
	if err != nil {
		return ir.File{}, errors.Wrapf(err, "parse %s", label(path))
	}
	p.log().Debugw("parsed source", "file", label(path), "declarations", len(decls))
	return ir.File{Path: path, Declarations: decls}, nil
}

func (p *Parser) fs() afero.Fs {
	if p.Fs == nil {
		return afero.NewOsFs()
	}
	return p.Fs
}

func (p *Parser) log() *zap.SugaredLogger {
	if p.Logger == nil {
		return logger.Nop()
	}
	return p.Logger
}

func label(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}

// Parse extracts the struct declarations from src in the order their closing
// braces appear. A declaration still open at the end of src is dropped.
func Parse(src string) ([]ir.Declaration, error) {
	var m machine
	for i, line := range strings.Split(src, "\n") {
		if err := m.feed(i+1, line); err != nil {
			return nil, err
		}
	}
	return m.done, nil
}

type machine struct {
	state state
	open  ir.Declaration
	done  []ir.Declaration
}

func (m *machine) feed(lineNo int, line string) error {
	trimmed := strings.TrimSpace(line)
	switch classify(trimmed, m.state) {
	case lineHeader:
		m.open = ir.Declaration{Name: headerName(trimmed)}
		m.state = stateInside
	case lineField:
		name, typ, ok := splitField(trimmed)
		if !ok {
			err := errors.Wrapf(ErrMissingSeparator, "line %d in struct %s: %q", lineNo, m.open.Name, trimmed)
			return errors.WithHint(err, `field lines must look like "pub name: Type,"`)
		}
		m.open.Fields = append(m.open.Fields, ir.Field{Name: name, Type: typ})
	case lineClose:
		m.done = append(m.done, m.open)
		m.open = ir.Declaration{}
		m.state = stateOutside
	}
	return nil
}
