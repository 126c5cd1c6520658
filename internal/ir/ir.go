package ir

type File struct {
	Path         string
	Declarations []Declaration
}

type Declaration struct {
	Name   string
	Fields []Field
}

type Field struct {
	Name string
	Type string
}

type Kind int

const (
	KindReference Kind = iota
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// valueTypes lists the field types whose accessors copy instead of borrowing.
// The match is lexical: aliases of these types are reference kind.
var valueTypes = map[string]struct{}{
	"i64": {},
	"f64": {},
}

func Classify(fieldType string) Kind {
	if _, ok := valueTypes[fieldType]; ok {
		return KindValue
	}
	return KindReference
}

func (f Field) Kind() Kind {
	return Classify(f.Type)
}
