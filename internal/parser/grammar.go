package parser

import "strings"

const (
	headerPrefix   = "pub struct "
	headerSuffix   = "{"
	fieldSuffix    = ","
	fieldSeparator = ": "
	closeMarker    = "}"
	markerPrefix   = "#"
	commentPrefix  = "//"
)

// visibilityPrefixes are tried in order and at most one is stripped.
var visibilityPrefixes = []string{"pub ", "pub(crate) ", "pub(super) "}

type state int

const (
	stateOutside state = iota
	stateInside
)

func (s state) String() string {
	if s == stateInside {
		return "inside"
	}
	return "outside"
}

type lineKind int

const (
	lineOther lineKind = iota
	lineSkip
	lineHeader
	lineField
	lineClose
)

func (k lineKind) String() string {
	switch k {
	case lineSkip:
		return "skip"
	case lineHeader:
		return "header"
	case lineField:
		return "field"
	case lineClose:
		return "close"
	default:
		return "other"
	}
}

// classify decides what a trimmed line means in the given state. Header lines
// are only recognised outside a declaration; field and close lines only inside.
func classify(trimmed string, s state) lineKind {
	if trimmed == "" || strings.HasPrefix(trimmed, markerPrefix) || strings.HasPrefix(trimmed, commentPrefix) {
		return lineSkip
	}
	switch s {
	case stateOutside:
		if strings.HasPrefix(trimmed, headerPrefix) && strings.HasSuffix(trimmed, headerSuffix) {
			return lineHeader
		}
	case stateInside:
		if strings.HasSuffix(trimmed, fieldSuffix) {
			return lineField
		}
		if trimmed == closeMarker {
			return lineClose
		}
	}
	return lineOther
}

func headerName(trimmed string) string {
	name := trimmed[len(headerPrefix) : len(trimmed)-len(headerSuffix)]
	return strings.TrimSpace(name)
}

func stripVisibility(s string) string {
	for _, prefix := range visibilityPrefixes {
		if strings.HasPrefix(s, prefix) {
			return s[len(prefix):]
		}
	}
	return s
}

// splitField splits "name: Type" at the first separator.
func splitField(trimmed string) (name, typ string, ok bool) {
	body := strings.TrimSuffix(trimmed, fieldSuffix)
	body = stripVisibility(body)
	return strings.Cut(body, fieldSeparator)
}
