package fleetctl

import (
	"strings"
)

// Interpret recovers a structured value from raw fleetctl output. The tool
// does not emit pure JSON on every code path (warnings, progress lines), so
// decoding strategies are tried in order, first success wins:
//
//  1. the whole trimmed text as one JSON document
//  2. NDJSON: every non-blank line an independent document, collected into
//     an array — all lines must parse or the strategy is abandoned
//  3. the span between the earliest '['/'{' and the latest ']'/'}', which
//     tolerates human-readable banners around the payload
//
// When nothing works the returned ParseError carries the direct-decode
// error message.
func Interpret(raw []byte) (Value, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return Value{}, &ParseError{Detail: "empty output"}
	}

	v, directErr := DecodeValue([]byte(text))
	if directErr == nil {
		return v, nil
	}
	if v, ok := decodeLines(text); ok {
		return v, nil
	}
	if v, ok := decodeEmbedded(text); ok {
		return v, nil
	}
	return Value{}, &ParseError{Detail: directErr.Error()}
}

// decodeLines attempts an NDJSON read. It only applies when more than one
// non-blank line exists, and never returns partial results: a single
// unparseable line abandons the whole strategy.
func decodeLines(text string) (Value, bool) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return Value{}, false
	}

	elems := make([]Value, 0, len(lines))
	for _, line := range lines {
		v, err := DecodeValue([]byte(line))
		if err != nil {
			return Value{}, false
		}
		elems = append(elems, v)
	}
	return ArrayValue(elems), true
}

// decodeEmbedded slices from the earliest '['/'{' to the latest ']'/'}' and
// parses that span. The heuristic can mis-slice text containing several
// independent JSON fragments or brackets inside earlier string literals;
// it matches the observed fleetctl output shapes and stays as is.
func decodeEmbedded(text string) (Value, bool) {
	start := earliestIndex(text, '[', '{')
	end := latestIndex(text, ']', '}')
	if start < 0 || end <= start {
		return Value{}, false
	}
	v, err := DecodeValue([]byte(text[start : end+1]))
	if err != nil {
		return Value{}, false
	}
	return v, true
}

func earliestIndex(text string, a, b byte) int {
	ia := strings.IndexByte(text, a)
	ib := strings.IndexByte(text, b)
	switch {
	case ia < 0:
		return ib
	case ib < 0:
		return ia
	case ia < ib:
		return ia
	default:
		return ib
	}
}

func latestIndex(text string, a, b byte) int {
	ia := strings.LastIndexByte(text, a)
	ib := strings.LastIndexByte(text, b)
	if ia > ib {
		return ia
	}
	return ib
}
