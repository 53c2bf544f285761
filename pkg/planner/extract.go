package planner

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var errNoJSON = errors.New("no JSON found in model output")

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	fencedBlockRe   = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
)

// extractJSON recovers a JSON document from model output by ladder: direct
// parse, first balanced object/array, trailing-comma repair, then fenced
// code block. Models drift between these shapes; callers get bytes that
// json.Unmarshal accepts or errNoJSON.
func extractJSON(text string) ([]byte, error) {
	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) {
		return []byte(trimmed), nil
	}

	if candidate := firstBalanced(trimmed); candidate != "" {
		if json.Valid([]byte(candidate)) {
			return []byte(candidate), nil
		}
		repaired := trailingCommaRe.ReplaceAllString(candidate, "$1")
		if json.Valid([]byte(repaired)) {
			return []byte(repaired), nil
		}
	}

	for _, match := range fencedBlockRe.FindAllStringSubmatch(trimmed, -1) {
		inner := strings.TrimSpace(match[1])
		if json.Valid([]byte(inner)) {
			return []byte(inner), nil
		}
		if candidate := firstBalanced(inner); candidate != "" {
			repaired := trailingCommaRe.ReplaceAllString(candidate, "$1")
			if json.Valid([]byte(repaired)) {
				return []byte(repaired), nil
			}
		}
	}
	return nil, errNoJSON
}

// firstBalanced returns the first balanced {…} or […] span, respecting
// string literals and escapes.
func firstBalanced(text string) string {
	start := -1
	var open, closer byte
	for i := 0; i < len(text); i++ {
		if text[i] == '{' || text[i] == '[' {
			start = i
			open = text[i]
			if open == '{' {
				closer = '}'
			} else {
				closer = ']'
			}
			break
		}
	}
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
