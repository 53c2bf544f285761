package models

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"slices"
	"strings"
)

var signatureWordRe = regexp.MustCompile(`[a-z0-9]{4,}`)

var signatureStopwords = map[string]bool{
	"that": true, "this": true, "with": true, "from": true, "into": true,
	"then": true, "please": true, "would": true, "could": true, "should": true,
	"have": true, "when": true, "where": true, "which": true, "their": true,
}

// RequestSignature fingerprints a request for pattern recall: the planner
// looks patterns up by it, the reflector records them under it. Same text
// modulo casing, punctuation, and word order gives the same signature.
func RequestSignature(requestType RequestType, message string) string {
	words := signatureWordRe.FindAllString(strings.ToLower(message), -1)
	keep := make([]string, 0, len(words))
	for _, w := range words {
		if !signatureStopwords[w] {
			keep = append(keep, w)
		}
	}
	slices.Sort(keep)
	keep = slices.Compact(keep)
	if len(keep) > 12 {
		keep = keep[:12]
	}

	sum := sha256.Sum256([]byte(strings.Join(keep, " ")))
	return "req:" + string(requestType) + ":" + hex.EncodeToString(sum[:6])
}

// StructuralSignature fingerprints a plan's shape for macro patterns: the
// ordered executor kinds and refs of its steps.
func StructuralSignature(parts []string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return "plan:" + hex.EncodeToString(sum[:6])
}
