// Package llmjson recovers JSON payloads from model completions. Text
// generation APIs routinely wrap structured output in markdown fencing or
// explanatory prose regardless of instruction, so extraction is tolerant:
// a ```json fence wins over a plain ``` fence, which wins over the raw text.
package llmjson

import (
	"encoding/json"
	"regexp"
	"strings"
)

// MalformedPayloadError reports that no JSON payload could be recovered.
// Raw preserves the original completion text for logging and debugging.
type MalformedPayloadError struct {
	Raw string
}

func (e *MalformedPayloadError) Error() string {
	return "llmjson: model output contains no parseable JSON payload"
}

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)```")
	fencedAnyRe  = regexp.MustCompile("(?s)```\\s*(.*?)```")
)

// Candidate returns the most promising JSON substring of raw: the interior
// of the first ```json fence, else the first plain ``` fence, else raw
// itself. It does not validate the result.
func Candidate(raw string) string {
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := fencedAnyRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

// Extract recovers the JSON payload embedded in a model completion. On
// success it returns the payload bytes; on failure it returns a
// *MalformedPayloadError carrying the original raw text. It never panics,
// whatever the input.
func Extract(raw string) (json.RawMessage, error) {
	candidate := Candidate(raw)
	if json.Valid([]byte(candidate)) {
		return json.RawMessage(candidate), nil
	}

	// The completion may bury the payload in prose with no fencing at all.
	// Try the outermost object, then the outermost array.
	for _, pair := range [][2]byte{{'{', '}'}, {'[', ']'}} {
		start := strings.IndexByte(candidate, pair[0])
		end := strings.LastIndexByte(candidate, pair[1])
		if start == -1 || end <= start {
			continue
		}
		inner := candidate[start : end+1]
		if json.Valid([]byte(inner)) {
			return json.RawMessage(inner), nil
		}
	}

	return nil, &MalformedPayloadError{Raw: raw}
}

// ExtractInto extracts the payload and unmarshals it into out. A payload
// that parses as JSON but does not fit out's shape is reported the same way
// as a missing payload.
func ExtractInto(raw string, out any) error {
	payload, err := Extract(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &MalformedPayloadError{Raw: raw}
	}
	return nil
}
