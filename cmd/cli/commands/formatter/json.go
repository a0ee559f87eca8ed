package formatter

import (
	"bytes"
	"encoding/json"
)

const standardIndentation = "    "

// ToStandardJSON returns the indented JSON representation of v, without HTML
// escaping.
func ToStandardJSON(v any) (string, error) {
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", standardIndentation)
	if err := encoder.Encode(v); err != nil {
		return "", err
	}
	return buffer.String(), nil
}
