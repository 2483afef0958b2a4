package instance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseJson reads an instance whose fields are the members of a single JSON object
func ParseJson(content []byte, options Options) (Instance, error) {
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()

	var inputJson map[string]any
	if err := decoder.Decode(&inputJson); err != nil {
		return Instance{}, fmt.Errorf("cannot parse instance json: %w", err)
	}
	return fromFields(inputJson, options)
}

func InputFromJson(file string, options Options) (Instance, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return Instance{}, fmt.Errorf("cannot read instance file: %w", err)
	}
	return ParseJson(content, options)
}

// Load picks the instance format from the file extension; anything other than ".json" is read as the text format
func Load(file string, options Options) (Instance, error) {
	if strings.EqualFold(filepath.Ext(file), ".json") {
		return InputFromJson(file, options)
	}
	return InputFromDat(file, options)
}
