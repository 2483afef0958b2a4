package instance

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// ParseDat extracts an instance from the declarative text format:
//
//	int NumberPatients = 3;
//	Duration = [120, 300, 350];
//	BlockAvailability = [[[1,0],[1,1]]];
func ParseDat(text string, options Options) (Instance, error) {
	values := make(map[string]any)

	for _, f := range scalarFields {
		for _, name := range append([]string{f.name}, f.aliases...) {
			match := scalarPattern(name).FindStringSubmatch(text)
			if match == nil {
				continue
			}
			values[name] = json.Number(match[1])
			break
		}
	}

	for _, f := range arrayFields {
		match := arrayPattern(f.name).FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value, err := decodeLiteral(f.name, match[1])
		if err != nil {
			return Instance{}, err
		}
		values[f.name] = value
	}

	return fromFields(values, options)
}

func InputFromDat(file string, options Options) (Instance, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Instance{}, fmt.Errorf("cannot read instance file: %w", err)
	}
	return ParseDat(string(bytes), options)
}

func scalarPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\bint\s+` + regexp.QuoteMeta(name) + `\s*=\s*(-?\d+)\s*;`)
}

func arrayPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\w])` + regexp.QuoteMeta(name) + `\s*=\s*(\[[\s\S]*?\])\s*;`)
}
