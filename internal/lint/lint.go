// Package lint reports x-formgen extensions the form builder does not
// understand.
package lint

import (
	"context"
	"fmt"
	"sort"
	"strings"

	internalmodel "github.com/goliatone/go-certform/internal/model"
	pkgopenapi "github.com/goliatone/go-certform/pkg/openapi"
)

const extensionNamespace = "x-formgen"

// Violation is one unsupported extension.
type Violation struct {
	File     string
	Location string
	Message  string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s -> %s", v.File, v.Location, v.Message)
}

// Document lints every operation of doc. Violations are sorted by location.
func Document(ctx context.Context, parser pkgopenapi.Parser, doc pkgopenapi.Document) ([]Violation, error) {
	operations, err := parser.Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("lint: parse operations: %w", err)
	}

	file := doc.Location()
	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var result []Violation
	for _, id := range ids {
		op := operations[id]
		base := []string{"operation", id}
		result = append(result, lintExtensions(file, base, op.Extensions)...)
		result = append(result, lintSchema(file, appendPath(base, "requestBody"), op.RequestBody)...)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].File == result[j].File {
			if result[i].Location == result[j].Location {
				return result[i].Message < result[j].Message
			}
			return result[i].Location < result[j].Location
		}
		return result[i].File < result[j].File
	})
	return result, nil
}

func lintSchema(file string, path []string, schema pkgopenapi.Schema) []Violation {
	var result []Violation
	if len(schema.Extensions) > 0 {
		result = append(result, lintExtensions(file, path, schema.Extensions)...)
	}

	keys := make([]string, 0, len(schema.Properties))
	for key := range schema.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		result = append(result, lintSchema(file, appendPath(path, "properties."+key), schema.Properties[key])...)
	}
	return result
}

func lintExtensions(file string, path []string, extensions map[string]any) []Violation {
	if len(extensions) == 0 {
		return nil
	}

	keys := make([]string, 0, len(extensions))
	for key := range extensions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var result []Violation
	for _, key := range keys {
		value := extensions[key]
		switch {
		case key == extensionNamespace:
			nested, ok := value.(map[string]any)
			if !ok {
				result = append(result, Violation{
					File:     file,
					Location: formatLocation(path),
					Message:  fmt.Sprintf("%s must be an object, found %T", extensionNamespace, value),
				})
				continue
			}
			nestedKeys := make([]string, 0, len(nested))
			for nestedKey := range nested {
				nestedKeys = append(nestedKeys, nestedKey)
			}
			sort.Strings(nestedKeys)
			for _, nestedKey := range nestedKeys {
				result = append(result, validateHint(file, appendPath(path, nestedKey), nestedKey, nested[nestedKey])...)
			}
		case strings.HasPrefix(key, extensionNamespace+"-"):
			result = append(result, validateHint(file, path, strings.TrimPrefix(key, extensionNamespace+"-"), value)...)
		}
	}
	return result
}

func validateHint(file string, path []string, key string, value any) []Violation {
	location := formatLocation(path)
	if key == "" {
		return []Violation{{File: file, Location: location, Message: "extension key is empty"}}
	}
	if !internalmodel.IsKnownExtensionKey(key) {
		return []Violation{{
			File:     file,
			Location: location,
			Message:  fmt.Sprintf("unsupported extension key %q (supported: order, placeholder, %s)", key, strings.Join(internalmodel.AllowedUIHintKeys(), ", ")),
		}}
	}
	if _, ok := internalmodel.CanonicalizeExtensionValue(value); !ok {
		return []Violation{{
			File:     file,
			Location: location,
			Message:  fmt.Sprintf("value for %q must be a string, number, or boolean (got %T)", key, value),
		}}
	}
	return nil
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
