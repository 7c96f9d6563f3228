package model

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

const extensionNamespace = "x-formgen"

// Extension keys with dedicated Field slots rather than metadata entries.
const (
	extensionOrder       = "order"
	extensionPlaceholder = "placeholder"
)

var uiHintKeys = []string{
	"cssClass",
	"helpText",
	"hideLabel",
	"inputType",
	"section",
	"span",
	"submitLabel",
	"widget",
}

// AllowedUIHintKeys returns a sorted copy of the recognised UI extension keys.
func AllowedUIHintKeys() []string {
	keys := append([]string(nil), uiHintKeys...)
	sort.Strings(keys)
	return keys
}

// IsAllowedUIHintKey reports whether key is part of the UI hint contract.
func IsAllowedUIHintKey(key string) bool {
	for _, candidate := range uiHintKeys {
		if candidate == key {
			return true
		}
	}
	return false
}

// IsKnownExtensionKey reports whether key (without the x-formgen- prefix) is
// consumed by the builder, either as a UI hint or as a dedicated field slot.
func IsKnownExtensionKey(key string) bool {
	return key == extensionOrder || key == extensionPlaceholder || IsAllowedUIHintKey(key)
}

// metadataFromExtensions flattens x-formgen and x-formgen-* extensions into
// string metadata.
func metadataFromExtensions(ext map[string]any) map[string]string {
	if len(ext) == 0 {
		return nil
	}

	result := make(map[string]string)
	for key, value := range ext {
		switch {
		case key == extensionNamespace:
			nested, ok := value.(map[string]any)
			if !ok {
				continue
			}
			for nestedKey, nestedValue := range nested {
				if str, ok := CanonicalizeExtensionValue(nestedValue); ok {
					result[nestedKey] = str
				}
			}
		case strings.HasPrefix(key, extensionNamespace+"-"):
			if str, ok := CanonicalizeExtensionValue(value); ok {
				result[strings.TrimPrefix(key, extensionNamespace+"-")] = str
			}
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func filterUIHints(metadata map[string]string) map[string]string {
	if len(metadata) == 0 {
		return nil
	}
	var hints map[string]string
	for key, value := range metadata {
		if !IsAllowedUIHintKey(key) {
			continue
		}
		if hints == nil {
			hints = make(map[string]string)
		}
		hints[key] = value
	}
	return hints
}

// CanonicalizeExtensionValue turns an extension value into a stable string.
// It returns false when the value has no deterministic representation.
func CanonicalizeExtensionValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case map[string]any, []any:
		payload, err := json.Marshal(v)
		if err != nil || string(payload) == "{}" || string(payload) == "[]" {
			return "", false
		}
		return string(payload), true
	default:
		return "", false
	}
}
