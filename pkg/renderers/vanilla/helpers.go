package vanilla

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-certform/pkg/model"
	"github.com/goliatone/go-certform/pkg/renderers/vanilla/components"
)

func componentControlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "fg-" + trimmed
}

func componentErrorID(name string) string {
	controlID := componentControlID(name)
	if controlID == "" {
		return ""
	}
	return controlID + "-error"
}

// resolveComponentName picks the component for a field: an explicit widget
// hint wins, choice fields get a select, everything else an input.
func resolveComponentName(field model.Field) string {
	if widget := strings.TrimSpace(field.UIHints["widget"]); widget != "" {
		return widget
	}
	if field.IsChoice() {
		return components.NameSelect
	}
	return components.NameInput
}

func spanClass(field model.Field) string {
	span, err := strconv.Atoi(strings.TrimSpace(field.UIHints["span"]))
	if err != nil || span < 2 {
		return ""
	}
	return "certform-span-" + strconv.Itoa(span)
}

func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := tokens[:0]
	for _, token := range tokens {
		if strings.HasPrefix(token, "certform-") {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}
