package certification

import "strings"

// Prefix is the honorific printed in front of the full name.
type Prefix string

const (
	PrefixNone Prefix = ""
	PrefixMs   Prefix = "MS."
	PrefixMr   Prefix = "MR."
	PrefixMrs  Prefix = "MRS."
)

// Prefixes lists the selectable prefixes in display order.
func Prefixes() []Prefix {
	return []Prefix{PrefixMs, PrefixMr, PrefixMrs}
}

// ParsePrefix accepts one of Prefixes or the empty string.
func ParsePrefix(raw string) (Prefix, error) {
	return parseOption(raw, Prefixes())
}

// Purpose is the reason the certificate is requested.
type Purpose string

const (
	PurposeNone                  Purpose = ""
	PurposeLocalEmployment       Purpose = "LOCAL EMPLOYMENT"
	PurposeBusinessPermit        Purpose = "BUSINESS PERMIT"
	PurposeSchoolRequirements    Purpose = "SCHOOL REQUIREMENTS"
	PurposeGovernmentTransaction Purpose = "GOVERNMENT TRANSACTION"
	PurposeOthers                Purpose = "OTHERS"
)

// Purposes lists the selectable purposes in display order.
func Purposes() []Purpose {
	return []Purpose{
		PurposeLocalEmployment,
		PurposeBusinessPermit,
		PurposeSchoolRequirements,
		PurposeGovernmentTransaction,
		PurposeOthers,
	}
}

// ParsePurpose accepts one of Purposes or the empty string.
func ParsePurpose(raw string) (Purpose, error) {
	return parseOption(raw, Purposes())
}

// VoterStatus answers "Registered Voter?".
type VoterStatus string

const (
	VoterUnknown VoterStatus = ""
	VoterYes     VoterStatus = "Yes"
	VoterNo      VoterStatus = "No"
)

// VoterStatuses lists the selectable answers in display order.
func VoterStatuses() []VoterStatus {
	return []VoterStatus{VoterYes, VoterNo}
}

// ParseVoterStatus accepts one of VoterStatuses or the empty string.
func ParseVoterStatus(raw string) (VoterStatus, error) {
	return parseOption(raw, VoterStatuses())
}

// Options returns the allowed values of an enumerated field, or nil when the
// field is free text.
func Options(field Field) []string {
	switch field {
	case FieldPrefix:
		return optionStrings(Prefixes())
	case FieldPurpose:
		return optionStrings(Purposes())
	case FieldRegisteredVoter:
		return optionStrings(VoterStatuses())
	default:
		return nil
	}
}

func parseOption[T ~string](raw string, allowed []T) (T, error) {
	if raw == "" {
		return "", nil
	}
	for _, option := range allowed {
		if string(option) == raw {
			return option, nil
		}
	}
	return "", ErrInvalidOption
}

func optionStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func isDigits(raw string) bool {
	return raw != "" && strings.Trim(raw, "0123456789") == ""
}
