package preview

// Placeholder tokens shown in place of empty fields.
const (
	PlaceholderName            = "[NAME]"
	PlaceholderAddress         = "[ADDRESS]"
	PlaceholderLongDate        = "Date not set"
	PlaceholderOrdinalDate     = "[DATE]"
	PlaceholderNumericDate     = "00/00/0000"
	PlaceholderBodyName        = "{NAME}"
	PlaceholderBodyAddress     = "{Address}"
	PlaceholderPurpose         = "{Purpose}"
	PlaceholderDay             = "{Day}"
	PlaceholderMonthYear       = "{MONTH, YYYY}"
	PlaceholderPunongBarangay  = "HON. [NAME]"
	PlaceholderCertificationNo = "BC-YYYY-MM-XXXX"
	PlaceholderTransactionNo   = "XX"
)

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
