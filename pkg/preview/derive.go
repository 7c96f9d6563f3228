package preview

import (
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-certform/pkg/certification"
)

// Locality names the issuing barangay printed in the certificate prose.
type Locality struct {
	Barangay string `json:"barangay"`
	City     string `json:"city"`
}

// DefaultLocality is the barangay the certificate template was written for.
var DefaultLocality = Locality{Barangay: "West Rembo", City: "Taguig City"}

// Certificate is the display view of a record. Every string is ready to print;
// empty inputs have already been replaced by placeholder tokens.
type Certificate struct {
	Title           string   `json:"title"`
	HeaderDate      string   `json:"headerDate"`
	FullName        string   `json:"fullName"`
	FullAddress     string   `json:"fullAddress"`
	OrdinalDate     string   `json:"ordinalDate"`
	BodyName        string   `json:"bodyName"`
	BodyAddress     string   `json:"bodyAddress"`
	Purpose         string   `json:"purpose"`
	IssuedDay       string   `json:"issuedDay"`
	IssuedMonthYear string   `json:"issuedMonthYear"`
	NumericDate     string   `json:"numericDate"`
	PunongBarangay  string   `json:"punongBarangay"`
	ForPunongBrgy   string   `json:"forPunongBrgy,omitempty"`
	CertificationNo string   `json:"certificationNo"`
	TransactionNo   string   `json:"transactionNo"`
	Locality        Locality `json:"locality"`
	QRCode          string   `json:"qrCode,omitempty"`
}

// FullName joins prefix, first name, middle initial, surname and suffix in
// upper case. It returns "" when every name part is empty.
func FullName(rec certification.Record) string {
	parts := make([]string, 0, 5)
	for _, part := range []string{
		string(rec.Prefix),
		strings.TrimSpace(rec.Firstname),
		middleInitial(rec.MiddleName),
		strings.TrimSpace(rec.Surname),
		strings.TrimSpace(rec.Extension),
	} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.ToUpper(strings.Join(parts, " "))
}

// FullAddress renders "<house/block/lot> <street> - <zone>". It returns ""
// when every address part is empty.
func FullAddress(rec certification.Record) string {
	local := joinNonEmpty(" ", strings.TrimSpace(rec.HouseBlockLot), strings.TrimSpace(rec.Street))
	return joinNonEmpty(" - ", local, strings.TrimSpace(rec.Zone))
}

// Derive computes the display view of rec.
func Derive(rec certification.Record, locality Locality) Certificate {
	name := FullName(rec)
	address := FullAddress(rec)
	if locality == (Locality{}) {
		locality = DefaultLocality
	}

	return Certificate{
		Title:           "BARANGAY CERTIFICATION",
		HeaderDate:      orDefault(LongDate(rec.IssuedDate), PlaceholderLongDate),
		FullName:        orDefault(name, PlaceholderName),
		FullAddress:     orDefault(address, PlaceholderAddress),
		OrdinalDate:     orDefault(OrdinalDate(rec.IssuedDate), PlaceholderOrdinalDate),
		BodyName:        orDefault(name, PlaceholderBodyName),
		BodyAddress:     orDefault(address, PlaceholderBodyAddress),
		Purpose:         orDefault(string(rec.Purpose), PlaceholderPurpose),
		IssuedDay:       orDefault(OrdinalDay(rec.IssuedDate), PlaceholderDay),
		IssuedMonthYear: orDefault(MonthYear(rec.IssuedDate), PlaceholderMonthYear),
		NumericDate:     orDefault(NumericDate(rec.IssuedDate), PlaceholderNumericDate),
		PunongBarangay:  orDefault(strings.TrimSpace(rec.PunongBarangay), PlaceholderPunongBarangay),
		ForPunongBrgy:   strings.TrimSpace(rec.ForPunongBrgy),
		CertificationNo: orDefault(strings.TrimSpace(rec.CertificationNo), PlaceholderCertificationNo),
		TransactionNo:   orDefault(strings.TrimSpace(rec.TransactionNo), PlaceholderTransactionNo),
		Locality:        locality,
	}
}

func middleInitial(middle string) string {
	middle = strings.TrimSpace(middle)
	if middle == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(middle)
	return string(r) + "."
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
