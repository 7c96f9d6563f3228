package preview_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-certform/pkg/certification"
	"github.com/goliatone/go-certform/pkg/preview"
)

func TestFullNameJoinsPartsInUpperCase(t *testing.T) {
	rec := certification.Empty()
	rec.Prefix = certification.PrefixMr
	rec.Firstname = "Juan"
	rec.MiddleName = "dela Cruz"
	rec.Surname = "Santos"
	rec.Extension = "Jr."

	if got := preview.FullName(rec); got != "MR. JUAN D. SANTOS JR." {
		t.Fatalf("FullName = %q", got)
	}
}

func TestFullNameSkipsMissingParts(t *testing.T) {
	rec := certification.Empty()
	rec.Firstname = "Ana"
	rec.Surname = "Reyes"
	if got := preview.FullName(rec); got != "ANA REYES" {
		t.Fatalf("FullName = %q", got)
	}
	if got := preview.FullName(certification.Empty()); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
}

func TestFullAddress(t *testing.T) {
	rec := certification.Empty()
	rec.HouseBlockLot = "12-A"
	rec.Street = "Rizal St."
	rec.Zone = "Zone 3"
	if got := preview.FullAddress(rec); got != "12-A Rizal St. - Zone 3" {
		t.Fatalf("FullAddress = %q", got)
	}

	rec.Zone = ""
	if got := preview.FullAddress(rec); got != "12-A Rizal St." {
		t.Fatalf("FullAddress without zone = %q", got)
	}
}

func TestDeriveUsesPlaceholdersForEmptyRecord(t *testing.T) {
	got := preview.Derive(certification.Empty(), preview.Locality{})

	want := preview.Certificate{
		Title:           "BARANGAY CERTIFICATION",
		HeaderDate:      "Date not set",
		FullName:        "[NAME]",
		FullAddress:     "[ADDRESS]",
		OrdinalDate:     "[DATE]",
		BodyName:        "{NAME}",
		BodyAddress:     "{Address}",
		Purpose:         "{Purpose}",
		IssuedDay:       "{Day}",
		IssuedMonthYear: "{MONTH, YYYY}",
		NumericDate:     "00/00/0000",
		PunongBarangay:  "HON. [NAME]",
		CertificationNo: "BC-YYYY-MM-XXXX",
		TransactionNo:   "XX",
		Locality:        preview.DefaultLocality,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("certificate mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveSampleRecord(t *testing.T) {
	got := preview.Derive(certification.Sample(), preview.DefaultLocality)

	if got.FullName != "MS. SAGRE L. MANZANO" {
		t.Fatalf("FullName = %q", got.FullName)
	}
	if got.FullAddress != "43-C A. Mabini Street - Sitio 5" {
		t.Fatalf("FullAddress = %q", got.FullAddress)
	}
	if got.HeaderDate != "Saturday, 1 February 2025" {
		t.Fatalf("HeaderDate = %q", got.HeaderDate)
	}
	if got.OrdinalDate != "1st of February, 2025" || got.IssuedDay != "1st" || got.IssuedMonthYear != "February, 2025" {
		t.Fatalf("unexpected ordinal dates %+v", got)
	}
	if got.NumericDate != "02/01/2025" {
		t.Fatalf("NumericDate = %q", got.NumericDate)
	}
	if got.BodyName != got.FullName || got.Purpose != "LOCAL EMPLOYMENT" {
		t.Fatalf("unexpected body %+v", got)
	}
}

func TestEditingSurnameIsReflected(t *testing.T) {
	rec, err := certification.Apply(certification.Sample(), certification.Patch{Field: certification.FieldSurname, Value: "Cruz"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	got := preview.Derive(rec, preview.DefaultLocality).FullName
	if got != "MS. SAGRE L. CRUZ" {
		t.Fatalf("FullName = %q", got)
	}
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 23: "23rd", 31: "31st", 111: "111th"}
	for n, want := range cases {
		if got := preview.Ordinal(n); got != want {
			t.Errorf("Ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestDateFormats(t *testing.T) {
	d := certification.NewDate(2024, time.December, 22)
	if got := preview.LongDate(d); got != "Sunday, 22 December 2024" {
		t.Fatalf("LongDate = %q", got)
	}
	if got := preview.OrdinalDate(d); got != "22nd of December, 2024" {
		t.Fatalf("OrdinalDate = %q", got)
	}
	if got := preview.NumericDate(d); got != "12/22/2024" {
		t.Fatalf("NumericDate = %q", got)
	}
	if preview.LongDate(certification.Date{}) != "" {
		t.Fatalf("expected empty string for unset date")
	}
}
