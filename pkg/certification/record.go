package certification

// Record holds one certificate request. Every field is independent and may be
// empty; derived text such as the full name is never stored here.
type Record struct {
	TransactionNo   string      `json:"transactionNo" yaml:"transactionNo"`
	CertificationNo string      `json:"certificationNo" yaml:"certificationNo"`
	IssuedDate      Date        `json:"issuedDate" yaml:"issuedDate"`
	Prefix          Prefix      `json:"prefix" yaml:"prefix"`
	Firstname       string      `json:"firstname" yaml:"firstname"`
	MiddleName      string      `json:"middleName" yaml:"middleName"`
	Surname         string      `json:"surname" yaml:"surname"`
	Extension       string      `json:"extension" yaml:"extension"`
	HouseBlockLot   string      `json:"houseBlockLot" yaml:"houseBlockLot"`
	Street          string      `json:"street" yaml:"street"`
	Zone            string      `json:"zone" yaml:"zone"`
	Age             string      `json:"age" yaml:"age"`
	DateOfBirth     Date        `json:"dateOfBirth" yaml:"dateOfBirth"`
	PlaceOfBirth    string      `json:"placeOfBirth" yaml:"placeOfBirth"`
	ContactNo       string      `json:"contactNo" yaml:"contactNo"`
	ResidencyPeriod string      `json:"residencyPeriod" yaml:"residencyPeriod"`
	RegisteredVoter VoterStatus `json:"registeredVoter" yaml:"registeredVoter"`
	HouseOwner      string      `json:"houseOwner" yaml:"houseOwner"`
	Relationship    string      `json:"relationship" yaml:"relationship"`
	Purpose         Purpose     `json:"purpose" yaml:"purpose"`
	PunongBarangay  string      `json:"punongBarangay" yaml:"punongBarangay"`
	ForPunongBrgy   string      `json:"forPunongBrgy" yaml:"forPunongBrgy"`
}

// Empty returns the blank record used by the "new record" action.
func Empty() Record {
	return Record{}
}

// Sample returns the record a fresh page starts with.
func Sample() Record {
	return Record{
		TransactionNo:   "10",
		CertificationNo: "BC-2025-01-0010",
		IssuedDate:      NewDate(2025, 2, 1),
		Prefix:          PrefixMs,
		Firstname:       "SAGRE",
		MiddleName:      "LOUISE",
		Surname:         "MANZANO",
		HouseBlockLot:   "43-C",
		Street:          "A. Mabini Street",
		Zone:            "Sitio 5",
		Age:             "0",
		Purpose:         PurposeLocalEmployment,
		PunongBarangay:  "Hon. LEO E. BES",
	}
}

// IsEmpty reports whether every field is unset.
func (r Record) IsEmpty() bool {
	return r == Record{}
}

// Value returns the text form of a field as a form control would show it.
func (r Record) Value(field Field) string {
	switch field {
	case FieldTransactionNo:
		return r.TransactionNo
	case FieldCertificationNo:
		return r.CertificationNo
	case FieldIssuedDate:
		return r.IssuedDate.String()
	case FieldPrefix:
		return string(r.Prefix)
	case FieldFirstname:
		return r.Firstname
	case FieldMiddleName:
		return r.MiddleName
	case FieldSurname:
		return r.Surname
	case FieldExtension:
		return r.Extension
	case FieldHouseBlockLot:
		return r.HouseBlockLot
	case FieldStreet:
		return r.Street
	case FieldZone:
		return r.Zone
	case FieldAge:
		return r.Age
	case FieldDateOfBirth:
		return r.DateOfBirth.String()
	case FieldPlaceOfBirth:
		return r.PlaceOfBirth
	case FieldContactNo:
		return r.ContactNo
	case FieldResidencyPeriod:
		return r.ResidencyPeriod
	case FieldRegisteredVoter:
		return string(r.RegisteredVoter)
	case FieldHouseOwner:
		return r.HouseOwner
	case FieldRelationship:
		return r.Relationship
	case FieldPurpose:
		return string(r.Purpose)
	case FieldPunongBarangay:
		return r.PunongBarangay
	case FieldForPunongBrgy:
		return r.ForPunongBrgy
	default:
		return ""
	}
}

// Values flattens the record into field name → text value.
func (r Record) Values() map[string]string {
	out := make(map[string]string, len(fieldOrder))
	for _, field := range fieldOrder {
		out[string(field)] = r.Value(field)
	}
	return out
}

// FromValues builds a record from field name → text value. Unknown keys and
// rejected values are reported; the first error stops the build.
func FromValues(values map[string]string) (Record, error) {
	rec := Empty()
	for _, field := range fieldOrder {
		raw, ok := values[string(field)]
		if !ok {
			continue
		}
		next, err := Apply(rec, Patch{Field: field, Value: raw})
		if err != nil {
			return Record{}, err
		}
		rec = next
	}
	for name := range values {
		if _, err := ParseField(name); err != nil {
			return Record{}, err
		}
	}
	return rec, nil
}
