package certification

import "strings"

// Patch replaces a single field with the text a control produced.
type Patch struct {
	Field Field  `json:"field"`
	Value string `json:"value"`
}

// Apply returns a copy of rec with the patched field replaced. On error the
// returned record is rec unchanged.
func Apply(rec Record, p Patch) (Record, error) {
	next := rec
	if err := next.set(p.Field, p.Value); err != nil {
		return rec, &FieldError{Field: p.Field, Value: p.Value, Err: err}
	}
	return next, nil
}

// ApplyAll applies patches in order and stops at the first rejected one.
func ApplyAll(rec Record, patches ...Patch) (Record, error) {
	for _, p := range patches {
		next, err := Apply(rec, p)
		if err != nil {
			return rec, err
		}
		rec = next
	}
	return rec, nil
}

func (r *Record) set(field Field, value string) error {
	switch field {
	case FieldTransactionNo:
		r.TransactionNo = value
	case FieldCertificationNo:
		r.CertificationNo = value
	case FieldIssuedDate:
		d, err := ParseDate(value)
		if err != nil {
			return err
		}
		r.IssuedDate = d
	case FieldPrefix:
		p, err := ParsePrefix(value)
		if err != nil {
			return err
		}
		r.Prefix = p
	case FieldFirstname:
		r.Firstname = value
	case FieldMiddleName:
		r.MiddleName = value
	case FieldSurname:
		r.Surname = value
	case FieldExtension:
		r.Extension = value
	case FieldHouseBlockLot:
		r.HouseBlockLot = value
	case FieldStreet:
		r.Street = value
	case FieldZone:
		r.Zone = value
	case FieldAge:
		value = strings.TrimSpace(value)
		if value != "" && !isDigits(value) {
			return ErrInvalidNumber
		}
		r.Age = value
	case FieldDateOfBirth:
		d, err := ParseDate(value)
		if err != nil {
			return err
		}
		r.DateOfBirth = d
	case FieldPlaceOfBirth:
		r.PlaceOfBirth = value
	case FieldContactNo:
		r.ContactNo = value
	case FieldResidencyPeriod:
		r.ResidencyPeriod = value
	case FieldRegisteredVoter:
		v, err := ParseVoterStatus(value)
		if err != nil {
			return err
		}
		r.RegisteredVoter = v
	case FieldHouseOwner:
		r.HouseOwner = value
	case FieldRelationship:
		r.Relationship = value
	case FieldPurpose:
		p, err := ParsePurpose(value)
		if err != nil {
			return err
		}
		r.Purpose = p
	case FieldPunongBarangay:
		r.PunongBarangay = value
	case FieldForPunongBrgy:
		r.ForPunongBrgy = value
	default:
		return ErrUnknownField
	}
	return nil
}
