package certification

// Field names a single record field. The string form matches the JSON/YAML key
// and the form control name.
type Field string

const (
	FieldTransactionNo   Field = "transactionNo"
	FieldCertificationNo Field = "certificationNo"
	FieldIssuedDate      Field = "issuedDate"
	FieldPrefix          Field = "prefix"
	FieldFirstname       Field = "firstname"
	FieldMiddleName      Field = "middleName"
	FieldSurname         Field = "surname"
	FieldExtension       Field = "extension"
	FieldHouseBlockLot   Field = "houseBlockLot"
	FieldStreet          Field = "street"
	FieldZone            Field = "zone"
	FieldAge             Field = "age"
	FieldDateOfBirth     Field = "dateOfBirth"
	FieldPlaceOfBirth    Field = "placeOfBirth"
	FieldContactNo       Field = "contactNo"
	FieldResidencyPeriod Field = "residencyPeriod"
	FieldRegisteredVoter Field = "registeredVoter"
	FieldHouseOwner      Field = "houseOwner"
	FieldRelationship    Field = "relationship"
	FieldPurpose         Field = "purpose"
	FieldPunongBarangay  Field = "punongBarangay"
	FieldForPunongBrgy   Field = "forPunongBrgy"
)

// Kind groups fields by the control that edits them.
type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindDate   Kind = "date"
	KindChoice Kind = "choice"
)

var fieldOrder = []Field{
	FieldTransactionNo,
	FieldCertificationNo,
	FieldIssuedDate,
	FieldPrefix,
	FieldFirstname,
	FieldMiddleName,
	FieldSurname,
	FieldExtension,
	FieldHouseBlockLot,
	FieldStreet,
	FieldZone,
	FieldAge,
	FieldDateOfBirth,
	FieldPlaceOfBirth,
	FieldContactNo,
	FieldResidencyPeriod,
	FieldRegisteredVoter,
	FieldHouseOwner,
	FieldRelationship,
	FieldPurpose,
	FieldPunongBarangay,
	FieldForPunongBrgy,
}

// Fields returns every record field in form order.
func Fields() []Field {
	return append([]Field(nil), fieldOrder...)
}

// ParseField resolves a field name.
func ParseField(name string) (Field, error) {
	for _, field := range fieldOrder {
		if string(field) == name {
			return field, nil
		}
	}
	return "", &FieldError{Field: Field(name), Err: ErrUnknownField}
}

// Kind reports which control edits the field.
func (f Field) Kind() Kind {
	switch f {
	case FieldIssuedDate, FieldDateOfBirth:
		return KindDate
	case FieldAge:
		return KindNumber
	case FieldPrefix, FieldPurpose, FieldRegisteredVoter:
		return KindChoice
	default:
		return KindText
	}
}
