package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"eyeslot/shared/model"
	"fmt"
)

const (
	TableName  = "prescriptions"
	EntityName = "prescription"

	FieldID               = "id"
	FieldUserEmail        = "user_email"
	FieldName             = "name"
	FieldPowerType        = "power_type"
	FieldPrescriptionData = "prescription_data"
)

var errUnsupportedScan = errors.New("unsupported prescription data type")

// Eye holds the lens correction of one eye. Values are kept as entered ("-1.25", "180").
type Eye struct {
	Spherical   string `json:"spherical"   validate:"max=16"`
	Cylindrical string `json:"cylindrical" validate:"max=16"`
	Axis        string `json:"axis"        validate:"max=16"`
}

// Data is stored as a JSONB document in camelCase, the shape the booking form submits.
type Data struct {
	RightEye Eye `json:"rightEye"`
	LeftEye  Eye `json:"leftEye"`
}

func (d Data) IsZero() bool {
	return d == Data{}
}

func (d Data) Value() (driver.Value, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prescription data: %w", err)
	}

	return raw, nil
}

func (d *Data) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*d = Data{}

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("%w: %T", errUnsupportedScan, src)
	}

	var decoded Data
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("failed to unmarshal prescription data: %w", err)
	}

	*d = decoded

	return nil
}

type Prescription struct {
	ID               string `db:"id"`
	UserEmail        string `db:"user_email"`
	Name             string `db:"name"`
	PowerType        string `db:"power_type"`
	PrescriptionData Data   `db:"prescription_data"`
	model.Metadata
}
