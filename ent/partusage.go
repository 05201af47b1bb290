// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/partusage"
)

// PartUsage is the model entity for the PartUsage schema.
type PartUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// RepairRecordID holds the value of the "repair_record_id" field.
	RepairRecordID string `json:"repair_record_id,omitempty"`
	// PartID holds the value of the "part_id" field.
	PartID string `json:"part_id,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// SourceDescription holds the value of the "source_description" field.
	SourceDescription string `json:"source_description,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PartUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case partusage.FieldQuantity:
			values[i] = new(sql.NullInt64)
		case partusage.FieldID, partusage.FieldRepairRecordID, partusage.FieldPartID, partusage.FieldSourceDescription:
			values[i] = new(sql.NullString)
		case partusage.FieldCreatedAt, partusage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PartUsage fields.
func (_m *PartUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case partusage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case partusage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case partusage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case partusage.FieldRepairRecordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repair_record_id", values[i])
			} else if value.Valid {
				_m.RepairRecordID = value.String
			}
		case partusage.FieldPartID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field part_id", values[i])
			} else if value.Valid {
				_m.PartID = value.String
			}
		case partusage.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case partusage.FieldSourceDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_description", values[i])
			} else if value.Valid {
				_m.SourceDescription = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PartUsage.
// This includes values selected through modifiers, order, etc.
func (_m *PartUsage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PartUsage.
// Note that you need to call PartUsage.Unwrap() before calling this method if this PartUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PartUsage) Update() *PartUsageUpdateOne {
	return NewPartUsageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PartUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PartUsage) Unwrap() *PartUsage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PartUsage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PartUsage) String() string {
	var builder strings.Builder
	builder.WriteString("PartUsage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("repair_record_id=")
	builder.WriteString(_m.RepairRecordID)
	builder.WriteString(", ")
	builder.WriteString("part_id=")
	builder.WriteString(_m.PartID)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("source_description=")
	builder.WriteString(_m.SourceDescription)
	builder.WriteByte(')')
	return builder.String()
}

// PartUsages is a parsable slice of PartUsage.
type PartUsages []*PartUsage
