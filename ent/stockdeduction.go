// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/stockdeduction"
)

// StockDeduction is the model entity for the StockDeduction schema.
type StockDeduction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID string `json:"ticket_id,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// ReversedAt holds the value of the "reversed_at" field.
	ReversedAt *time.Time `json:"reversed_at,omitempty"`
	// ReversedBy holds the value of the "reversed_by" field.
	ReversedBy   string `json:"reversed_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StockDeduction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stockdeduction.FieldID, stockdeduction.FieldTicketID, stockdeduction.FieldCreatedBy, stockdeduction.FieldReversedBy:
			values[i] = new(sql.NullString)
		case stockdeduction.FieldCreatedAt, stockdeduction.FieldReversedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StockDeduction fields.
func (_m *StockDeduction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stockdeduction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stockdeduction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stockdeduction.FieldTicketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = value.String
			}
		case stockdeduction.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case stockdeduction.FieldReversedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reversed_at", values[i])
			} else if value.Valid {
				_m.ReversedAt = new(time.Time)
				*_m.ReversedAt = value.Time
			}
		case stockdeduction.FieldReversedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reversed_by", values[i])
			} else if value.Valid {
				_m.ReversedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StockDeduction.
// This includes values selected through modifiers, order, etc.
func (_m *StockDeduction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StockDeduction.
// Note that you need to call StockDeduction.Unwrap() before calling this method if this StockDeduction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StockDeduction) Update() *StockDeductionUpdateOne {
	return NewStockDeductionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StockDeduction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StockDeduction) Unwrap() *StockDeduction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StockDeduction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StockDeduction) String() string {
	var builder strings.Builder
	builder.WriteString("StockDeduction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ticket_id=")
	builder.WriteString(_m.TicketID)
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	if v := _m.ReversedAt; v != nil {
		builder.WriteString("reversed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("reversed_by=")
	builder.WriteString(_m.ReversedBy)
	builder.WriteByte(')')
	return builder.String()
}

// StockDeductions is a parsable slice of StockDeduction.
type StockDeductions []*StockDeduction
