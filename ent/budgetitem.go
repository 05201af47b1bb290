// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/budgetitem"
)

// BudgetItem is the model entity for the BudgetItem schema.
type BudgetItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// BudgetID holds the value of the "budget_id" field.
	BudgetID string `json:"budget_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// UnitPriceCents holds the value of the "unit_price_cents" field.
	UnitPriceCents int64 `json:"unit_price_cents,omitempty"`
	// ExtraConcept holds the value of the "extra_concept" field.
	ExtraConcept string `json:"extra_concept,omitempty"`
	// ExtraPriceCents holds the value of the "extra_price_cents" field.
	ExtraPriceCents int64 `json:"extra_price_cents,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BudgetItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case budgetitem.FieldQuantity, budgetitem.FieldUnitPriceCents, budgetitem.FieldExtraPriceCents:
			values[i] = new(sql.NullInt64)
		case budgetitem.FieldID, budgetitem.FieldBudgetID, budgetitem.FieldDescription, budgetitem.FieldExtraConcept:
			values[i] = new(sql.NullString)
		case budgetitem.FieldCreatedAt, budgetitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BudgetItem fields.
func (_m *BudgetItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case budgetitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case budgetitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case budgetitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case budgetitem.FieldBudgetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field budget_id", values[i])
			} else if value.Valid {
				_m.BudgetID = value.String
			}
		case budgetitem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case budgetitem.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case budgetitem.FieldUnitPriceCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price_cents", values[i])
			} else if value.Valid {
				_m.UnitPriceCents = value.Int64
			}
		case budgetitem.FieldExtraConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extra_concept", values[i])
			} else if value.Valid {
				_m.ExtraConcept = value.String
			}
		case budgetitem.FieldExtraPriceCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field extra_price_cents", values[i])
			} else if value.Valid {
				_m.ExtraPriceCents = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BudgetItem.
// This includes values selected through modifiers, order, etc.
func (_m *BudgetItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BudgetItem.
// Note that you need to call BudgetItem.Unwrap() before calling this method if this BudgetItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BudgetItem) Update() *BudgetItemUpdateOne {
	return NewBudgetItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BudgetItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BudgetItem) Unwrap() *BudgetItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BudgetItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BudgetItem) String() string {
	var builder strings.Builder
	builder.WriteString("BudgetItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("budget_id=")
	builder.WriteString(_m.BudgetID)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("unit_price_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitPriceCents))
	builder.WriteString(", ")
	builder.WriteString("extra_concept=")
	builder.WriteString(_m.ExtraConcept)
	builder.WriteString(", ")
	builder.WriteString("extra_price_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtraPriceCents))
	builder.WriteByte(')')
	return builder.String()
}

// BudgetItems is a parsable slice of BudgetItem.
type BudgetItems []*BudgetItem
