// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Budget is the predicate function for budget builders.
type Budget func(*sql.Selector)

// BudgetItem is the predicate function for budgetitem builders.
type BudgetItem func(*sql.Selector)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// Device is the predicate function for device builders.
type Device func(*sql.Selector)

// LedgerEntry is the predicate function for ledgerentry builders.
type LedgerEntry func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Part is the predicate function for part builders.
type Part func(*sql.Selector)

// PartUsage is the predicate function for partusage builders.
type PartUsage func(*sql.Selector)

// Payment is the predicate function for payment builders.
type Payment func(*sql.Selector)

// RepairRecord is the predicate function for repairrecord builders.
type RepairRecord func(*sql.Selector)

// StockDeduction is the predicate function for stockdeduction builders.
type StockDeduction func(*sql.Selector)

// Ticket is the predicate function for ticket builders.
type Ticket func(*sql.Selector)
