// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// BudgetsColumns holds the columns for the "budgets" table.
	BudgetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "approved", Type: field.TypeBool, Default: false},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
	}
	// BudgetsTable holds the schema information for the "budgets" table.
	BudgetsTable = &schema.Table{
		Name:       "budgets",
		Columns:    BudgetsColumns,
		PrimaryKey: []*schema.Column{BudgetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "budget_ticket_id",
				Unique:  true,
				Columns: []*schema.Column{BudgetsColumns[3]},
			},
		},
	}
	// BudgetItemsColumns holds the columns for the "budget_items" table.
	BudgetItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "budget_id", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "unit_price_cents", Type: field.TypeInt64},
		{Name: "extra_concept", Type: field.TypeString, Nullable: true},
		{Name: "extra_price_cents", Type: field.TypeInt64, Default: 0},
	}
	// BudgetItemsTable holds the schema information for the "budget_items" table.
	BudgetItemsTable = &schema.Table{
		Name:       "budget_items",
		Columns:    BudgetItemsColumns,
		PrimaryKey: []*schema.Column{BudgetItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "budgetitem_budget_id",
				Unique:  false,
				Columns: []*schema.Column{BudgetItemsColumns[3]},
			},
		},
	}
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
	}
	// DevicesColumns holds the columns for the "devices" table.
	DevicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString, Nullable: true},
		{Name: "brand", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "serial_number", Type: field.TypeString, Nullable: true},
	}
	// DevicesTable holds the schema information for the "devices" table.
	DevicesTable = &schema.Table{
		Name:       "devices",
		Columns:    DevicesColumns,
		PrimaryKey: []*schema.Column{DevicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "device_customer_id",
				Unique:  false,
				Columns: []*schema.Column{DevicesColumns[3]},
			},
		},
	}
	// LedgerEntriesColumns holds the columns for the "ledger_entries" table.
	LedgerEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "part_id", Type: field.TypeString},
		{Name: "quantity_delta", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"REPAIR_CONSUMPTION", "REPAIR_REVERSAL", "SALE", "RESTOCK", "MANUAL_ADJUSTMENT"}},
		{Name: "reference", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
	}
	// LedgerEntriesTable holds the schema information for the "ledger_entries" table.
	LedgerEntriesTable = &schema.Table{
		Name:       "ledger_entries",
		Columns:    LedgerEntriesColumns,
		PrimaryKey: []*schema.Column{LedgerEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ledgerentry_reference_kind",
				Unique:  false,
				Columns: []*schema.Column{LedgerEntriesColumns[5], LedgerEntriesColumns[4]},
			},
			{
				Name:    "ledgerentry_part_id",
				Unique:  false,
				Columns: []*schema.Column{LedgerEntriesColumns[2]},
			},
			{
				Name:    "ledgerentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{LedgerEntriesColumns[1]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recipient_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"TICKET_STATUS_CHANGE", "LOW_STOCK", "PAYMENT_REGISTERED"}},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_recipient_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// PartsColumns holds the columns for the "parts" table.
	PartsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "sku", Type: field.TypeString, Unique: true},
		{Name: "stock_quantity", Type: field.TypeInt, Default: 0},
		{Name: "minimum_stock", Type: field.TypeInt, Default: 0},
		{Name: "maximum_stock", Type: field.TypeInt, Default: 0},
		{Name: "unit_price_cents", Type: field.TypeInt64, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// PartsTable holds the schema information for the "parts" table.
	PartsTable = &schema.Table{
		Name:       "parts",
		Columns:    PartsColumns,
		PrimaryKey: []*schema.Column{PartsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "part_name",
				Unique:  false,
				Columns: []*schema.Column{PartsColumns[3]},
			},
			{
				Name:    "part_active",
				Unique:  false,
				Columns: []*schema.Column{PartsColumns[9]},
			},
		},
	}
	// PartUsagesColumns holds the columns for the "part_usages" table.
	PartUsagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "repair_record_id", Type: field.TypeString},
		{Name: "part_id", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "source_description", Type: field.TypeString, Nullable: true},
	}
	// PartUsagesTable holds the schema information for the "part_usages" table.
	PartUsagesTable = &schema.Table{
		Name:       "part_usages",
		Columns:    PartUsagesColumns,
		PrimaryKey: []*schema.Column{PartUsagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "partusage_repair_record_id_part_id",
				Unique:  true,
				Columns: []*schema.Column{PartUsagesColumns[3], PartUsagesColumns[4]},
			},
			{
				Name:    "partusage_part_id",
				Unique:  false,
				Columns: []*schema.Column{PartUsagesColumns[4]},
			},
		},
	}
	// PaymentsColumns holds the columns for the "payments" table.
	PaymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString},
		{Name: "amount_cents", Type: field.TypeInt64},
		{Name: "method", Type: field.TypeEnum, Enums: []string{"CASH", "CARD", "TRANSFER", "MERCADOPAGO"}},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"ACTIVE", "VOIDED"}, Default: "ACTIVE"},
		{Name: "provider_payment_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "voided_at", Type: field.TypeTime, Nullable: true},
		{Name: "voided_by", Type: field.TypeString, Nullable: true},
	}
	// PaymentsTable holds the schema information for the "payments" table.
	PaymentsTable = &schema.Table{
		Name:       "payments",
		Columns:    PaymentsColumns,
		PrimaryKey: []*schema.Column{PaymentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "payment_ticket_id",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[3]},
			},
			{
				Name:    "payment_state",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[6]},
			},
		},
	}
	// RepairRecordsColumns holds the columns for the "repair_records" table.
	RepairRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "diagnosis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "observations", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// RepairRecordsTable holds the schema information for the "repair_records" table.
	RepairRecordsTable = &schema.Table{
		Name:       "repair_records",
		Columns:    RepairRecordsColumns,
		PrimaryKey: []*schema.Column{RepairRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "repairrecord_ticket_id",
				Unique:  true,
				Columns: []*schema.Column{RepairRecordsColumns[3]},
			},
		},
	}
	// StockDeductionsColumns holds the columns for the "stock_deductions" table.
	StockDeductionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "reversed_at", Type: field.TypeTime, Nullable: true},
		{Name: "reversed_by", Type: field.TypeString, Nullable: true},
	}
	// StockDeductionsTable holds the schema information for the "stock_deductions" table.
	StockDeductionsTable = &schema.Table{
		Name:       "stock_deductions",
		Columns:    StockDeductionsColumns,
		PrimaryKey: []*schema.Column{StockDeductionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stockdeduction_ticket_id",
				Unique:  true,
				Columns: []*schema.Column{StockDeductionsColumns[2]},
			},
		},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "device_id", Type: field.TypeString},
		{Name: "technician_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"RECEIVED", "DIAGNOSING", "DIAGNOSIS_COMPLETE", "BUDGET_PENDING", "BUDGET_APPROVED", "IN_REPAIR", "REPAIRED", "READY_FOR_DELIVERY", "DELIVERED", "CANCELLED"}, Default: "RECEIVED"},
		{Name: "cancelled", Type: field.TypeBool, Default: false},
		{Name: "cancel_reason", Type: field.TypeString, Nullable: true},
		{Name: "status_before_cancellation", Type: field.TypeString, Nullable: true},
		{Name: "delivered", Type: field.TypeBool, Default: false},
		{Name: "problem_description", Type: field.TypeString, Nullable: true},
		{Name: "diagnosis_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "diagnosis_finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "repair_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "repair_finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_status",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[6]},
			},
			{
				Name:    "ticket_customer_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[3]},
			},
			{
				Name:    "ticket_technician_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		BudgetsTable,
		BudgetItemsTable,
		CustomersTable,
		DevicesTable,
		LedgerEntriesTable,
		NotificationsTable,
		PartsTable,
		PartUsagesTable,
		PaymentsTable,
		RepairRecordsTable,
		StockDeductionsTable,
		TicketsTable,
	}
)

func init() {
	PartsTable.Annotation = &entsql.Annotation{
		Check: "stock_quantity >= 0",
	}
}
