// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent/auditlog"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/budget"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/budgetitem"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/customer"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/device"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/ledgerentry"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/notification"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/part"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/partusage"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/payment"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/repairrecord"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/schema"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/stockdeduction"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/ticket"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	budgetMixin := schema.Budget{}.Mixin()
	budgetMixinFields0 := budgetMixin[0].Fields()
	_ = budgetMixinFields0
	budgetFields := schema.Budget{}.Fields()
	_ = budgetFields
	// budgetDescCreatedAt is the schema descriptor for created_at field.
	budgetDescCreatedAt := budgetMixinFields0[0].Descriptor()
	// budget.DefaultCreatedAt holds the default value on creation for the created_at field.
	budget.DefaultCreatedAt = budgetDescCreatedAt.Default.(func() time.Time)
	// budgetDescUpdatedAt is the schema descriptor for updated_at field.
	budgetDescUpdatedAt := budgetMixinFields0[1].Descriptor()
	// budget.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	budget.DefaultUpdatedAt = budgetDescUpdatedAt.Default.(func() time.Time)
	// budget.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	budget.UpdateDefaultUpdatedAt = budgetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// budgetDescTicketID is the schema descriptor for ticket_id field.
	budgetDescTicketID := budgetFields[1].Descriptor()
	// budget.TicketIDValidator is a validator for the "ticket_id" field. It is called by the builders before save.
	budget.TicketIDValidator = budgetDescTicketID.Validators[0].(func(string) error)
	// budgetDescApproved is the schema descriptor for approved field.
	budgetDescApproved := budgetFields[2].Descriptor()
	// budget.DefaultApproved holds the default value on creation for the approved field.
	budget.DefaultApproved = budgetDescApproved.Default.(bool)
	budgetitemMixin := schema.BudgetItem{}.Mixin()
	budgetitemMixinFields0 := budgetitemMixin[0].Fields()
	_ = budgetitemMixinFields0
	budgetitemFields := schema.BudgetItem{}.Fields()
	_ = budgetitemFields
	// budgetitemDescCreatedAt is the schema descriptor for created_at field.
	budgetitemDescCreatedAt := budgetitemMixinFields0[0].Descriptor()
	// budgetitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	budgetitem.DefaultCreatedAt = budgetitemDescCreatedAt.Default.(func() time.Time)
	// budgetitemDescUpdatedAt is the schema descriptor for updated_at field.
	budgetitemDescUpdatedAt := budgetitemMixinFields0[1].Descriptor()
	// budgetitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	budgetitem.DefaultUpdatedAt = budgetitemDescUpdatedAt.Default.(func() time.Time)
	// budgetitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	budgetitem.UpdateDefaultUpdatedAt = budgetitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// budgetitemDescBudgetID is the schema descriptor for budget_id field.
	budgetitemDescBudgetID := budgetitemFields[1].Descriptor()
	// budgetitem.BudgetIDValidator is a validator for the "budget_id" field. It is called by the builders before save.
	budgetitem.BudgetIDValidator = budgetitemDescBudgetID.Validators[0].(func(string) error)
	// budgetitemDescDescription is the schema descriptor for description field.
	budgetitemDescDescription := budgetitemFields[2].Descriptor()
	// budgetitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	budgetitem.DescriptionValidator = budgetitemDescDescription.Validators[0].(func(string) error)
	// budgetitemDescQuantity is the schema descriptor for quantity field.
	budgetitemDescQuantity := budgetitemFields[3].Descriptor()
	// budgetitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	budgetitem.QuantityValidator = budgetitemDescQuantity.Validators[0].(func(int) error)
	// budgetitemDescUnitPriceCents is the schema descriptor for unit_price_cents field.
	budgetitemDescUnitPriceCents := budgetitemFields[4].Descriptor()
	// budgetitem.UnitPriceCentsValidator is a validator for the "unit_price_cents" field. It is called by the builders before save.
	budgetitem.UnitPriceCentsValidator = budgetitemDescUnitPriceCents.Validators[0].(func(int64) error)
	// budgetitemDescExtraPriceCents is the schema descriptor for extra_price_cents field.
	budgetitemDescExtraPriceCents := budgetitemFields[6].Descriptor()
	// budgetitem.DefaultExtraPriceCents holds the default value on creation for the extra_price_cents field.
	budgetitem.DefaultExtraPriceCents = budgetitemDescExtraPriceCents.Default.(int64)
	// budgetitem.ExtraPriceCentsValidator is a validator for the "extra_price_cents" field. It is called by the builders before save.
	budgetitem.ExtraPriceCentsValidator = budgetitemDescExtraPriceCents.Validators[0].(func(int64) error)
	customerMixin := schema.Customer{}.Mixin()
	customerMixinFields0 := customerMixin[0].Fields()
	_ = customerMixinFields0
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerMixinFields0[0].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerMixinFields0[1].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[1].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	deviceMixin := schema.Device{}.Mixin()
	deviceMixinFields0 := deviceMixin[0].Fields()
	_ = deviceMixinFields0
	deviceFields := schema.Device{}.Fields()
	_ = deviceFields
	// deviceDescCreatedAt is the schema descriptor for created_at field.
	deviceDescCreatedAt := deviceMixinFields0[0].Descriptor()
	// device.DefaultCreatedAt holds the default value on creation for the created_at field.
	device.DefaultCreatedAt = deviceDescCreatedAt.Default.(func() time.Time)
	// deviceDescUpdatedAt is the schema descriptor for updated_at field.
	deviceDescUpdatedAt := deviceMixinFields0[1].Descriptor()
	// device.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	device.DefaultUpdatedAt = deviceDescUpdatedAt.Default.(func() time.Time)
	// device.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	device.UpdateDefaultUpdatedAt = deviceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// deviceDescCustomerID is the schema descriptor for customer_id field.
	deviceDescCustomerID := deviceFields[1].Descriptor()
	// device.CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	device.CustomerIDValidator = deviceDescCustomerID.Validators[0].(func(string) error)
	ledgerentryMixin := schema.LedgerEntry{}.Mixin()
	ledgerentryMixinFields0 := ledgerentryMixin[0].Fields()
	_ = ledgerentryMixinFields0
	ledgerentryFields := schema.LedgerEntry{}.Fields()
	_ = ledgerentryFields
	// ledgerentryDescCreatedAt is the schema descriptor for created_at field.
	ledgerentryDescCreatedAt := ledgerentryMixinFields0[0].Descriptor()
	// ledgerentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	ledgerentry.DefaultCreatedAt = ledgerentryDescCreatedAt.Default.(func() time.Time)
	// ledgerentryDescPartID is the schema descriptor for part_id field.
	ledgerentryDescPartID := ledgerentryFields[1].Descriptor()
	// ledgerentry.PartIDValidator is a validator for the "part_id" field. It is called by the builders before save.
	ledgerentry.PartIDValidator = ledgerentryDescPartID.Validators[0].(func(string) error)
	// ledgerentryDescCreatedBy is the schema descriptor for created_by field.
	ledgerentryDescCreatedBy := ledgerentryFields[5].Descriptor()
	// ledgerentry.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	ledgerentry.CreatedByValidator = ledgerentryDescCreatedBy.Validators[0].(func(string) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUpdatedAt is the schema descriptor for updated_at field.
	notificationDescUpdatedAt := notificationMixinFields0[1].Descriptor()
	// notification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notification.DefaultUpdatedAt = notificationDescUpdatedAt.Default.(func() time.Time)
	// notification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notification.UpdateDefaultUpdatedAt = notificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationDescRecipientID is the schema descriptor for recipient_id field.
	notificationDescRecipientID := notificationFields[1].Descriptor()
	// notification.RecipientIDValidator is a validator for the "recipient_id" field. It is called by the builders before save.
	notification.RecipientIDValidator = notificationDescRecipientID.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[4].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = notificationDescMessage.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[7].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	partMixin := schema.Part{}.Mixin()
	partMixinFields0 := partMixin[0].Fields()
	_ = partMixinFields0
	partFields := schema.Part{}.Fields()
	_ = partFields
	// partDescCreatedAt is the schema descriptor for created_at field.
	partDescCreatedAt := partMixinFields0[0].Descriptor()
	// part.DefaultCreatedAt holds the default value on creation for the created_at field.
	part.DefaultCreatedAt = partDescCreatedAt.Default.(func() time.Time)
	// partDescUpdatedAt is the schema descriptor for updated_at field.
	partDescUpdatedAt := partMixinFields0[1].Descriptor()
	// part.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	part.DefaultUpdatedAt = partDescUpdatedAt.Default.(func() time.Time)
	// part.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	part.UpdateDefaultUpdatedAt = partDescUpdatedAt.UpdateDefault.(func() time.Time)
	// partDescName is the schema descriptor for name field.
	partDescName := partFields[1].Descriptor()
	// part.NameValidator is a validator for the "name" field. It is called by the builders before save.
	part.NameValidator = partDescName.Validators[0].(func(string) error)
	// partDescSku is the schema descriptor for sku field.
	partDescSku := partFields[2].Descriptor()
	// part.SkuValidator is a validator for the "sku" field. It is called by the builders before save.
	part.SkuValidator = partDescSku.Validators[0].(func(string) error)
	// partDescStockQuantity is the schema descriptor for stock_quantity field.
	partDescStockQuantity := partFields[3].Descriptor()
	// part.DefaultStockQuantity holds the default value on creation for the stock_quantity field.
	part.DefaultStockQuantity = partDescStockQuantity.Default.(int)
	// part.StockQuantityValidator is a validator for the "stock_quantity" field. It is called by the builders before save.
	part.StockQuantityValidator = partDescStockQuantity.Validators[0].(func(int) error)
	// partDescMinimumStock is the schema descriptor for minimum_stock field.
	partDescMinimumStock := partFields[4].Descriptor()
	// part.DefaultMinimumStock holds the default value on creation for the minimum_stock field.
	part.DefaultMinimumStock = partDescMinimumStock.Default.(int)
	// part.MinimumStockValidator is a validator for the "minimum_stock" field. It is called by the builders before save.
	part.MinimumStockValidator = partDescMinimumStock.Validators[0].(func(int) error)
	// partDescMaximumStock is the schema descriptor for maximum_stock field.
	partDescMaximumStock := partFields[5].Descriptor()
	// part.DefaultMaximumStock holds the default value on creation for the maximum_stock field.
	part.DefaultMaximumStock = partDescMaximumStock.Default.(int)
	// part.MaximumStockValidator is a validator for the "maximum_stock" field. It is called by the builders before save.
	part.MaximumStockValidator = partDescMaximumStock.Validators[0].(func(int) error)
	// partDescUnitPriceCents is the schema descriptor for unit_price_cents field.
	partDescUnitPriceCents := partFields[6].Descriptor()
	// part.DefaultUnitPriceCents holds the default value on creation for the unit_price_cents field.
	part.DefaultUnitPriceCents = partDescUnitPriceCents.Default.(int64)
	// part.UnitPriceCentsValidator is a validator for the "unit_price_cents" field. It is called by the builders before save.
	part.UnitPriceCentsValidator = partDescUnitPriceCents.Validators[0].(func(int64) error)
	// partDescActive is the schema descriptor for active field.
	partDescActive := partFields[7].Descriptor()
	// part.DefaultActive holds the default value on creation for the active field.
	part.DefaultActive = partDescActive.Default.(bool)
	partusageMixin := schema.PartUsage{}.Mixin()
	partusageMixinFields0 := partusageMixin[0].Fields()
	_ = partusageMixinFields0
	partusageFields := schema.PartUsage{}.Fields()
	_ = partusageFields
	// partusageDescCreatedAt is the schema descriptor for created_at field.
	partusageDescCreatedAt := partusageMixinFields0[0].Descriptor()
	// partusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	partusage.DefaultCreatedAt = partusageDescCreatedAt.Default.(func() time.Time)
	// partusageDescUpdatedAt is the schema descriptor for updated_at field.
	partusageDescUpdatedAt := partusageMixinFields0[1].Descriptor()
	// partusage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	partusage.DefaultUpdatedAt = partusageDescUpdatedAt.Default.(func() time.Time)
	// partusage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	partusage.UpdateDefaultUpdatedAt = partusageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// partusageDescRepairRecordID is the schema descriptor for repair_record_id field.
	partusageDescRepairRecordID := partusageFields[1].Descriptor()
	// partusage.RepairRecordIDValidator is a validator for the "repair_record_id" field. It is called by the builders before save.
	partusage.RepairRecordIDValidator = partusageDescRepairRecordID.Validators[0].(func(string) error)
	// partusageDescPartID is the schema descriptor for part_id field.
	partusageDescPartID := partusageFields[2].Descriptor()
	// partusage.PartIDValidator is a validator for the "part_id" field. It is called by the builders before save.
	partusage.PartIDValidator = partusageDescPartID.Validators[0].(func(string) error)
	// partusageDescQuantity is the schema descriptor for quantity field.
	partusageDescQuantity := partusageFields[3].Descriptor()
	// partusage.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	partusage.QuantityValidator = partusageDescQuantity.Validators[0].(func(int) error)
	paymentMixin := schema.Payment{}.Mixin()
	paymentMixinFields0 := paymentMixin[0].Fields()
	_ = paymentMixinFields0
	paymentFields := schema.Payment{}.Fields()
	_ = paymentFields
	// paymentDescCreatedAt is the schema descriptor for created_at field.
	paymentDescCreatedAt := paymentMixinFields0[0].Descriptor()
	// payment.DefaultCreatedAt holds the default value on creation for the created_at field.
	payment.DefaultCreatedAt = paymentDescCreatedAt.Default.(func() time.Time)
	// paymentDescUpdatedAt is the schema descriptor for updated_at field.
	paymentDescUpdatedAt := paymentMixinFields0[1].Descriptor()
	// payment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	payment.DefaultUpdatedAt = paymentDescUpdatedAt.Default.(func() time.Time)
	// payment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	payment.UpdateDefaultUpdatedAt = paymentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// paymentDescTicketID is the schema descriptor for ticket_id field.
	paymentDescTicketID := paymentFields[1].Descriptor()
	// payment.TicketIDValidator is a validator for the "ticket_id" field. It is called by the builders before save.
	payment.TicketIDValidator = paymentDescTicketID.Validators[0].(func(string) error)
	// paymentDescAmountCents is the schema descriptor for amount_cents field.
	paymentDescAmountCents := paymentFields[2].Descriptor()
	// payment.AmountCentsValidator is a validator for the "amount_cents" field. It is called by the builders before save.
	payment.AmountCentsValidator = paymentDescAmountCents.Validators[0].(func(int64) error)
	// paymentDescCreatedBy is the schema descriptor for created_by field.
	paymentDescCreatedBy := paymentFields[6].Descriptor()
	// payment.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	payment.CreatedByValidator = paymentDescCreatedBy.Validators[0].(func(string) error)
	repairrecordMixin := schema.RepairRecord{}.Mixin()
	repairrecordMixinFields0 := repairrecordMixin[0].Fields()
	_ = repairrecordMixinFields0
	repairrecordFields := schema.RepairRecord{}.Fields()
	_ = repairrecordFields
	// repairrecordDescCreatedAt is the schema descriptor for created_at field.
	repairrecordDescCreatedAt := repairrecordMixinFields0[0].Descriptor()
	// repairrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	repairrecord.DefaultCreatedAt = repairrecordDescCreatedAt.Default.(func() time.Time)
	// repairrecordDescUpdatedAt is the schema descriptor for updated_at field.
	repairrecordDescUpdatedAt := repairrecordMixinFields0[1].Descriptor()
	// repairrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	repairrecord.DefaultUpdatedAt = repairrecordDescUpdatedAt.Default.(func() time.Time)
	// repairrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	repairrecord.UpdateDefaultUpdatedAt = repairrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// repairrecordDescTicketID is the schema descriptor for ticket_id field.
	repairrecordDescTicketID := repairrecordFields[1].Descriptor()
	// repairrecord.TicketIDValidator is a validator for the "ticket_id" field. It is called by the builders before save.
	repairrecord.TicketIDValidator = repairrecordDescTicketID.Validators[0].(func(string) error)
	stockdeductionMixin := schema.StockDeduction{}.Mixin()
	stockdeductionMixinFields0 := stockdeductionMixin[0].Fields()
	_ = stockdeductionMixinFields0
	stockdeductionFields := schema.StockDeduction{}.Fields()
	_ = stockdeductionFields
	// stockdeductionDescCreatedAt is the schema descriptor for created_at field.
	stockdeductionDescCreatedAt := stockdeductionMixinFields0[0].Descriptor()
	// stockdeduction.DefaultCreatedAt holds the default value on creation for the created_at field.
	stockdeduction.DefaultCreatedAt = stockdeductionDescCreatedAt.Default.(func() time.Time)
	// stockdeductionDescTicketID is the schema descriptor for ticket_id field.
	stockdeductionDescTicketID := stockdeductionFields[1].Descriptor()
	// stockdeduction.TicketIDValidator is a validator for the "ticket_id" field. It is called by the builders before save.
	stockdeduction.TicketIDValidator = stockdeductionDescTicketID.Validators[0].(func(string) error)
	// stockdeductionDescCreatedBy is the schema descriptor for created_by field.
	stockdeductionDescCreatedBy := stockdeductionFields[2].Descriptor()
	// stockdeduction.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	stockdeduction.CreatedByValidator = stockdeductionDescCreatedBy.Validators[0].(func(string) error)
	ticketMixin := schema.Ticket{}.Mixin()
	ticketMixinFields0 := ticketMixin[0].Fields()
	_ = ticketMixinFields0
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketMixinFields0[0].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketMixinFields0[1].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ticketDescCustomerID is the schema descriptor for customer_id field.
	ticketDescCustomerID := ticketFields[1].Descriptor()
	// ticket.CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	ticket.CustomerIDValidator = ticketDescCustomerID.Validators[0].(func(string) error)
	// ticketDescDeviceID is the schema descriptor for device_id field.
	ticketDescDeviceID := ticketFields[2].Descriptor()
	// ticket.DeviceIDValidator is a validator for the "device_id" field. It is called by the builders before save.
	ticket.DeviceIDValidator = ticketDescDeviceID.Validators[0].(func(string) error)
	// ticketDescCancelled is the schema descriptor for cancelled field.
	ticketDescCancelled := ticketFields[5].Descriptor()
	// ticket.DefaultCancelled holds the default value on creation for the cancelled field.
	ticket.DefaultCancelled = ticketDescCancelled.Default.(bool)
	// ticketDescDelivered is the schema descriptor for delivered field.
	ticketDescDelivered := ticketFields[8].Descriptor()
	// ticket.DefaultDelivered holds the default value on creation for the delivered field.
	ticket.DefaultDelivered = ticketDescDelivered.Default.(bool)
	// ticketDescCreatedBy is the schema descriptor for created_by field.
	ticketDescCreatedBy := ticketFields[16].Descriptor()
	// ticket.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	ticket.CreatedByValidator = ticketDescCreatedBy.Validators[0].(func(string) error)
}
