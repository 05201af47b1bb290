package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/repairrecord"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/ticket"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/domain"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
)

// generateID returns a UUIDv7 (time-ordered) with a v4 fallback.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// TicketService handles ticket CRUD and the simple lifecycle
// transitions, the ones that move the status enum and stamp milestone
// timestamps without touching inventory or payments. completeRepair,
// deliver, and cancel live in the usecase layer because they need the
// raw SQL inventory transaction.
type TicketService struct {
	client     *ent.Client
	dispatcher *domain.Dispatcher
}

// NewTicketService creates a TicketService.
func NewTicketService(client *ent.Client, dispatcher *domain.Dispatcher) *TicketService {
	return &TicketService{client: client, dispatcher: dispatcher}
}

// CreateTicketInput carries the fields for ticket intake.
type CreateTicketInput struct {
	CustomerID         string
	DeviceID           string
	TechnicianID       string
	ProblemDescription string
	Actor              string
}

// Create registers a new ticket in RECEIVED status.
func (s *TicketService) Create(ctx context.Context, in CreateTicketInput) (*ent.Ticket, error) {
	create := s.client.Ticket.Create().
		SetID(generateID()).
		SetCustomerID(in.CustomerID).
		SetDeviceID(in.DeviceID).
		SetProblemDescription(in.ProblemDescription).
		SetCreatedBy(in.Actor)
	if in.TechnicianID != "" {
		create.SetTechnicianID(in.TechnicianID)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationFailed, "create ticket", http.StatusBadRequest)
	}

	logger.Info("Ticket created",
		zap.String("ticket_id", t.ID),
		zap.String("customer_id", t.CustomerID),
	)
	return t, nil
}

// Get fetches a ticket by id.
func (s *TicketService) Get(ctx context.Context, id string) (*ent.Ticket, error) {
	t, err := s.client.Ticket.Query().Where(ticket.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errors.NotFound(errors.CodeTicketNotFound, "ticket not found")
		}
		return nil, err
	}
	return t, nil
}

// ListFilter narrows the ticket listing.
type ListFilter struct {
	Status       string
	CustomerID   string
	TechnicianID string
	Limit        int
	Offset       int
}

// List returns tickets matching the filter, newest first.
func (s *TicketService) List(ctx context.Context, f ListFilter) ([]*ent.Ticket, error) {
	q := s.client.Ticket.Query()
	if f.Status != "" {
		q = q.Where(ticket.StatusEQ(ticket.Status(f.Status)))
	}
	if f.CustomerID != "" {
		q = q.Where(ticket.CustomerID(f.CustomerID))
	}
	if f.TechnicianID != "" {
		q = q.Where(ticket.TechnicianID(f.TechnicianID))
	}
	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.Order(ent.Desc(ticket.FieldCreatedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
}

// AssignTechnician sets or changes the ticket's technician.
func (s *TicketService) AssignTechnician(ctx context.Context, ticketID, technicianID string) (*ent.Ticket, error) {
	t, err := s.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if domain.Status(t.Status).Terminal() {
		return nil, errors.InvalidTransition("assignTechnician", string(t.Status))
	}
	return s.client.Ticket.UpdateOneID(ticketID).
		SetTechnicianID(technicianID).
		Save(ctx)
}

// StartDiagnosis moves RECEIVED to DIAGNOSING, stamps the milestone,
// and lazily creates the repair record.
func (s *TicketService) StartDiagnosis(ctx context.Context, ticketID, actor string) (*ent.Ticket, error) {
	return s.transition(ctx, ticketID, actor, OpStartDiagnosis, func(u *ent.TicketUpdate, now time.Time) {
		u.SetDiagnosisStartedAt(now)
	}, func(ctx context.Context, tx *ent.Tx) error {
		return s.ensureRepairRecordTx(ctx, tx, ticketID)
	})
}

// CompleteDiagnosis moves DIAGNOSING to DIAGNOSIS_COMPLETE and stores
// the diagnosis text on the repair record.
func (s *TicketService) CompleteDiagnosis(ctx context.Context, ticketID, actor, diagnosis string) (*ent.Ticket, error) {
	return s.transition(ctx, ticketID, actor, OpCompleteDiagnosis, func(u *ent.TicketUpdate, now time.Time) {
		u.SetDiagnosisFinishedAt(now)
	}, func(ctx context.Context, tx *ent.Tx) error {
		if err := s.ensureRepairRecordTx(ctx, tx, ticketID); err != nil {
			return err
		}
		_, err := tx.RepairRecord.Update().
			Where(repairrecord.TicketID(ticketID)).
			SetDiagnosis(diagnosis).
			Save(ctx)
		return err
	})
}

// StartRepair moves BUDGET_APPROVED to IN_REPAIR and stamps the
// repair start on both the ticket and the repair record.
func (s *TicketService) StartRepair(ctx context.Context, ticketID, actor string) (*ent.Ticket, error) {
	return s.transition(ctx, ticketID, actor, OpStartRepair, func(u *ent.TicketUpdate, now time.Time) {
		u.SetRepairStartedAt(now)
	}, func(ctx context.Context, tx *ent.Tx) error {
		if err := s.ensureRepairRecordTx(ctx, tx, ticketID); err != nil {
			return err
		}
		_, err := tx.RepairRecord.Update().
			Where(repairrecord.TicketID(ticketID), repairrecord.StartedAtIsNil()).
			SetStartedAt(time.Now()).
			Save(ctx)
		return err
	})
}

// MarkReadyForDelivery moves REPAIRED to READY_FOR_DELIVERY.
func (s *TicketService) MarkReadyForDelivery(ctx context.Context, ticketID, actor string) (*ent.Ticket, error) {
	return s.transition(ctx, ticketID, actor, OpMarkReady, nil, nil)
}

// transition performs a guarded status move inside one transaction.
// The UPDATE carries the current status in its WHERE clause so a
// concurrent transition loses cleanly instead of overwriting.
func (s *TicketService) transition(
	ctx context.Context,
	ticketID, actor string,
	op Operation,
	stamp func(*ent.TicketUpdate, time.Time),
	extra func(context.Context, *ent.Tx) error,
) (*ent.Ticket, error) {
	t, err := s.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.Cancelled {
		return nil, errors.Conflict(errors.CodeTicketCancelled, "ticket is cancelled")
	}

	current := domain.Status(t.Status)
	next, err := NextStatus(op, current)
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now()
	upd := tx.Ticket.Update().
		Where(
			ticket.ID(ticketID),
			ticket.StatusEQ(ticket.Status(current)),
			ticket.Cancelled(false),
		).
		SetStatus(ticket.Status(next))
	if stamp != nil {
		stamp(upd, now)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Lost a race; re-read would show the new status.
		err = errors.InvalidTransition(string(op), string(current))
		return nil, err
	}

	if extra != nil {
		if err = extra(ctx, tx); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	logger.Info("Ticket transition",
		zap.String("ticket_id", ticketID),
		zap.String("operation", string(op)),
		zap.String("from", string(current)),
		zap.String("to", string(next)),
		zap.String("actor", actor),
	)

	if s.dispatcher != nil {
		s.dispatcher.DispatchStatusChange(domain.StatusChange{
			TicketID:   ticketID,
			CustomerID: t.CustomerID,
			From:       current,
			To:         next,
			Actor:      actor,
		})
	}

	return s.Get(ctx, ticketID)
}

// ensureRepairRecordTx creates the 1:1 repair record if missing.
func (s *TicketService) ensureRepairRecordTx(ctx context.Context, tx *ent.Tx, ticketID string) error {
	exists, err := tx.RepairRecord.Query().
		Where(repairrecord.TicketID(ticketID)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = tx.RepairRecord.Create().
		SetID(generateID()).
		SetTicketID(ticketID).
		Save(ctx)
	if err != nil && ent.IsConstraintError(err) {
		// Concurrent creation; the record exists now.
		return nil
	}
	return err
}
