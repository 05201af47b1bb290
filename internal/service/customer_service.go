package service

import (
	"context"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/customer"
	"github.com/sergioLiiD/yaavs-v5-sub002/ent/device"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
)

// CustomerService manages customers and their devices. Intake-grade
// CRUD; identity and dedup live in the front office, not here.
type CustomerService struct {
	client *ent.Client
}

// NewCustomerService creates a CustomerService.
func NewCustomerService(client *ent.Client) *CustomerService {
	return &CustomerService{client: client}
}

// CreateCustomerInput carries the fields for a new customer.
type CreateCustomerInput struct {
	Name  string
	Email string
	Phone string
}

// Create registers a customer.
func (s *CustomerService) Create(ctx context.Context, in CreateCustomerInput) (*ent.Customer, error) {
	return s.client.Customer.Create().
		SetID(generateID()).
		SetName(in.Name).
		SetEmail(in.Email).
		SetPhone(in.Phone).
		Save(ctx)
}

// Get fetches a customer by id.
func (s *CustomerService) Get(ctx context.Context, id string) (*ent.Customer, error) {
	c, err := s.client.Customer.Query().Where(customer.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errors.NotFound(errors.CodeCustomerNotFound, "customer not found")
		}
		return nil, err
	}
	return c, nil
}

// List returns customers, newest first.
func (s *CustomerService) List(ctx context.Context, limit, offset int) ([]*ent.Customer, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.client.Customer.Query().
		Order(ent.Desc(customer.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}

// CreateDeviceInput carries the fields for registering a device.
type CreateDeviceInput struct {
	CustomerID   string
	Kind         string
	Brand        string
	Model        string
	SerialNumber string
}

// CreateDevice registers a device under a customer.
func (s *CustomerService) CreateDevice(ctx context.Context, in CreateDeviceInput) (*ent.Device, error) {
	if _, err := s.Get(ctx, in.CustomerID); err != nil {
		return nil, err
	}
	return s.client.Device.Create().
		SetID(generateID()).
		SetCustomerID(in.CustomerID).
		SetKind(in.Kind).
		SetBrand(in.Brand).
		SetModel(in.Model).
		SetSerialNumber(in.SerialNumber).
		Save(ctx)
}

// ListDevices returns a customer's devices.
func (s *CustomerService) ListDevices(ctx context.Context, customerID string) ([]*ent.Device, error) {
	return s.client.Device.Query().
		Where(device.CustomerID(customerID)).
		Order(ent.Desc(device.FieldCreatedAt)).
		All(ctx)
}
