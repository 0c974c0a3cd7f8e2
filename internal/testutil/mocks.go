package testutil

import (
	"time"

	"github.com/yashalsharma/kirayadoor-backend/internal/domain"
	"github.com/yashalsharma/kirayadoor-backend/internal/ws"
)

// MockOwnerRepository is a mock implementation of domain.OwnerRepository
type MockOwnerRepository struct {
	Owners  map[int32]*domain.Owner
	ByPhone map[string]*domain.Owner
	NextID  int32
}

// NewMockOwnerRepository creates a new MockOwnerRepository
func NewMockOwnerRepository() *MockOwnerRepository {
	return &MockOwnerRepository{
		Owners:  make(map[int32]*domain.Owner),
		ByPhone: make(map[string]*domain.Owner),
		NextID:  1,
	}
}

// CreateOrGetByPhone creates or retrieves an owner by phone number
func (m *MockOwnerRepository) CreateOrGetByPhone(phone string) (*domain.Owner, error) {
	if owner, ok := m.ByPhone[phone]; ok {
		return owner, nil
	}
	owner := &domain.Owner{
		ID:        m.NextID,
		Phone:     phone,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.NextID++
	m.Owners[owner.ID] = owner
	m.ByPhone[phone] = owner
	return owner, nil
}

// GetByID retrieves an owner by ID
func (m *MockOwnerRepository) GetByID(id int32) (*domain.Owner, error) {
	if owner, ok := m.Owners[id]; ok {
		return owner, nil
	}
	return nil, domain.ErrOwnerNotFound
}

// UpdateProfile updates an owner's name and email
func (m *MockOwnerRepository) UpdateProfile(id int32, name string, email *string) (*domain.Owner, error) {
	owner, ok := m.Owners[id]
	if !ok {
		return nil, domain.ErrOwnerNotFound
	}
	owner.Name = name
	owner.Email = email
	return owner, nil
}

// AddOwner adds an owner to the mock repository (helper for tests)
func (m *MockOwnerRepository) AddOwner(owner *domain.Owner) {
	if owner.ID >= m.NextID {
		m.NextID = owner.ID + 1
	}
	m.Owners[owner.ID] = owner
	m.ByPhone[owner.Phone] = owner
}

// MockPropertyRepository is a mock implementation of domain.PropertyRepository
type MockPropertyRepository struct {
	Properties map[int32]*domain.Property
	NextID     int32
}

// NewMockPropertyRepository creates a new MockPropertyRepository
func NewMockPropertyRepository() *MockPropertyRepository {
	return &MockPropertyRepository{
		Properties: make(map[int32]*domain.Property),
		NextID:     1,
	}
}

// Create creates a new property
func (m *MockPropertyRepository) Create(p *domain.Property) (*domain.Property, error) {
	p.ID = m.NextID
	m.NextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.Properties[p.ID] = p
	return p, nil
}

// GetByID retrieves a property by ID within an owner's scope
func (m *MockPropertyRepository) GetByID(ownerID int32, id int32) (*domain.Property, error) {
	if p, ok := m.Properties[id]; ok && p.OwnerID == ownerID {
		return p, nil
	}
	return nil, domain.ErrPropertyNotFound
}

// ListByOwner retrieves all properties of an owner
func (m *MockPropertyRepository) ListByOwner(ownerID int32) ([]*domain.Property, error) {
	var result []*domain.Property
	for _, p := range m.Properties {
		if p.OwnerID == ownerID {
			result = append(result, p)
		}
	}
	return result, nil
}

// Update updates an existing property
func (m *MockPropertyRepository) Update(p *domain.Property) (*domain.Property, error) {
	existing, ok := m.Properties[p.ID]
	if !ok || existing.OwnerID != p.OwnerID {
		return nil, domain.ErrPropertyNotFound
	}
	p.UpdatedAt = time.Now()
	m.Properties[p.ID] = p
	return p, nil
}

// SetPhotoPath records or clears a property's photo path
func (m *MockPropertyRepository) SetPhotoPath(ownerID int32, id int32, photoPath *string) error {
	p, ok := m.Properties[id]
	if !ok || p.OwnerID != ownerID {
		return domain.ErrPropertyNotFound
	}
	p.PhotoPath = photoPath
	return nil
}

// Delete removes a property
func (m *MockPropertyRepository) Delete(ownerID int32, id int32) error {
	if p, ok := m.Properties[id]; ok && p.OwnerID == ownerID {
		delete(m.Properties, id)
		return nil
	}
	return domain.ErrPropertyNotFound
}

// AddProperty adds a property to the mock repository (helper for tests)
func (m *MockPropertyRepository) AddProperty(p *domain.Property) {
	if p.ID >= m.NextID {
		m.NextID = p.ID + 1
	}
	m.Properties[p.ID] = p
}

// MockUnitRepository is a mock implementation of domain.UnitRepository
type MockUnitRepository struct {
	Units  map[int32]*domain.Unit
	NextID int32
}

// NewMockUnitRepository creates a new MockUnitRepository
func NewMockUnitRepository() *MockUnitRepository {
	return &MockUnitRepository{
		Units:  make(map[int32]*domain.Unit),
		NextID: 1,
	}
}

// Create creates a new unit
func (m *MockUnitRepository) Create(u *domain.Unit) (*domain.Unit, error) {
	u.ID = m.NextID
	m.NextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
	m.Units[u.ID] = u
	return u, nil
}

// GetByID retrieves a unit by ID within an owner's scope
func (m *MockUnitRepository) GetByID(ownerID int32, id int32) (*domain.Unit, error) {
	if u, ok := m.Units[id]; ok && u.OwnerID == ownerID {
		return u, nil
	}
	return nil, domain.ErrUnitNotFound
}

// ListByProperty retrieves all units of a property
func (m *MockUnitRepository) ListByProperty(ownerID int32, propertyID int32) ([]*domain.Unit, error) {
	var result []*domain.Unit
	for _, u := range m.Units {
		if u.OwnerID == ownerID && u.PropertyID == propertyID {
			result = append(result, u)
		}
	}
	return result, nil
}

// Update updates an existing unit
func (m *MockUnitRepository) Update(u *domain.Unit) (*domain.Unit, error) {
	existing, ok := m.Units[u.ID]
	if !ok || existing.OwnerID != u.OwnerID {
		return nil, domain.ErrUnitNotFound
	}
	u.UpdatedAt = time.Now()
	m.Units[u.ID] = u
	return u, nil
}

// Delete removes a unit
func (m *MockUnitRepository) Delete(ownerID int32, id int32) error {
	if u, ok := m.Units[id]; ok && u.OwnerID == ownerID {
		delete(m.Units, id)
		return nil
	}
	return domain.ErrUnitNotFound
}

// AddUnit adds a unit to the mock repository (helper for tests)
func (m *MockUnitRepository) AddUnit(u *domain.Unit) {
	if u.ID >= m.NextID {
		m.NextID = u.ID + 1
	}
	m.Units[u.ID] = u
}

// MockTenantRepository is a mock implementation of domain.TenantRepository
type MockTenantRepository struct {
	Tenants map[int32]*domain.Tenant
	NextID  int32
}

// NewMockTenantRepository creates a new MockTenantRepository
func NewMockTenantRepository() *MockTenantRepository {
	return &MockTenantRepository{
		Tenants: make(map[int32]*domain.Tenant),
		NextID:  1,
	}
}

// Create creates a new tenant
func (m *MockTenantRepository) Create(t *domain.Tenant) (*domain.Tenant, error) {
	t.ID = m.NextID
	m.NextID++
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
	m.Tenants[t.ID] = t
	return t, nil
}

// GetByID retrieves a tenant by ID within an owner's scope
func (m *MockTenantRepository) GetByID(ownerID int32, id int32) (*domain.Tenant, error) {
	if t, ok := m.Tenants[id]; ok && t.OwnerID == ownerID {
		return t, nil
	}
	return nil, domain.ErrTenantNotFound
}

// ListByUnit retrieves all tenants of a unit
func (m *MockTenantRepository) ListByUnit(ownerID int32, unitID int32) ([]*domain.Tenant, error) {
	var result []*domain.Tenant
	for _, t := range m.Tenants {
		if t.OwnerID == ownerID && t.UnitID == unitID {
			result = append(result, t)
		}
	}
	return result, nil
}

// Update updates an existing tenant
func (m *MockTenantRepository) Update(t *domain.Tenant) (*domain.Tenant, error) {
	existing, ok := m.Tenants[t.ID]
	if !ok || existing.OwnerID != t.OwnerID {
		return nil, domain.ErrTenantNotFound
	}
	t.UpdatedAt = time.Now()
	m.Tenants[t.ID] = t
	return t, nil
}

// Delete removes a tenant
func (m *MockTenantRepository) Delete(ownerID int32, id int32) error {
	if t, ok := m.Tenants[id]; ok && t.OwnerID == ownerID {
		delete(m.Tenants, id)
		return nil
	}
	return domain.ErrTenantNotFound
}

// AddTenant adds a tenant to the mock repository (helper for tests)
func (m *MockTenantRepository) AddTenant(t *domain.Tenant) {
	if t.ID >= m.NextID {
		m.NextID = t.ID + 1
	}
	m.Tenants[t.ID] = t
}

// MockExpenseTypeRepository is a mock implementation of domain.ExpenseTypeRepository
type MockExpenseTypeRepository struct {
	Types  map[int32]*domain.ExpenseType
	NextID int32
}

// NewMockExpenseTypeRepository creates a new MockExpenseTypeRepository
func NewMockExpenseTypeRepository() *MockExpenseTypeRepository {
	return &MockExpenseTypeRepository{
		Types:  make(map[int32]*domain.ExpenseType),
		NextID: 1,
	}
}

// Create creates a new expense type
func (m *MockExpenseTypeRepository) Create(et *domain.ExpenseType) (*domain.ExpenseType, error) {
	et.ID = m.NextID
	m.NextID++
	et.CreatedAt = time.Now()
	et.UpdatedAt = time.Now()
	m.Types[et.ID] = et
	return et, nil
}

// GetByID retrieves an expense type by ID within an owner's scope
func (m *MockExpenseTypeRepository) GetByID(ownerID int32, id int32) (*domain.ExpenseType, error) {
	if et, ok := m.Types[id]; ok && et.OwnerID == ownerID {
		return et, nil
	}
	return nil, domain.ErrExpenseTypeNotFound
}

// ListByOwner retrieves the owner's whole catalog
func (m *MockExpenseTypeRepository) ListByOwner(ownerID int32) ([]*domain.ExpenseType, error) {
	var result []*domain.ExpenseType
	for _, et := range m.Types {
		if et.OwnerID == ownerID {
			result = append(result, et)
		}
	}
	return result, nil
}

// Update updates an existing expense type
func (m *MockExpenseTypeRepository) Update(et *domain.ExpenseType) (*domain.ExpenseType, error) {
	existing, ok := m.Types[et.ID]
	if !ok || existing.OwnerID != et.OwnerID {
		return nil, domain.ErrExpenseTypeNotFound
	}
	et.UpdatedAt = time.Now()
	m.Types[et.ID] = et
	return et, nil
}

// Delete removes an expense type
func (m *MockExpenseTypeRepository) Delete(ownerID int32, id int32) error {
	if et, ok := m.Types[id]; ok && et.OwnerID == ownerID {
		delete(m.Types, id)
		return nil
	}
	return domain.ErrExpenseTypeNotFound
}

// AddExpenseType adds an expense type to the mock repository (helper for tests)
func (m *MockExpenseTypeRepository) AddExpenseType(et *domain.ExpenseType) {
	if et.ID >= m.NextID {
		m.NextID = et.ID + 1
	}
	m.Types[et.ID] = et
}

// MockTenantExpenseRepository is a mock implementation of domain.TenantExpenseRepository
type MockTenantExpenseRepository struct {
	Expenses map[int32]*domain.TenantExpense
	NextID   int32
}

// NewMockTenantExpenseRepository creates a new MockTenantExpenseRepository
func NewMockTenantExpenseRepository() *MockTenantExpenseRepository {
	return &MockTenantExpenseRepository{
		Expenses: make(map[int32]*domain.TenantExpense),
		NextID:   1,
	}
}

// Create creates a new tenant expense
func (m *MockTenantExpenseRepository) Create(te *domain.TenantExpense) (*domain.TenantExpense, error) {
	te.ID = m.NextID
	m.NextID++
	te.CreatedAt = time.Now()
	te.UpdatedAt = time.Now()
	m.Expenses[te.ID] = te
	return te, nil
}

// GetByID retrieves a tenant expense by ID within an owner's scope
func (m *MockTenantExpenseRepository) GetByID(ownerID int32, id int32) (*domain.TenantExpense, error) {
	if te, ok := m.Expenses[id]; ok && te.OwnerID == ownerID {
		return te, nil
	}
	return nil, domain.ErrTenantExpenseNotFound
}

// ListByTenant retrieves all obligations of a tenant
func (m *MockTenantExpenseRepository) ListByTenant(ownerID int32, tenantID int32) ([]*domain.TenantExpense, error) {
	var result []*domain.TenantExpense
	for _, te := range m.Expenses {
		if te.OwnerID == ownerID && te.TenantID == tenantID {
			result = append(result, te)
		}
	}
	return result, nil
}

// Update updates an existing tenant expense
func (m *MockTenantExpenseRepository) Update(te *domain.TenantExpense) (*domain.TenantExpense, error) {
	existing, ok := m.Expenses[te.ID]
	if !ok || existing.OwnerID != te.OwnerID {
		return nil, domain.ErrTenantExpenseNotFound
	}
	te.UpdatedAt = time.Now()
	m.Expenses[te.ID] = te
	return te, nil
}

// Delete removes a tenant expense
func (m *MockTenantExpenseRepository) Delete(ownerID int32, id int32) error {
	if te, ok := m.Expenses[id]; ok && te.OwnerID == ownerID {
		delete(m.Expenses, id)
		return nil
	}
	return domain.ErrTenantExpenseNotFound
}

// AddExpense adds a tenant expense to the mock repository (helper for tests)
func (m *MockTenantExpenseRepository) AddExpense(te *domain.TenantExpense) {
	if te.ID >= m.NextID {
		m.NextID = te.ID + 1
	}
	m.Expenses[te.ID] = te
}

// MockPaidExpenseRepository is a mock implementation of domain.PaidExpenseRepository
type MockPaidExpenseRepository struct {
	Payments map[int32]*domain.PaidExpense
	NextID   int32
}

// NewMockPaidExpenseRepository creates a new MockPaidExpenseRepository
func NewMockPaidExpenseRepository() *MockPaidExpenseRepository {
	return &MockPaidExpenseRepository{
		Payments: make(map[int32]*domain.PaidExpense),
		NextID:   1,
	}
}

// Create records a new payment
func (m *MockPaidExpenseRepository) Create(pe *domain.PaidExpense) (*domain.PaidExpense, error) {
	pe.ID = m.NextID
	m.NextID++
	pe.CreatedAt = time.Now()
	pe.UpdatedAt = time.Now()
	m.Payments[pe.ID] = pe
	return pe, nil
}

// GetByID retrieves a payment by ID within an owner's scope
func (m *MockPaidExpenseRepository) GetByID(ownerID int32, id int32) (*domain.PaidExpense, error) {
	if pe, ok := m.Payments[id]; ok && pe.OwnerID == ownerID {
		return pe, nil
	}
	return nil, domain.ErrPaidExpenseNotFound
}

// ListByTenant retrieves all payments of a tenant
func (m *MockPaidExpenseRepository) ListByTenant(ownerID int32, tenantID int32) ([]*domain.PaidExpense, error) {
	var result []*domain.PaidExpense
	for _, pe := range m.Payments {
		if pe.OwnerID == ownerID && pe.TenantID == tenantID {
			result = append(result, pe)
		}
	}
	return result, nil
}

// ListByTenantBetween retrieves a tenant's payments dated within [from, to] inclusive
func (m *MockPaidExpenseRepository) ListByTenantBetween(ownerID int32, tenantID int32, from, to time.Time) ([]*domain.PaidExpense, error) {
	var result []*domain.PaidExpense
	for _, pe := range m.Payments {
		if pe.OwnerID != ownerID || pe.TenantID != tenantID {
			continue
		}
		if pe.PaymentDate.Before(from) || pe.PaymentDate.After(to) {
			continue
		}
		result = append(result, pe)
	}
	return result, nil
}

// ListByTenantExpense retrieves the payments linked to one obligation
func (m *MockPaidExpenseRepository) ListByTenantExpense(ownerID int32, tenantExpenseID int32) ([]*domain.PaidExpense, error) {
	var result []*domain.PaidExpense
	for _, pe := range m.Payments {
		if pe.OwnerID != ownerID || pe.TenantExpenseID == nil {
			continue
		}
		if *pe.TenantExpenseID == tenantExpenseID {
			result = append(result, pe)
		}
	}
	return result, nil
}

// Delete removes a payment record
func (m *MockPaidExpenseRepository) Delete(ownerID int32, id int32) error {
	if pe, ok := m.Payments[id]; ok && pe.OwnerID == ownerID {
		delete(m.Payments, id)
		return nil
	}
	return domain.ErrPaidExpenseNotFound
}

// AddPayment adds a payment to the mock repository (helper for tests)
func (m *MockPaidExpenseRepository) AddPayment(pe *domain.PaidExpense) {
	if pe.ID >= m.NextID {
		m.NextID = pe.ID + 1
	}
	m.Payments[pe.ID] = pe
}

// MockOTPSender records OTP codes instead of sending them
type MockOTPSender struct {
	Sent    map[string]string
	FailErr error
}

// NewMockOTPSender creates a new MockOTPSender
func NewMockOTPSender() *MockOTPSender {
	return &MockOTPSender{Sent: make(map[string]string)}
}

// SendOTP records the code for the phone number
func (m *MockOTPSender) SendOTP(phone, code string) error {
	if m.FailErr != nil {
		return m.FailErr
	}
	m.Sent[phone] = code
	return nil
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	Events []PublishedEvent
}

// PublishedEvent pairs an event with the owner it was published to
type PublishedEvent struct {
	OwnerID int32
	Event   ws.Event
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(ownerID int32, event ws.Event) {
	m.Events = append(m.Events, PublishedEvent{OwnerID: ownerID, Event: event})
}
