package billing_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-manager/internal/application/billing"
	"github.com/jhoicas/invoice-manager/internal/application/dto"
	"github.com/jhoicas/invoice-manager/internal/domain"
	"github.com/jhoicas/invoice-manager/internal/domain/entity"
	"github.com/jhoicas/invoice-manager/internal/domain/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memCustomers struct {
	rows   map[int64]*entity.Customer
	nextID int64
}

func newMemCustomers() *memCustomers { return &memCustomers{rows: map[int64]*entity.Customer{}} }

func (m *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memCustomers) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	return m.rows[id], nil
}

func (m *memCustomers) List(_ context.Context) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range m.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type memInvoices struct {
	customers *memCustomers
	rows      map[int64]*entity.Invoice
	nextID    int64
	failWith  error
}

func newMemInvoices(c *memCustomers) *memInvoices {
	return &memInvoices{customers: c, rows: map[int64]*entity.Invoice{}}
}

func (m *memInvoices) view(inv *entity.Invoice) *entity.InvoiceView {
	v := &entity.InvoiceView{Invoice: *inv}
	if c := m.customers.rows[inv.CustomerID]; c != nil {
		v.CustomerName = c.FullName
	}
	return v
}

func (m *memInvoices) Create(_ context.Context, inv *entity.Invoice) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.nextID++
	inv.ID = m.nextID
	cp := *inv
	m.rows[inv.ID] = &cp
	return nil
}

func (m *memInvoices) GetByID(_ context.Context, id int64) (*entity.InvoiceView, error) {
	inv, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return m.view(inv), nil
}

func (m *memInvoices) List(_ context.Context) ([]*entity.InvoiceView, error) {
	var out []*entity.InvoiceView
	for _, inv := range m.rows {
		out = append(out, m.view(inv))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memInvoices) Update(_ context.Context, inv *entity.Invoice) (bool, error) {
	if _, ok := m.rows[inv.ID]; !ok {
		return false, nil
	}
	cp := *inv
	m.rows[inv.ID] = &cp
	return true, nil
}

func (m *memInvoices) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func validInvoice(customerID string) dto.InvoiceRequest {
	return dto.InvoiceRequest{
		CustomerID:     customerID,
		BillingAddress: "  123 Main St  ",
		Description:    " Consulting ",
		Amount:         "10.00",
		Status:         "sent",
	}
}

func TestCustomerUseCase_Create(t *testing.T) {
	repo := newMemCustomers()
	uc := billing.NewCustomerUseCase(repo)
	ctx := context.Background()

	t.Run("guarda los campos recortados", func(t *testing.T) {
		out, err := uc.Create(ctx, dto.CreateCustomerRequest{FullName: "  Jane Doe ", Email: " jane@example.com ", Phone: " 5551234 "})
		require.NoError(t, err)
		assert.Equal(t, int64(1), out.ID)
		assert.Equal(t, "Jane Doe", repo.rows[1].FullName)
		assert.Equal(t, "jane@example.com", repo.rows[1].Email)
		assert.Equal(t, "5551234", repo.rows[1].Phone)
	})

	t.Run("email invalido no llega al repositorio", func(t *testing.T) {
		_, err := uc.Create(ctx, dto.CreateCustomerRequest{FullName: "Jane Doe", Email: "not-an-email", Phone: "5551234"})
		var fe *validation.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, validation.InvalidEmail, fe.Code)
		assert.Len(t, repo.rows, 1)
	})
}

func TestInvoiceUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sin clientes registrados", func(t *testing.T) {
		customers := newMemCustomers()
		uc := billing.NewInvoiceUseCase(newMemInvoices(customers), customers)
		_, err := uc.Create(ctx, validInvoice("1"))
		assert.ErrorIs(t, err, domain.ErrNoCustomers)
	})

	customers := newMemCustomers()
	require.NoError(t, customers.Create(ctx, &entity.Customer{FullName: "Jane Doe"}))
	invoices := newMemInvoices(customers)
	uc := billing.NewInvoiceUseCase(invoices, customers)

	t.Run("cliente inexistente se rechaza", func(t *testing.T) {
		_, err := uc.Create(ctx, validInvoice("99"))
		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
		assert.Empty(t, invoices.rows)
	})

	t.Run("validacion antes que existencia", func(t *testing.T) {
		in := validInvoice("99")
		in.Amount = "-5"
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, &validation.FieldError{Code: validation.InvalidAmount})
	})

	t.Run("estado vacio es draft", func(t *testing.T) {
		in := validInvoice("1")
		in.Status = ""
		id, err := uc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, entity.InvoiceStatusDraft, invoices.rows[id].Status)
	})

	t.Run("convierte y recorta", func(t *testing.T) {
		id, err := uc.Create(ctx, validInvoice("1"))
		require.NoError(t, err)
		got := invoices.rows[id]
		assert.Equal(t, int64(1), got.CustomerID)
		assert.Equal(t, "123 Main St", got.BillingAddress)
		assert.Equal(t, "Consulting", got.Description)
		assert.Equal(t, "10", got.Amount.String())
		assert.Equal(t, entity.InvoiceStatusSent, got.Status)
	})

	t.Run("valores validados se convierten sin perdida", func(t *testing.T) {
		in := validInvoice("01")
		in.Amount = "  12.50 "
		id, err := uc.Create(ctx, in)
		require.NoError(t, err)
		got := invoices.rows[id]
		assert.Equal(t, int64(1), got.CustomerID)
		assert.True(t, got.Amount.Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("errores del almacenamiento se propagan", func(t *testing.T) {
		boom := errors.New("disk I/O error")
		invoices.failWith = boom
		t.Cleanup(func() { invoices.failWith = nil })
		_, err := uc.Create(ctx, validInvoice("1"))
		assert.ErrorIs(t, err, boom)
	})
}

func TestInvoiceUseCase_GetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	customers := newMemCustomers()
	require.NoError(t, customers.Create(ctx, &entity.Customer{FullName: "Jane Doe"}))
	uc := billing.NewInvoiceUseCase(newMemInvoices(customers), customers)

	id, err := uc.Create(ctx, validInvoice("1"))
	require.NoError(t, err)

	got, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.CustomerName)

	_, err = uc.Get(ctx, id+1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in := validInvoice("1")
	in.Status = "paid"
	require.NoError(t, uc.Update(ctx, id, in))
	got, err = uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "paid", got.Status)

	assert.ErrorIs(t, uc.Update(ctx, id+1, in), domain.ErrNotFound)

	in.Status = "void"
	assert.ErrorIs(t, uc.Update(ctx, id, in), &validation.FieldError{Code: validation.InvalidStatus})

	require.NoError(t, uc.Delete(ctx, id))
	assert.ErrorIs(t, uc.Delete(ctx, id), domain.ErrNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

type stubGenerator struct{ got *entity.InvoiceView }

func (s *stubGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.InvoiceView) ([]byte, error) {
	s.got = inv
	return []byte("%PDF-1.3 stub"), nil
}

func TestPDFUseCase(t *testing.T) {
	ctx := context.Background()
	customers := newMemCustomers()
	require.NoError(t, customers.Create(ctx, &entity.Customer{FullName: "Jane Doe"}))
	invoices := newMemInvoices(customers)
	id, err := billing.NewInvoiceUseCase(invoices, customers).Create(ctx, validInvoice("1"))
	require.NoError(t, err)

	gen := &stubGenerator{}
	uc := billing.NewPDFUseCase(invoices, gen)

	pdf, name, err := uc.DownloadInvoicePDF(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "invoice-000001.pdf", name)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "Jane Doe", gen.got.CustomerName)

	_, _, err = uc.DownloadInvoicePDF(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
