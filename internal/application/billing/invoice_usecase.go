package billing

import (
	"context"
	"strconv"
	"strings"

	"github.com/jhoicas/invoice-manager/internal/application/dto"
	"github.com/jhoicas/invoice-manager/internal/domain"
	"github.com/jhoicas/invoice-manager/internal/domain/entity"
	"github.com/jhoicas/invoice-manager/internal/domain/repository"
	"github.com/jhoicas/invoice-manager/internal/domain/validation"
)

// InvoiceUseCase CRUD de facturas: valida los campos crudos y delega en el repositorio.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

// Create valida y crea la factura. Devuelve el ID asignado.
//
// Retorna:
//   - *validation.FieldError      si algún campo no pasa la validación.
//   - domain.ErrNoCustomers        si todavía no hay clientes registrados.
//   - domain.ErrCustomerNotFound   si customer_id no corresponde a un cliente.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceRequest) (int64, error) {
	invoice, err := uc.parse(ctx, in)
	if err != nil {
		return 0, err
	}
	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return 0, err
	}
	return invoice.ID, nil
}

// List lista todas las facturas, la más reciente primero.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, v := range list {
		out = append(out, dto.NewInvoiceResponse(v))
	}
	return out, nil
}

// Get devuelve la factura o domain.ErrNotFound.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	v, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewInvoiceResponse(v), nil
}

// Update valida y sobrescribe todos los campos de la factura.
// domain.ErrNotFound si id no existe; los errores de validación tienen prioridad.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.InvoiceRequest) error {
	invoice, err := uc.parse(ctx, in)
	if err != nil {
		return err
	}
	invoice.ID = id
	ok, err := uc.invoiceRepo.Update(ctx, invoice)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la factura o devuelve domain.ErrNotFound.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.invoiceRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// parse valida los campos crudos, comprueba que el cliente existe y arma la entidad.
func (uc *InvoiceUseCase) parse(ctx context.Context, in dto.InvoiceRequest) (*entity.Invoice, error) {
	status := in.Status
	if status == "" {
		status = string(entity.InvoiceStatusDraft)
	}
	if err := validation.ValidateInvoice(in.CustomerID, in.BillingAddress, in.Description, in.Amount, status).Err(); err != nil {
		return nil, err
	}

	// ValidateInvoice ya garantiza que ambas conversiones son válidas.
	customerID, _ := strconv.ParseInt(in.CustomerID, 10, 64)
	amount, _ := validation.ParseAmount(in.Amount)

	if err := uc.ensureCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	return &entity.Invoice{
		CustomerID:     customerID,
		BillingAddress: strings.TrimSpace(in.BillingAddress),
		Description:    strings.TrimSpace(in.Description),
		Amount:         amount,
		Status:         entity.InvoiceStatus(status),
	}, nil
}

func (uc *InvoiceUseCase) ensureCustomer(ctx context.Context, id int64) error {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer != nil {
		return nil
	}
	all, err := uc.customerRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return domain.ErrNoCustomers
	}
	return domain.ErrCustomerNotFound
}
