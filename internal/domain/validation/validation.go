// Package validation revisa los campos crudos (strings de formulario) antes de que lleguen
// a la persistencia. Las reglas se evalúan en orden y se detienen en el primer fallo,
// así que el llamador recibe como máximo un error por intento.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-manager/internal/domain/entity"
)

// Code identifica la regla que falló.
type Code string

const (
	InvalidName              Code = "INVALID_NAME"
	InvalidEmail             Code = "INVALID_EMAIL"
	InvalidPhone             Code = "INVALID_PHONE"
	InvalidCustomerSelection Code = "INVALID_CUSTOMER_SELECTION"
	InvalidBillingAddress    Code = "INVALID_BILLING_ADDRESS"
	InvalidDescription       Code = "INVALID_DESCRIPTION"
	InvalidAmount            Code = "INVALID_AMOUNT"
	InvalidStatus            Code = "INVALID_STATUS"
)

const (
	minNameLen        = 2
	minPhoneLen       = 7
	minAddressLen     = 5
	minDescriptionLen = 3
)

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldError error de campo corregible por el usuario. Message se muestra tal cual.
type FieldError struct {
	Code    Code
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// Is permite comparar por código: errors.Is(err, &FieldError{Code: InvalidEmail}).
func (e *FieldError) Is(target error) bool {
	t, ok := target.(*FieldError)
	return ok && t.Code == e.Code
}

// Result resultado de una validación: OK o un único error.
type Result struct {
	OK    bool
	Error *FieldError
}

// Err devuelve el error del resultado, o nil si la validación pasó.
func (r Result) Err() error {
	if r.OK || r.Error == nil {
		return nil
	}
	return r.Error
}

func pass() Result { return Result{OK: true} }

func fail(code Code, msg string) Result {
	return Result{Error: &FieldError{Code: code, Message: msg}}
}

// ValidateCustomer valida nombre, email y teléfono de un cliente nuevo.
func ValidateCustomer(fullName, email, phone string) Result {
	if trimmedLen(fullName) < minNameLen {
		return fail(InvalidName, "Name must be at least 2 characters.")
	}
	if !emailRE.MatchString(strings.TrimSpace(email)) {
		return fail(InvalidEmail, "Email looks invalid.")
	}
	if trimmedLen(phone) < minPhoneLen {
		return fail(InvalidPhone, "Phone must be at least 7 characters.")
	}
	return pass()
}

// ValidateInvoice valida los campos de creación o edición de una factura.
// customerID debe ser un entero no negativo en dígitos ASCII, sin espacios.
func ValidateInvoice(customerID, billingAddress, description, amount, status string) Result {
	if !isDigits(customerID) {
		return fail(InvalidCustomerSelection, "Pick a customer.")
	}
	if trimmedLen(billingAddress) < minAddressLen {
		return fail(InvalidBillingAddress, "Billing address too short.")
	}
	if trimmedLen(description) < minDescriptionLen {
		return fail(InvalidDescription, "Description too short.")
	}
	a, err := ParseAmount(amount)
	if err != nil {
		return fail(InvalidAmount, "Amount must be a real number (e.g. 12.50).")
	}
	if a.IsNegative() {
		return fail(InvalidAmount, "Amount cannot be negative.")
	}
	if !entity.InvoiceStatus(status).Valid() {
		return fail(InvalidStatus, "Status must be draft/sent/paid/cancelled.")
	}
	return pass()
}

// ParseAmount convierte el monto crudo (se ignoran espacios alrededor).
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	// Debe caber en un ID int64.
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}
