package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrCustomerNotFound = errors.New("el cliente seleccionado no existe")
	ErrNoCustomers      = errors.New("no hay clientes registrados")
)
