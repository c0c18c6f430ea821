package entity

// Customer representa un contacto facturable. Se crea una sola vez y no se modifica.
type Customer struct {
	ID       int64
	FullName string
	Email    string
	Phone    string
}
