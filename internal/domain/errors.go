package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers HTTP los traducen a códigos de estado con errors.Is.
var (
	ErrCustomerNotFound = errors.New("cliente no encontrado")
	ErrInvoiceNotFound  = errors.New("factura no encontrada")
	ErrUserNotFound     = errors.New("usuario no encontrado")

	// ErrCustomerHasInvoices bloquea la eliminación de un cliente con facturas vigentes.
	ErrCustomerHasInvoices = errors.New("el cliente tiene facturas asociadas")

	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
)

// Errores de validación de campos. Cada regla falla con su propio sentinel
// para que la capa de presentación pueda armar el mensaje al usuario.
var (
	ErrNameTooShort     = errors.New("el nombre debe tener al menos 2 caracteres")
	ErrPhoneFormat      = errors.New("el teléfono debe tener exactamente 10 dígitos")
	ErrAmountNotANumber = errors.New("el monto debe ser un número válido")

	ErrPasswordTooShort      = errors.New("la contraseña debe tener al menos 8 caracteres")
	ErrPasswordNoUppercase   = errors.New("la contraseña debe incluir una mayúscula")
	ErrPasswordNoLowercase   = errors.New("la contraseña debe incluir una minúscula")
	ErrPasswordNoDigit       = errors.New("la contraseña debe incluir un dígito")
	ErrPasswordNoSpecialChar = errors.New("la contraseña debe incluir un carácter especial")
)

// IsValidation indica si err corresponde a una regla de validación de entrada.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrNameTooShort, ErrPhoneFormat, ErrAmountNotANumber,
		ErrPasswordTooShort, ErrPasswordNoUppercase, ErrPasswordNoLowercase,
		ErrPasswordNoDigit, ErrPasswordNoSpecialChar,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound indica si err corresponde a un recurso inexistente.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrInvoiceNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
