// Package validation contiene las reglas de validación de campos del panel.
// Son funciones puras: no tocan persistencia ni estado global.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturas-admin/internal/domain"
)

// CustomerName exige un nombre de al menos 2 caracteres (contados en runas).
func CustomerName(name string) error {
	if utf8.RuneCountInString(name) < 2 {
		return domain.ErrNameTooShort
	}
	return nil
}

// Phone exige exactamente 10 dígitos ASCII.
func Phone(phone string) error {
	if len(phone) != 10 {
		return domain.ErrPhoneFormat
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return domain.ErrPhoneFormat
		}
	}
	return nil
}

// Amount valida un monto en texto y devuelve el decimal ya parseado.
// La regla es deliberadamente laxa: dígitos con a lo sumo un punto decimal
// ("150.50", ".5", "5."). Un signo no es un dígito, así que los montos
// negativos quedan rechazados por la misma regla.
func Amount(raw string) (decimal.Decimal, error) {
	stripped := strings.Replace(raw, ".", "", 1)
	if stripped == "" {
		return decimal.Decimal{}, domain.ErrAmountNotANumber
	}
	for _, c := range stripped {
		if c < '0' || c > '9' {
			return decimal.Decimal{}, domain.ErrAmountNotANumber
		}
	}
	// "5." pasa la regla; se quita el punto colgante antes de parsear.
	amount, err := decimal.NewFromString(strings.TrimSuffix(raw, "."))
	if err != nil {
		return decimal.Decimal{}, domain.ErrAmountNotANumber
	}
	return amount, nil
}

// PasswordStrength aplica la política de contraseñas del registro de usuarios.
// Corta en la primera regla que falla, en este orden fijo:
// longitud → mayúscula → minúscula → dígito → carácter especial.
func PasswordStrength(raw string) error {
	if utf8.RuneCountInString(raw) < 8 {
		return domain.ErrPasswordTooShort
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range raw {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	switch {
	case !hasUpper:
		return domain.ErrPasswordNoUppercase
	case !hasLower:
		return domain.ErrPasswordNoLowercase
	case !hasDigit:
		return domain.ErrPasswordNoDigit
	case !hasSpecial:
		return domain.ErrPasswordNoSpecialChar
	}
	return nil
}
