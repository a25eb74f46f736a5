package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-admin/internal/domain"
	"github.com/jhoicas/facturas-admin/internal/domain/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// CustomerName
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerName(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"vacío", "", domain.ErrNameTooShort},
		{"un solo carácter", "A", domain.ErrNameTooShort},
		{"dos caracteres", "An", nil},
		{"nombre completo", "Ana Gomez", nil},
		// len() cuenta caracteres, no bytes: "Ñá" son 2 runas válidas.
		{"dos runas multibyte", "Ñá", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, validation.CustomerName(tc.in), tc.wantErr)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Phone
// ──────────────────────────────────────────────────────────────────────────────

func TestPhone(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"diez dígitos", "5551234567", nil},
		{"nueve dígitos", "555123456", domain.ErrPhoneFormat},
		{"once dígitos", "55512345678", domain.ErrPhoneFormat},
		{"con guiones", "555-123-45", domain.ErrPhoneFormat},
		{"con letras", "555123456a", domain.ErrPhoneFormat},
		{"con espacios", "555 123 45", domain.ErrPhoneFormat},
		{"vacío", "", domain.ErrPhoneFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, validation.Phone(tc.in), tc.wantErr)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Amount
// ──────────────────────────────────────────────────────────────────────────────

func TestAmount_Validos(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"150.50", "150.5"},
		{"0", "0"},
		{"1000000", "1000000"},
		// La regla permite el punto sin parte entera o sin parte decimal.
		{".5", "0.5"},
		{"5.", "5"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := validation.Amount(tc.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "esperaba %s, obtuve %s", tc.want, got)
		})
	}
}

func TestAmount_Invalidos(t *testing.T) {
	cases := []string{
		"",
		".",
		"abc",
		"12a",
		"1.2.3",
		"1,50",
		"-5",      // el signo no es un dígito: montos negativos rechazados
		"-150.50",
		"+5",
		" 5",
		"1e3",
	}
	for _, in := range cases {
		t.Run("rechaza_"+in, func(t *testing.T) {
			_, err := validation.Amount(in)
			assert.ErrorIs(t, err, domain.ErrAmountNotANumber)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// PasswordStrength: el orden de corte es fijo
// (longitud → mayúscula → minúscula → dígito → especial).
// ──────────────────────────────────────────────────────────────────────────────

func TestPasswordStrength(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"válida", "Segura1!", nil},
		{"corta gana aunque falten clases", "aB1!", domain.ErrPasswordTooShort},
		{"sin mayúscula", "segura1!x", domain.ErrPasswordNoUppercase},
		{"sin minúscula", "SEGURA1!X", domain.ErrPasswordNoLowercase},
		{"sin dígito", "Segura!!!", domain.ErrPasswordNoDigit},
		{"sin especial", "Segura123", domain.ErrPasswordNoSpecialChar},
		// Sin mayúscula NI dígito: reporta la primera del orden (mayúscula).
		{"reporta la primera regla que falla", "segura!!!", domain.ErrPasswordNoUppercase},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, validation.PasswordStrength(tc.in), tc.wantErr)
		})
	}
}
