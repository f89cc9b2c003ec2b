package form

import (
	"strings"
	"unicode"

	apierrors "github.com/SafeRoute-2025/SAFE-ROUTE-MOBILE/internal/errors"
)

// PasswordSymbols is the set a password must draw at least one symbol from.
const PasswordSymbols = "@#$%^&+=!"

// MinPasswordLength is the minimum number of characters.
const MinPasswordLength = 8

// PasswordHint is the combined rule shown to the user; failures never say
// which rule was missed.
const PasswordHint = "a senha deve ter no mínimo 8 caracteres, com letra maiúscula, letra minúscula, número e símbolo (@#$%^&+=!), sem espaços"

// ValidatePassword enforces the registration password policy.
func ValidatePassword(pw string) error {
	var upper, lower, digit, symbol, space bool
	for _, r := range pw {
		switch {
		case unicode.IsSpace(r):
			space = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}
	if len([]rune(pw)) < MinPasswordLength || !upper || !lower || !digit || !symbol || space {
		return &apierrors.ValidationError{Field: "password", Reason: PasswordHint}
	}
	return nil
}
