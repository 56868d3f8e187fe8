package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost - фиксированный фактор стоимости bcrypt
const PasswordCost = 12

// HashPassword хеширует пароль (bcrypt, соль внутри)
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword сравнивает пароль с хешем.
// Несовпадение - это не ошибка, а false: вызывающий сам решает, что с этим делать.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
