package validation

import (
	"fmt"
	"unicode"
)

// MinAdminPasswordLength - минимальная длина пароля администратора в production.
const MinAdminPasswordLength = 8

type passwordRule struct {
	match   func(rune) bool
	message string
}

var passwordRules = []passwordRule{
	{unicode.IsUpper, "пароль администратора должен содержать хотя бы одну заглавную букву"},
	{unicode.IsLower, "пароль администратора должен содержать хотя бы одну строчную букву"},
	{unicode.IsNumber, "пароль администратора должен содержать хотя бы одну цифру"},
}

// ValidateAdminPassword проверяет стойкость пароля администратора.
// Пароли волонтёров и пользователей общие и не проверяются.
func ValidateAdminPassword(password string) error {
	if len([]rune(password)) < MinAdminPasswordLength {
		return fmt.Errorf("пароль администратора должен быть не менее %d символов", MinAdminPasswordLength)
	}

	for _, rule := range passwordRules {
		found := false
		for _, ch := range password {
			if rule.match(ch) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%s", rule.message)
		}
	}
	return nil
}
