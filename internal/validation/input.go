package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MaxDisasterTypeLength    = 100
	MaxDescriptionLength     = 5000
	MaxSuppliesLength        = 1000
	MaxLocationLength        = 200
	MinUpdateLength          = 1
	MaxUpdateLength          = 2000
	MaxPriorityTagLength     = 50
	MaxAdminMessageLength    = 1000
	MinSeverity              = 1
	MaxSeverity              = 10
	MaxVolunteersPerDisaster = 100
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateDisasterReport проверяет текстовые поля и числовые диапазоны отчёта.
func ValidateDisasterReport(dtype string, severity, volunteersNeeded int, supplies, description, location string) error {
	if err := ValidateNonEmpty("тип бедствия", dtype); err != nil {
		return err
	}
	if err := ValidateLength("тип бедствия", strings.TrimSpace(dtype), 1, MaxDisasterTypeLength); err != nil {
		return err
	}
	if severity < MinSeverity || severity > MaxSeverity {
		return fmt.Errorf("тяжесть должна быть в диапазоне %d..%d", MinSeverity, MaxSeverity)
	}
	if volunteersNeeded < 1 || volunteersNeeded > MaxVolunteersPerDisaster {
		return fmt.Errorf("количество волонтёров должно быть в диапазоне 1..%d", MaxVolunteersPerDisaster)
	}
	if err := ValidateLength("необходимые ресурсы", supplies, 0, MaxSuppliesLength); err != nil {
		return err
	}
	if err := ValidateLength("описание", description, 0, MaxDescriptionLength); err != nil {
		return err
	}
	return ValidateLength("местоположение", location, 0, MaxLocationLength)
}

// ValidateVolunteerUpdate проверяет обновление от волонтёра.
func ValidateVolunteerUpdate(priority, description string) error {
	if err := ValidateLength("приоритет", priority, 0, MaxPriorityTagLength); err != nil {
		return err
	}
	description = strings.TrimSpace(description)
	return ValidateLength("описание обновления", description, MinUpdateLength, MaxUpdateLength)
}

// ValidateAdminMessage проверяет служебное сообщение волонтёру.
func ValidateAdminMessage(message string) error {
	if err := ValidateNonEmpty("сообщение", message); err != nil {
		return err
	}
	return ValidateLength("сообщение", message, 0, MaxAdminMessageLength)
}
