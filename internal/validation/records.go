package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/iudanet/clinicsync/pkg/api"
)

const (
	// MaxNameLen максимальная длина имени или фамилии клиента
	MaxNameLen = 100
	// MaxSessionMinutes максимальная длительность сессии
	MaxSessionMinutes = 8 * 60
	// MaxNoteLen максимальная длина текста заметки
	MaxNoteLen = 20000
)

// ValidateClient проверяет поля клиента
func ValidateClient(firstName, lastName string, email *string, status api.ClientStatus) error {
	if err := validateName("first name", firstName); err != nil {
		return err
	}
	if err := validateName("last name", lastName); err != nil {
		return err
	}
	if email != nil && *email != "" {
		if _, err := mail.ParseAddress(*email); err != nil {
			return fmt.Errorf("invalid email %q", *email)
		}
	}
	if status != "" && !status.Valid() {
		return fmt.Errorf("invalid client status %q", status)
	}
	return nil
}

// ValidateSession проверяет поля сессии. Пустой status допустим при создании.
func ValidateSession(clientID string, durationMinutes int, sessionType api.SessionType, status api.SessionStatus) error {
	if clientID == "" {
		return fmt.Errorf("client id cannot be empty")
	}
	if durationMinutes <= 0 || durationMinutes > MaxSessionMinutes {
		return fmt.Errorf("duration must be between 1 and %d minutes", MaxSessionMinutes)
	}
	if !sessionType.Valid() {
		return fmt.Errorf("invalid session type %q", sessionType)
	}
	if status != "" && !status.Valid() {
		return fmt.Errorf("invalid session status %q", status)
	}
	return nil
}

// ValidateProgressNote проверяет поля заметки
func ValidateProgressNote(clientID, content string, risk api.RiskLevel, status api.NoteStatus) error {
	if clientID == "" {
		return fmt.Errorf("client id cannot be empty")
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("note content cannot be empty")
	}
	if len(content) > MaxNoteLen {
		return fmt.Errorf("note content must not exceed %d bytes", MaxNoteLen)
	}
	if !risk.Valid() {
		return fmt.Errorf("invalid risk level %q", risk)
	}
	if status != "" && !status.Valid() {
		return fmt.Errorf("invalid note status %q", status)
	}
	return nil
}

func validateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	if len([]rune(value)) > MaxNameLen {
		return fmt.Errorf("%s must not exceed %d characters", field, MaxNameLen)
	}
	return nil
}
