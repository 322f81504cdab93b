// internal/domain/homework/homework.go
package homework

import (
	"encoding/json"
	"fmt"
)

// Status is the review state of a submitted homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// NoNewStatusMessage is sent when the API reports no homework changes in the window.
const NoNewStatusMessage = "Новых статусов нет."

// Verdict returns the human-readable text for the status.
func (s Status) Verdict() (string, error) {
	switch s {
	case StatusApproved:
		return "Работа проверена: ревьюеру всё понравилось. Ура!", nil
	case StatusReviewing:
		return "Работа взята на проверку ревьюером.", nil
	case StatusRejected:
		return "Работа проверена: у ревьюера есть замечания.", nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrParsing, string(s))
	}
}

// Record is a single homework entry as returned by the API.
// Fields other than the name and status are ignored.
type Record struct {
	HomeworkName string `json:"homework_name"`
	Name         string `json:"name"`
	Status       Status `json:"status" validate:"required"`
}

// Title returns the homework name. The API sends it as homework_name,
// name is accepted as a fallback.
func (r Record) Title() string {
	if r.HomeworkName != "" {
		return r.HomeworkName
	}
	return r.Name
}

// ParseRecord decodes one raw homework entry.
func ParseRecord(raw json.RawMessage) (Record, error) {
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrParsing, err)
	}
	return r, nil
}

// FormatStatus builds the chat message for the record's current status.
func FormatStatus(r Record) (string, error) {
	if r.Title() == "" {
		return "", fmt.Errorf("%w: homework name is missing", ErrParsing)
	}
	if err := validate.Struct(r); err != nil {
		return "", fmt.Errorf("%w: %w", ErrParsing, err)
	}
	verdict, err := r.Status.Verdict()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", r.Title(), verdict), nil
}
