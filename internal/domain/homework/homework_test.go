package homework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatStatus(t *testing.T) {
	t.Run("maps every known status to its verdict", func(t *testing.T) {
		cases := map[Status]string{
			StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
			StatusReviewing: "Работа взята на проверку ревьюером.",
			StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
		}
		for status, verdict := range cases {
			msg, err := FormatStatus(Record{HomeworkName: "hw_python_oop", Status: status})
			require.NoError(t, err)
			assert.Contains(t, msg, "hw_python_oop")
			assert.Contains(t, msg, verdict)
		}
	})

	t.Run("builds the exact message for an approved homework", func(t *testing.T) {
		msg, err := FormatStatus(Record{Name: "hw1", Status: StatusApproved})

		require.NoError(t, err)
		assert.Equal(t, `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`, msg)
	})

	t.Run("prefers homework_name over name", func(t *testing.T) {
		msg, err := FormatStatus(Record{HomeworkName: "api_name", Name: "alias", Status: StatusReviewing})

		require.NoError(t, err)
		assert.Contains(t, msg, `"api_name"`)
	})

	t.Run("unknown status fails", func(t *testing.T) {
		_, err := FormatStatus(Record{Name: "hw1", Status: "lost"})

		assert.ErrorIs(t, err, ErrParsing)
	})

	t.Run("missing status fails", func(t *testing.T) {
		_, err := FormatStatus(Record{Name: "hw1"})

		assert.ErrorIs(t, err, ErrParsing)
	})

	t.Run("missing name fails", func(t *testing.T) {
		_, err := FormatStatus(Record{Status: StatusApproved})

		assert.ErrorIs(t, err, ErrParsing)
	})
}

func TestParseRecord(t *testing.T) {
	t.Run("ignores extra fields", func(t *testing.T) {
		r, err := ParseRecord([]byte(`{"id": 1, "homework_name": "hw1", "status": "reviewing", "lesson_name": "final"}`))

		require.NoError(t, err)
		assert.Equal(t, Record{HomeworkName: "hw1", Status: StatusReviewing}, r)
	})

	t.Run("mistyped field is a parsing failure", func(t *testing.T) {
		_, err := ParseRecord([]byte(`{"homework_name": 5, "status": "approved"}`))

		assert.ErrorIs(t, err, ErrParsing)
		assert.NotErrorIs(t, err, ErrValidation)
	})

	t.Run("null entry parses to an empty record that cannot be formatted", func(t *testing.T) {
		r, err := ParseRecord([]byte(`null`))
		require.NoError(t, err)

		_, err = FormatStatus(r)
		assert.ErrorIs(t, err, ErrParsing)
	})
}

func TestStatusCodeError(t *testing.T) {
	err := &StatusCodeError{Code: 503}

	assert.ErrorIs(t, err, ErrInvalidStatusCode)
	assert.NotErrorIs(t, err, ErrGetData)
	assert.Contains(t, err.Error(), "503")
}
