package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrUnsupportedScanType возвращается при сканировании неподдерживаемого типа из БД
	ErrUnsupportedScanType = errors.New("unsupported scan type for TimeString")
)

// TimeString время суток в формате "HH:MM" (например, "10:30")
// Используется для хранения времени начала записи без привязки к дате
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
// Принимает "HH:MM" и "HH:MM:SS" (секунды отбрасываются)
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return NewTimeString(t), nil
	}
	if t, err := time.Parse("15:04:05", s); err == nil {
		return NewTimeString(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// String возвращает строковое представление времени
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если время не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет корректность формата времени
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// toMinutes конвертирует время в количество минут с начала суток
func (ts TimeString) toMinutes() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsBefore возвращает true, если время строго раньше other
// Некорректные значения считаются равными (сравнение не падает)
func (ts TimeString) IsBefore(other TimeString) bool {
	a, err := ts.toMinutes()
	if err != nil {
		return false
	}
	b, err := other.toMinutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если время строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(ts)
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперед
// Время больше 23:59 переносится на следующие сутки по модулю 24 часов
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := ts.toMinutes()
	if err != nil {
		return "", err
	}
	total = (total + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// OnDate возвращает абсолютное время: дата date + время суток ts
// Для некорректного значения возвращает полночь указанной даты
func (ts TimeString) OnDate(date time.Time) time.Time {
	total, err := ts.toMinutes()
	if err != nil {
		total = 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), total/60, total%60, 0, 0, date.Location())
}

// Value реализует driver.Valuer для записи в БД (колонка TIME)
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД
// PostgreSQL возвращает TIME как строку "HH:MM:SS" или time.Time в зависимости от драйвера
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScanType, src)
	}
}
