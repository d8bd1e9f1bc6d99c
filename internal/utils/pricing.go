package utils

import (
	"fmt"
	"strconv"
	"strings"

	"camrent-backend/internal/domain"
)

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > 31 {
		return Date{}, fmt.Errorf("day must be between 1 and 31")
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// ValidateRentalPeriod checks that both dates parse and that the return date
// is not earlier than the rent date.
func ValidateRentalPeriod(rentDate, returnDate string) error {
	rent, err := ParseDate(rentDate)
	if err != nil {
		return fmt.Errorf("invalid rent date: %v", err)
	}
	ret, err := ParseDate(returnDate)
	if err != nil {
		return fmt.Errorf("invalid return date: %v", err)
	}
	if ret.Before(rent) {
		return fmt.Errorf("return date must be on or after rent date")
	}
	return nil
}

// RentalCost prices one cart line: the equipment's rate for the selected
// duration multiplied by quantity. Quantity must be a positive integer; a
// quantity of zero or less is not a priceable state (the cart removes the
// line instead).
func RentalCost(item *domain.Equipment, duration domain.RentalDuration, quantity int32) (int32, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	return item.RateFor(duration) * quantity, nil
}
