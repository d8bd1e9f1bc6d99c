package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/utils"
)

var (
	ErrInvalidDuration = errors.New("unknown rental duration")
	ErrLineNotFound    = errors.New("no cart line for that equipment")
)

// Cart holds one session's line items in insertion order, at most one line
// per equipment id. Not safe for concurrent use; Store serializes access.
type Cart struct {
	lines []domain.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the item into the cart. If a line for the item
// already exists its quantity is incremented and the new call's duration and
// dates overwrite the line's; the line total is recomputed from the new
// duration. Otherwise a new line with quantity 1 is appended.
func (c *Cart) Add(item *domain.Equipment, duration domain.RentalDuration, rentDate, returnDate string) error {
	if !duration.Valid() {
		return ErrInvalidDuration
	}
	if err := utils.ValidateRentalPeriod(rentDate, returnDate); err != nil {
		return err
	}

	rate := item.RateFor(duration)
	for i := range c.lines {
		if c.lines[i].EquipmentID == item.ID {
			line := &c.lines[i]
			line.Quantity++
			line.Duration = duration
			line.RentDate = rentDate
			line.ReturnDate = returnDate
			line.UnitRateCents = rate
			total, err := utils.RentalCost(item, duration, line.Quantity)
			if err != nil {
				return err
			}
			line.TotalCents = total
			return nil
		}
	}

	total, err := utils.RentalCost(item, duration, 1)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, domain.CartLine{
		EquipmentID:   item.ID,
		EquipmentName: item.Name,
		Duration:      duration,
		RentDate:      rentDate,
		ReturnDate:    returnDate,
		Quantity:      1,
		UnitRateCents: rate,
		TotalCents:    total,
	})
	return nil
}

// UpdateQuantity sets the quantity of the line for equipmentID. A quantity
// of zero or less removes the line, same as Remove.
func (c *Cart) UpdateQuantity(equipmentID, quantity int32) error {
	if quantity <= 0 {
		c.Remove(equipmentID)
		return nil
	}
	for i := range c.lines {
		if c.lines[i].EquipmentID == equipmentID {
			c.lines[i].Quantity = quantity
			c.lines[i].TotalCents = c.lines[i].UnitRateCents * quantity
			return nil
		}
	}
	return ErrLineNotFound
}

// Remove deletes the line for equipmentID unconditionally.
func (c *Cart) Remove(equipmentID int32) {
	for i := range c.lines {
		if c.lines[i].EquipmentID == equipmentID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalCents is the sum of all line totals.
func (c *Cart) TotalCents() int32 {
	var total int32
	for i := range c.lines {
		total += c.lines[i].TotalCents
	}
	return total
}

// ItemCount is the sum of all line quantities, not the line count.
func (c *Cart) ItemCount() int32 {
	var count int32
	for i := range c.lines {
		count += c.lines[i].Quantity
	}
	return count
}

// Serialize renders the cart as a JSON snapshot for the durable mirror.
func (c *Cart) Serialize() (string, error) {
	snap := domain.CartSnapshot{
		Lines:   c.lines,
		SavedOn: time.Now(),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to serialize cart: %w", err)
	}
	return string(data), nil
}

// Restore rebuilds a cart from a serialized snapshot.
func Restore(payload string) (*Cart, error) {
	var snap domain.CartSnapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, fmt.Errorf("failed to restore cart: %w", err)
	}
	return &Cart{lines: snap.Lines}, nil
}
