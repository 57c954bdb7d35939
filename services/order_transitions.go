package services

import (
	"errors"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"gorm.io/gorm"
)

// orderTransitions is the explicit lifecycle graph. CANCELLED is reachable
// from any non-terminal status; COMPLETED and CANCELLED are terminal.
var orderTransitions = map[string][]string{
	entity.OrderStatusNew:       {entity.OrderStatusPreparing, entity.OrderStatusCancelled},
	entity.OrderStatusPreparing: {entity.OrderStatusServed, entity.OrderStatusCancelled},
	entity.OrderStatusServed:    {entity.OrderStatusCompleted, entity.OrderStatusCancelled},
	entity.OrderStatusCompleted: {},
	entity.OrderStatusCancelled: {},
}

func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus moves one order through the lifecycle. The write is scoped by
// (id, restaurant_id) so cross-tenant updates read as not found, and guarded
// by the expected current status so concurrent updates cannot double-apply.
func (s *OrderService) UpdateStatus(restaurantID, orderID uint, newStatus string) error {
	if !entity.IsValidOrderStatus(newStatus) {
		return Validation("unknown status: %s", newStatus)
	}

	o, err := s.Repo.GetForRestaurant(orderID, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !CanTransition(o.Status, newStatus) {
		return ErrInvalidTransition
	}

	affected, err := s.Repo.UpdateStatusFromTo(orderID, restaurantID, o.Status, newStatus)
	if err != nil {
		return err
	}
	if affected == 0 {
		// someone else moved the order between our read and write
		return ErrInvalidTransition
	}
	return nil
}
