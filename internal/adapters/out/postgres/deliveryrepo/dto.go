// Package deliveryrepo provides data transfer objects and mapping functions for
// delivery record persistence. Each record belongs to exactly one order.
package deliveryrepo

import (
	"time"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery records.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	CourierID   *uuid.UUID `gorm:"type:uuid;index"`
	AssignedAt  time.Time  `gorm:"not null"`
	CompletedAt *time.Time
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain entity to its database representation.
func fromDomain(record *delivery.Delivery) DeliveryDTO {
	var courierID *uuid.UUID
	if id := record.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return DeliveryDTO{
		ID:          record.ID().Bytes(),
		OrderID:     record.OrderID().Bytes(),
		CourierID:   courierID,
		AssignedAt:  record.AssignedAt(),
		CompletedAt: record.CompletedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain entity using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	return delivery.RestoreDelivery(id, orderID, courierID, dto.AssignedAt, dto.CompletedAt)
}
