package service

import (
	"kostify-backend/internal/aggregate"
	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
)

// Option is one selectable entry in a dependent dropdown.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FormService serves the dependent-selection chains used by the tenant,
// payment and complaint forms. Options are derived on every call from the
// current collections; nothing is cached.
type FormService struct {
	roomRepo   *repository.RoomRepository
	tenantRepo *repository.TenantRepository
}

func NewFormService(roomRepo *repository.RoomRepository, tenantRepo *repository.TenantRepository) *FormService {
	return &FormService{
		roomRepo:   roomRepo,
		tenantRepo: tenantRepo,
	}
}

// RoomOptions returns the room selector contents for a chosen property.
// Without a property the selector is disabled and offers nothing.
func (s *FormService) RoomOptions(ownerID, propertyID string) (aggregate.OptionSet[Option], error) {
	if propertyID == "" {
		return aggregate.DependentOptions(nil, "", func(Option) string { return "" }), nil
	}

	rooms, err := s.roomRepo.List(ownerID, "")
	if err != nil {
		return aggregate.OptionSet[Option]{}, err
	}

	set := aggregate.DependentOptions(rooms, propertyID, func(r models.Room) string { return r.PropertyID })
	options := make([]Option, 0, len(set.Items))
	for _, room := range set.Items {
		options = append(options, Option{ID: room.ID, Label: "Kamar " + room.RoomNumber})
	}
	return aggregate.OptionSet[Option]{Disabled: set.Disabled, Items: options}, nil
}

// TenantOptions returns the tenant selector contents for a chosen room.
// Without a room the selector is disabled and offers nothing.
func (s *FormService) TenantOptions(ownerID, roomID string) (aggregate.OptionSet[Option], error) {
	if roomID == "" {
		return aggregate.DependentOptions(nil, "", func(Option) string { return "" }), nil
	}

	tenants, err := s.tenantRepo.List(ownerID, "")
	if err != nil {
		return aggregate.OptionSet[Option]{}, err
	}

	set := aggregate.DependentOptions(tenants, roomID, func(t models.Tenant) string { return t.RoomID })
	options := make([]Option, 0, len(set.Items))
	for _, tenant := range set.Items {
		options = append(options, Option{ID: tenant.ID, Label: tenant.FullName})
	}
	return aggregate.OptionSet[Option]{Disabled: set.Disabled, Items: options}, nil
}
