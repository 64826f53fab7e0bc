package aggregate

// Stage identifies how far a property → room → tenant selection chain has
// progressed.
type Stage int

const (
	StageNoProperty Stage = iota
	StagePropertySelected
	StageRoomSelected
	StageTenantSelected
)

// SelectionState models the dependent-dropdown chain used by the tenant,
// payment and complaint forms. Transitions are pure: selecting or clearing
// an upstream value deterministically clears every descendant selection.
type SelectionState struct {
	PropertyID string `json:"property_id"`
	RoomID     string `json:"room_id"`
	TenantID   string `json:"tenant_id"`
}

// SelectProperty sets the property selection. Changing or clearing the
// property always resets the room and tenant selections.
func (s SelectionState) SelectProperty(propertyID string) SelectionState {
	return SelectionState{PropertyID: propertyID}
}

// SelectRoom sets the room selection. Without a property the transition is
// a no-op; changing the room resets the tenant selection.
func (s SelectionState) SelectRoom(roomID string) SelectionState {
	if s.PropertyID == "" {
		return s
	}
	return SelectionState{PropertyID: s.PropertyID, RoomID: roomID}
}

// SelectTenant sets the tenant selection. Without a room the transition is
// a no-op.
func (s SelectionState) SelectTenant(tenantID string) SelectionState {
	if s.RoomID == "" {
		return s
	}
	return SelectionState{PropertyID: s.PropertyID, RoomID: s.RoomID, TenantID: tenantID}
}

// Stage returns the deepest completed selection.
func (s SelectionState) Stage() Stage {
	switch {
	case s.TenantID != "":
		return StageTenantSelected
	case s.RoomID != "":
		return StageRoomSelected
	case s.PropertyID != "":
		return StagePropertySelected
	default:
		return StageNoProperty
	}
}
