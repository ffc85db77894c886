package peripheral

import (
	"github.com/yellomango9/it-mgmt-tool/internal"
)

// CreatePeripheralDTO carries the insertable columns plus an optional
// user_id used only for audit attribution when the request itself carries
// no actor identity.
type CreatePeripheralDTO struct {
	Type               string  `json:"type"`
	Model              *string `json:"model"`
	SerialNumber       string  `json:"serial_number"`
	AssignedToSystemID *int64  `json:"assigned_to_system_id"`
	UserID             *int64  `json:"user_id"`
}

func (d *CreatePeripheralDTO) Validate() error {
	if d.Type == "" {
		return internal.NewValidationError("Missing field: type", internal.ErrCodeMissingFields)
	}
	if d.SerialNumber == "" {
		return internal.NewValidationError("Missing field: serial_number", internal.ErrCodeMissingFields)
	}
	return nil
}

type UpdatePeripheralDTO struct {
	Type               *string `json:"type"`
	Model              *string `json:"model"`
	SerialNumber       *string `json:"serial_number"`
	AssignedToSystemID *int64  `json:"assigned_to_system_id"`
}

func (d *UpdatePeripheralDTO) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if d.Type != nil {
		fields["type"] = *d.Type
	}
	if d.Model != nil {
		fields["model"] = *d.Model
	}
	if d.SerialNumber != nil {
		fields["serial_number"] = *d.SerialNumber
	}
	if d.AssignedToSystemID != nil {
		fields["assigned_to_system_id"] = *d.AssignedToSystemID
	}
	return fields
}
