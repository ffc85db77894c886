package complaint

import (
	"github.com/yellomango9/it-mgmt-tool/internal"
)

type CreateComplaintDTO struct {
	UserID      *int64  `json:"user_id"`
	Subject     string  `json:"subject"`
	Description string  `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

func (d *CreateComplaintDTO) Validate() error {
	if d.UserID == nil || d.Subject == "" || d.Description == "" {
		return internal.NewValidationError("Missing required fields", internal.ErrCodeMissingFields)
	}
	return nil
}

// UpdateComplaintDTO is deliberately narrow: only status and priority are
// mutable after filing.
type UpdateComplaintDTO struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

func (d *UpdateComplaintDTO) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if d.Status != nil {
		fields["status"] = *d.Status
	}
	if d.Priority != nil {
		fields["priority"] = *d.Priority
	}
	return fields
}
