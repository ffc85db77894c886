package system

import (
	"github.com/yellomango9/it-mgmt-tool/internal"
)

type CreateSystemDTO struct {
	Hostname        string   `json:"hostname"`
	OSName          string   `json:"os_name"`
	OSVersion       *string  `json:"os_version"`
	RAMSizeGB       *float64 `json:"ram_size_gb"`
	CPUModel        *string  `json:"cpu_model"`
	StorageSizeGB   *float64 `json:"storage_size_gb"`
	IPAddress       string   `json:"ip_address"`
	MACAddress      *string  `json:"mac_address"`
	AntivirusStatus *string  `json:"antivirus_status"`
	UserID          *int64   `json:"user_id"`
	NetworkID       *int64   `json:"network_id"`
}

func (d *CreateSystemDTO) Validate() error {
	if d.Hostname == "" || d.IPAddress == "" || d.OSName == "" {
		return internal.NewValidationError("Missing required fields", internal.ErrCodeMissingFields)
	}
	return nil
}

// UpdateSystemDTO carries the mutable column whitelist. Pointer fields
// distinguish "absent" from "set to zero value"; unknown JSON keys are
// dropped by decoding, matching the whitelist contract.
type UpdateSystemDTO struct {
	Hostname        *string  `json:"hostname"`
	OSName          *string  `json:"os_name"`
	OSVersion       *string  `json:"os_version"`
	RAMSizeGB       *float64 `json:"ram_size_gb"`
	CPUModel        *string  `json:"cpu_model"`
	StorageSizeGB   *float64 `json:"storage_size_gb"`
	IPAddress       *string  `json:"ip_address"`
	MACAddress      *string  `json:"mac_address"`
	AntivirusStatus *string  `json:"antivirus_status"`
	UserID          *int64   `json:"user_id"`
	NetworkID       *int64   `json:"network_id"`
}

// Fields returns the present whitelisted fields as a column/value map.
func (d *UpdateSystemDTO) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if d.Hostname != nil {
		fields["hostname"] = *d.Hostname
	}
	if d.OSName != nil {
		fields["os_name"] = *d.OSName
	}
	if d.OSVersion != nil {
		fields["os_version"] = *d.OSVersion
	}
	if d.RAMSizeGB != nil {
		fields["ram_size_gb"] = *d.RAMSizeGB
	}
	if d.CPUModel != nil {
		fields["cpu_model"] = *d.CPUModel
	}
	if d.StorageSizeGB != nil {
		fields["storage_size_gb"] = *d.StorageSizeGB
	}
	if d.IPAddress != nil {
		fields["ip_address"] = *d.IPAddress
	}
	if d.MACAddress != nil {
		fields["mac_address"] = *d.MACAddress
	}
	if d.AntivirusStatus != nil {
		fields["antivirus_status"] = *d.AntivirusStatus
	}
	if d.UserID != nil {
		fields["user_id"] = *d.UserID
	}
	if d.NetworkID != nil {
		fields["network_id"] = *d.NetworkID
	}
	return fields
}
