package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/yellomango9/it-mgmt-tool/internal"
	"github.com/yellomango9/it-mgmt-tool/internal/auditlog"
	"github.com/yellomango9/it-mgmt-tool/internal/complaint"
	"github.com/yellomango9/it-mgmt-tool/internal/peripheral"
	"github.com/yellomango9/it-mgmt-tool/internal/system"
)

// Service renders reports from the same repositories that back the listing
// endpoints, so a report always matches what the corresponding listing
// would have returned for the same filters.
type Service struct {
	systems     system.Repository
	peripherals peripheral.Repository
	complaints  complaint.Repository
	logs        auditlog.Repository
	exportDir   string
	logger      *slog.Logger
}

func NewService(systems system.Repository, peripherals peripheral.Repository,
	complaints complaint.Repository, logs auditlog.Repository,
	exportDir string, logger *slog.Logger) *Service {
	return &Service{
		systems:     systems,
		peripherals: peripherals,
		complaints:  complaints,
		logs:        logs,
		exportDir:   exportDir,
		logger:      logger,
	}
}

func (s *Service) ComplaintReport(filters complaint.ListFilters) ([]byte, error) {
	rows, err := s.complaints.List(filters)
	if err != nil {
		s.logger.Error("complaint report query failed", "error", err)
		return nil, internal.NewInternalError("Internal server error", err)
	}

	d := newDoc("Complaint Report")
	for _, c := range rows {
		d.ensureRoom(100)
		d.line(leftMargin, fmt.Sprintf("ID: %d | User: %s", c.ID, orEmpty(c.UserName)))
		d.line(leftMargin, fmt.Sprintf("Subject: %s", c.Subject))
		d.line(leftMargin, fmt.Sprintf("Status: %s, Priority: %s, Created: %s",
			c.Status, c.Priority, c.CreatedAt.Format("2006-01-02 15:04:05")))
		d.line(leftMargin, fmt.Sprintf("Description: %s...", truncate(c.Description, 100)))
		d.endBlock()
	}

	data, err := d.bytes()
	if err != nil {
		s.logger.Error("complaint report render failed", "error", err)
		return nil, internal.NewInternalError("Internal server error", err)
	}
	return data, nil
}

func (s *Service) SystemReport(filters system.ListFilters) ([]byte, error) {
	rows, err := s.systems.List(filters)
	if err != nil {
		s.logger.Error("system report query failed", "error", err)
		return nil, internal.NewInternalError("Internal server error", err)
	}

	d := newDoc("System Inventory Report")
	for _, sys := range rows {
		d.ensureRoom(100)
		d.line(leftMargin, fmt.Sprintf("Host: %s | IP: %s | MAC: %s",
			sys.Hostname, sys.IPAddress, orEmpty(sys.MACAddress)))
		d.line(leftMargin, fmt.Sprintf("OS: %s %s, RAM: %g GB, CPU: %s",
			sys.OSName, orEmpty(sys.OSVersion), floatOrZero(sys.RAMSizeGB), orEmpty(sys.CPUModel)))
		d.line(leftMargin, fmt.Sprintf("User: %s, Dept: %s, Network: %s",
			orEmpty(sys.UserName), orEmpty(sys.Department), orEmpty(sys.Network)))
		d.endBlock()
	}

	data, err := d.bytes()
	if err != nil {
		s.logger.Error("system report render failed", "error", err)
		return nil, internal.NewInternalError("Internal server error", err)
	}
	return data, nil
}

func (s *Service) LogReport() ([]byte, error) {
	rows, err := s.logs.ListWithActor()
	if err != nil {
		s.logger.Error("log report query failed", "error", err)
		return nil, internal.NewInternalError("Internal server error", err)
	}

	d := newDoc("Activity Log Report")
	for _, entry := range rows {
		d.ensureRoom(100)
		d.line(leftMargin, fmt.Sprintf("%s | User: %s | Action: %s",
			entry.CreatedAt.Format("2006-01-02 15:04:05"), orEmpty(entry.UserName), entry.Action))
		d.line(70, fmt.Sprintf("Resource: %s#%d | Context: %s",
			entry.ResourceType, entry.ResourceID, entry.Context))
		d.endBlock()
	}

	data, err := d.bytes()
	if err != nil {
		s.logger.Error("log report render failed", "error", err)
		return nil, internal.NewInternalError("Internal server error", err)
	}
	return data, nil
}

// PeripheralExport renders the peripherals table and writes it under the
// export directory so the returned file name resolves as a static path.
func (s *Service) PeripheralExport() (string, error) {
	rows, err := s.peripherals.List()
	if err != nil {
		s.logger.Error("peripheral export query failed", "error", err)
		return "", internal.NewInternalError("Internal server error", err)
	}

	const filename = "peripherals.pdf"

	d := newTableDoc("Peripheral Devices Report", []string{"ID", "Type", "Model", "Serial No", "System ID"})
	for _, p := range rows {
		d.ensureRoom(60)
		d.pdf.Text(30, d.y, fmt.Sprintf("%d", p.ID))
		d.pdf.Text(130, d.y, p.Type)
		d.pdf.Text(230, d.y, orEmpty(p.Model))
		d.pdf.Text(330, d.y, p.SerialNumber)
		d.pdf.Text(430, d.y, orNone(p.AssignedToSystemID))
		d.y += 20
	}

	data, err := d.bytes()
	if err != nil {
		s.logger.Error("peripheral export render failed", "error", err)
		return "", internal.NewInternalError("Internal server error", err)
	}

	path := filepath.Join(s.exportDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error("peripheral export write failed", "error", err, "path", path)
		return "", internal.NewInternalError("Internal server error", err)
	}

	s.logger.Info("peripheral export written", "path", path, "rows", len(rows))
	return filename, nil
}
