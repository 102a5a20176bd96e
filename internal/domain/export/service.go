package export

import (
	"fmt"
	"os"
	"path/filepath"

	"eval360/internal/domain/scoring"
)

// Service renders computed score records for download. The scoring engine
// never persists anything; generated files live under Dir and are the only
// artifacts this package writes.
type Service struct {
	Dir string
}

func NewService(dir string) *Service {
	return &Service{Dir: dir}
}

// ScoreReportPDF renders the report to a PDF file and returns its path.
func (s *Service) ScoreReportPDF(name string, title string, stats scoring.GroupStats, records []scoring.ScoreRecord) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("%s.pdf", name))

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := WritePDF(file, title, stats, records); err != nil {
		return "", err
	}
	return path, nil
}
