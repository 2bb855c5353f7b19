// Package roster reads and writes XLSX student rosters. Import feeds a
// workbook into the registry, optionally enrolling every imported student
// into a target course; export writes a course roster with grades.
package roster

import (
	"context"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/msto63/mCW/internal/humboldt/service"
	mcwerror "github.com/msto63/mCW/pkg/core/error"
	"github.com/msto63/mCW/pkg/core/logging"
	"github.com/msto63/mCW/pkg/core/stringx"
)

// Workbook column layout: ID | Name | Email | Major. The ID column may be
// left empty to have one generated.
const (
	colID = iota
	colName
	colEmail
	colMajor
)

// ImporterConfig holds importer configuration
type ImporterConfig struct {
	// Sheet is the preferred worksheet name; the first sheet is used
	// when it is absent.
	Sheet string
	// HeaderRows is the number of leading rows to skip.
	HeaderRows int
}

// DefaultImporterConfig returns default importer configuration
func DefaultImporterConfig() ImporterConfig {
	return ImporterConfig{
		Sheet:      "Roster",
		HeaderRows: 1,
	}
}

// Importer reads student rosters from XLSX workbooks into the registry
type Importer struct {
	svc        *service.Service
	logger     *logging.Logger
	sheet      string
	headerRows int
}

// NewImporter creates a new roster importer
func NewImporter(svc *service.Service, cfg ImporterConfig) *Importer {
	if cfg.Sheet == "" {
		cfg.Sheet = DefaultImporterConfig().Sheet
	}
	if cfg.HeaderRows < 0 {
		cfg.HeaderRows = 0
	}

	return &Importer{
		svc:        svc,
		logger:     logging.New("roster"),
		sheet:      cfg.Sheet,
		headerRows: cfg.HeaderRows,
	}
}

// ImportResult summarizes one import pass
type ImportResult struct {
	Imported int // students created
	Enrolled int // enrollments created
	Skipped  int // rows or enrollments skipped
}

// ImportStudents reads students from an XLSX workbook. When courseID is
// non-empty every imported student is enrolled into that course; the
// course must already exist. Rows without a name are skipped with a log
// line. Re-importing a workbook skips existing students but still enrolls
// them when a course is given.
func (im *Importer) ImportStudents(ctx context.Context, r io.Reader, courseID string) (*ImportResult, error) {
	if courseID != "" {
		if _, err := im.svc.GetCourse(ctx, courseID); err != nil {
			return nil, mcwerror.Wrap(err, "import target course not found").
				WithCode(mcwerror.CodeImportError).
				WithOperation("roster.ImportStudents")
		}
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, mcwerror.Wrap(err, "failed to open workbook").
			WithCode(mcwerror.CodeImportError).
			WithOperation("roster.ImportStudents")
	}
	defer func() {
		if err := f.Close(); err != nil {
			im.logger.Warn("Failed to close workbook", "error", err)
		}
	}()

	sheetName := im.sheet
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx == -1 {
		sheetName = f.GetSheetName(0)
	}
	if sheetName == "" {
		return nil, mcwerror.New("workbook does not contain any sheets").
			WithCode(mcwerror.CodeImportError).
			WithOperation("roster.ImportStudents")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, mcwerror.Wrap(err, "failed to read worksheet").
			WithCode(mcwerror.CodeImportError).
			WithOperation("roster.ImportStudents").
			WithDetail("sheet", sheetName)
	}

	result := &ImportResult{}

	for i, row := range rows {
		if i < im.headerRows {
			continue
		}

		id := cellAt(row, colID)
		name := cellAt(row, colName)

		if stringx.IsBlank(name) {
			if !rowIsEmpty(row) {
				im.logger.Warn("Skipping roster row without a name", "row", i+1)
				result.Skipped++
			}
			continue
		}

		studentID := id
		p, err := im.svc.CreateStudent(ctx, &service.CreateStudentRequest{
			ID:    id,
			Name:  name,
			Email: cellAt(row, colEmail),
			Major: cellAt(row, colMajor),
		})
		if err != nil {
			// An existing student is not importable twice, but can still
			// be enrolled below when a course is given.
			if !mcwerror.HasCode(err, mcwerror.CodeDuplicateID) {
				im.logger.Warn("Failed to import roster row", "row", i+1, "error", err)
				result.Skipped++
				continue
			}
			im.logger.Debug("Student already registered, skipping", "row", i+1, "student_id", id)
			result.Skipped++
		} else {
			studentID = p.ID
			result.Imported++
		}

		if courseID == "" {
			continue
		}

		if _, err := im.svc.Enroll(ctx, studentID, courseID); err != nil {
			if mcwerror.HasCode(err, mcwerror.CodeDuplicateEnrollment) {
				im.logger.Debug("Student already enrolled, skipping",
					"student_id", studentID, "course_id", courseID)
			} else {
				im.logger.Warn("Failed to enroll imported student",
					"student_id", studentID, "course_id", courseID, "error", err)
			}
			result.Skipped++
			continue
		}
		result.Enrolled++
	}

	im.logger.Info("Roster imported",
		"sheet", sheetName,
		"imported", result.Imported,
		"enrolled", result.Enrolled,
		"skipped", result.Skipped,
	)
	return result, nil
}

// cellAt returns the trimmed cell value at the given column, or "" when
// the row is shorter
func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if !stringx.IsBlank(cell) {
			return false
		}
	}
	return true
}
