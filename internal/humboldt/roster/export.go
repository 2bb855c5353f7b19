package roster

import (
	"context"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/msto63/mCW/internal/humboldt/service"
	mcwerror "github.com/msto63/mCW/pkg/core/error"
)

var exportHeader = []string{"ID", "Name", "Email", "Major", "Grade"}

// ExportRoster writes the roster of a course as an XLSX workbook to w:
// one row per enrolled student with ID | Name | Email | Major | Grade,
// in enrollment order. Ungraded enrollments leave the grade cell empty.
func ExportRoster(ctx context.Context, svc *service.Service, courseID, sheet string, w io.Writer) error {
	if _, err := svc.GetCourse(ctx, courseID); err != nil {
		return mcwerror.Wrap(err, "export course not found").
			WithCode(mcwerror.CodeExportError).
			WithOperation("roster.ExportRoster")
	}

	students, err := svc.StudentsInCourse(ctx, courseID)
	if err != nil {
		return mcwerror.Wrap(err, "failed to read course roster").
			WithCode(mcwerror.CodeExportError).
			WithOperation("roster.ExportRoster")
	}

	if sheet == "" {
		sheet = DefaultImporterConfig().Sheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return mcwerror.Wrap(err, "failed to name worksheet").
			WithCode(mcwerror.CodeExportError).
			WithOperation("roster.ExportRoster")
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for i, s := range students {
		grade := ""
		if e, err := svc.GetEnrollment(ctx, s.ID, courseID); err == nil {
			grade = e.Grade
		}

		values := []string{s.ID, s.Name, s.Email, s.Major, grade}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return mcwerror.Wrap(err, "failed to write workbook").
			WithCode(mcwerror.CodeExportError).
			WithOperation("roster.ExportRoster")
	}

	return nil
}
