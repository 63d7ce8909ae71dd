package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tm30/internal/domains/submission/model"
	"tm30/internal/domains/submission/model/dto"
	"tm30/shared/constant"
	"tm30/shared/dateform"
	"tm30/shared/timezone"

	"github.com/xuri/excelize/v2"
)

// exportColumns is the fixed column order of the spreadsheet export. The
// dashboard's downstream tooling depends on it, do not reorder.
var exportColumns = []struct {
	header string
	width  float64
}{
	{"No.", 7},
	{"First Name", 17},
	{"Middle Name", 14},
	{"Last Name", 17},
	{"Gender", 10},
	{"Passport Number", 19},
	{"Nationality", 14},
	{"Birth Date", 14},
	{"Check-out Date", 14},
	{"Phone Number", 17},
	{"Check-in Date", 14},
	{"Room Number", 14},
}

// Export renders the filtered submission set as an .xlsx workbook. It
// applies exactly the same filters as List so the exported rows always
// match what the dashboard shows.
func (service *serviceImpl) Export(ctx context.Context, hotelCode, hotelName, search, checkinDate string) (dto.ExportFile, error) {
	ctx, scope := service.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.submission.Export", constant.OtelServiceScopeName))
	defer scope.End()

	rows, err := service.repo.GetAllFiltered(ctx, hotelName, search, checkinDate)
	if err != nil {
		scope.TraceError(err)

		return dto.ExportFile{}, fmt.Errorf("failed to load submissions for export: %w", err)
	}

	content, err := buildWorkbook(hotelCode, rows)
	if err != nil {
		scope.TraceError(err)

		return dto.ExportFile{}, err
	}

	scope.SetAttribute("exported_rows", len(rows))

	return dto.ExportFile{
		FileName: exportFileName(hotelCode, timezone.Now()),
		Content:  content,
	}, nil
}

func buildWorkbook(hotelCode string, rows []model.Submission) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := hotelCode + "_Submissions"

	if err := file.SetSheetName(file.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	for i, col := range exportColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve export column: %w", err)
		}

		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve export header cell: %w", err)
		}

		if err := file.SetCellValue(sheet, cell, col.header); err != nil {
			return nil, fmt.Errorf("failed to write export header: %w", err)
		}

		if err := file.SetColWidth(sheet, name, name, col.width); err != nil {
			return nil, fmt.Errorf("failed to set export column width: %w", err)
		}
	}

	for i, row := range rows {
		values := []any{
			i + 1,
			row.FirstName,
			deref(row.MiddleName),
			row.LastName,
			row.Gender,
			row.PassportNumber,
			row.Nationality,
			dateform.Reformat(row.BirthDate),
			dateform.Reformat(row.CheckoutDate),
			deref(row.PhoneNumber),
			dateform.Reformat(row.CheckinDate),
			row.RoomNumber,
		}

		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve export cell: %w", err)
			}

			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write export cell: %w", err)
			}
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render export workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// exportFileName matches the download naming the dashboard expects:
// hotel code, fixed label, then a second-resolution timestamp with the
// characters ':' and '.' replaced so the name is filesystem safe.
func exportFileName(hotelCode string, now time.Time) string {
	timestamp := now.UTC().Format("2006-01-02T15:04:05")
	timestamp = strings.NewReplacer(":", "-", ".", "-").Replace(timestamp)

	return fmt.Sprintf("%s_TM30_Submissions_%s.xlsx", hotelCode, timestamp)
}

func deref(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return *value
}
