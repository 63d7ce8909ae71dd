package service_test

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"tm30/internal/domains/submission/model"
)

func TestSubmissionService_Export(t *testing.T) {
	f := newSubmissionFixture(t)

	middle := "Maria"
	phone := "+46 70 123 45 67"

	rows := []model.Submission{
		{
			ID:             "s-1",
			FirstName:      "Anna",
			MiddleName:     &middle,
			LastName:       "Larsson",
			Gender:         "Female",
			PassportNumber: "X1234567",
			Nationality:    "Sweden",
			BirthDate:      "15/03/1990",
			CheckinDate:    "01/09/2026",
			CheckoutDate:   "03/09/2026",
			PhoneNumber:    &phone,
			RoomNumber:     "101",
		},
		{
			ID:             "s-2",
			FirstName:      "Erik",
			LastName:       "Larsson",
			Gender:         "Male",
			PassportNumber: "X7654321",
			Nationality:    "Sweden",
			BirthDate:      "20/07/1988",
			CheckinDate:    "01/09/2026",
			CheckoutDate:   "03/09/2026",
			RoomNumber:     "101",
		},
	}

	f.repo.EXPECT().
		GetAllFiltered(gomock.Any(), "Phunaya Old Town", "", "").
		Return(rows, nil)

	file, err := f.svc.Export(context.Background(), "P256", "Phunaya Old Town", "", "")

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^P256_TM30_Submissions_\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}\.xlsx$`), file.FileName)
	require.NotEmpty(t, file.Content)

	workbook, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)

	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	assert.Equal(t, "P256_Submissions", sheet)

	cells, err := workbook.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, cells, 3)

	assert.Equal(t, []string{
		"No.", "First Name", "Middle Name", "Last Name", "Gender",
		"Passport Number", "Nationality", "Birth Date", "Check-out Date",
		"Phone Number", "Check-in Date", "Room Number",
	}, cells[0])

	assert.Equal(t, "Anna", cells[1][1])
	assert.Equal(t, "Maria", cells[1][2])
	assert.Equal(t, "03/09/2026", cells[1][8])
	assert.Equal(t, "01/09/2026", cells[1][10])
	assert.Equal(t, "Erik", cells[2][1])
}
