package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ValidateStruct__credentials(t *testing.T) {
	tests := []struct {
		name         string
		credentials  Credentials
		expectedTags []string
	}{
		{
			name:        "valid",
			credentials: Credentials{Email: "admin@matriz.com", Password: "admin123"},
		},
		{
			name:         "both empty",
			credentials:  Credentials{},
			expectedTags: []string{"required", "required"},
		},
		{
			name:         "password empty",
			credentials:  Credentials{Email: "admin@matriz.com"},
			expectedTags: []string{"required"},
		},
		{
			name:         "email without at sign",
			credentials:  Credentials{Email: "admin.matriz.com", Password: "admin123"},
			expectedTags: []string{"contains"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.credentials)

			var tags []string
			for _, fieldErr := range errs {
				tags = append(tags, fieldErr.Tag())
			}
			assert.Equal(t, tt.expectedTags, tags)
		})
	}
}

func Test_ValidateStruct__password_change_reports_fields_in_declaration_order(t *testing.T) {
	errs := ValidateStruct(PasswordChange{Current: "old", New: "12345", Confirm: "54321"})

	assert.Len(t, errs, 2)
	assert.Equal(t, "New", errs[0].Field())
	assert.Equal(t, "min", errs[0].Tag())
	assert.Equal(t, "Confirm", errs[1].Field())
	assert.Equal(t, "eqfield", errs[1].Tag())
}

func Test_HasFailedTag(t *testing.T) {
	errs := ValidateStruct(PasswordChange{New: "12345", Confirm: "12345"})

	assert.True(t, HasFailedTag(errs, "required"))
	assert.True(t, HasFailedTag(errs, "min"))
	assert.False(t, HasFailedTag(errs, "eqfield"))
	assert.False(t, HasFailedTag(nil, "required"))
}

func Test_ReportFilter_Normalize__should_fall_back_to_defaults(t *testing.T) {
	assert.Equal(t, ReportFilter{Period: PeriodMonth, Type: ReportSales}, ReportFilter{}.Normalize())
	assert.Equal(t, ReportFilter{Period: PeriodYear, Type: ReportClients}, ReportFilter{Period: PeriodYear, Type: ReportClients}.Normalize())
	assert.Equal(t, ReportFilter{Period: PeriodMonth, Type: ReportRentals}, ReportFilter{Period: "decade", Type: ReportRentals}.Normalize())
}

func Test_ReportFilter_ExportFilename(t *testing.T) {
	filter := ReportFilter{Period: PeriodQuarter, Type: ReportPerformance}

	assert.Equal(t, "relatorio-performance-quarter.pdf", filter.ExportFilename())
}
