package testplan

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf))
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		SheetSummary, SheetTestCases, SheetSchedule, SheetEnvironments,
		SheetBugSeverity, SheetTestData, SheetSecurity, SheetPerformance,
		SheetRegression, SheetExitCriteria,
	}, f.GetSheetList())

	// Summary sheet: header row plus first and last module rows
	got, err := f.GetCellValue(SheetSummary, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Module", got)

	got, err = f.GetCellValue(SheetSummary, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Authentication & Authorization", got)

	lastRow := len(ModuleSummaries()) + 1
	got, err = f.GetCellValue(SheetSummary, "A19")
	require.NoError(t, err)
	assert.Equal(t, "Financial Reporting", got)
	assert.Equal(t, 19, lastRow)

	// Test cases sheet: all 50 rows, priority column populated
	require.Len(t, CriticalTestCases(), 50)
	got, err = f.GetCellValue(SheetTestCases, "E2")
	require.NoError(t, err)
	assert.Equal(t, "P0", got)

	got, err = f.GetCellValue(SheetTestCases, "A2")
	require.NoError(t, err)
	assert.Equal(t, "TC-AUTH-001", got)

	got, err = f.GetCellValue(SheetTestCases, "A51")
	require.NoError(t, err)
	assert.Equal(t, "TC-CACHE-005", got)

	// Schedule sheet: 4-week plan ends with UAT
	got, err = f.GetCellValue(SheetSchedule, "B19")
	require.NoError(t, err)
	assert.Equal(t, "UAT", got)

	// Security sheet
	got, err = f.GetCellValue(SheetSecurity, "A11")
	require.NoError(t, err)
	assert.Equal(t, "SEC-010", got)

	// Regression sheet
	got, err = f.GetCellValue(SheetRegression, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Authentication", got)

	// Exit criteria sheet
	got, err = f.GetCellValue(SheetExitCriteria, "A8")
	require.NoError(t, err)
	assert.Equal(t, "Production Release", got)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_plan.xlsx")
	require.NoError(t, WriteFile(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Len(t, f.GetSheetList(), 10)
}

func TestTables_Consistency(t *testing.T) {
	for _, m := range ModuleSummaries() {
		assert.Equal(t, m.TotalTests, m.P0+m.P1+m.P2, "module %s priority split", m.Module)
	}
	seen := make(map[string]bool)
	for _, tc := range CriticalTestCases() {
		assert.False(t, seen[tc.ID], "duplicate test id %s", tc.ID)
		seen[tc.ID] = true
		assert.Contains(t, []string{"P0", "P1", "P2"}, tc.Priority)
	}
	for _, st := range SecurityTests() {
		assert.False(t, seen[st.ID], "duplicate test id %s", st.ID)
		seen[st.ID] = true
	}
	for _, r := range RegressionSuite() {
		assert.Contains(t, []string{"P0", "P1", "P2"}, r.Priority)
	}
	for _, d := range TestDataRequirements() {
		assert.GreaterOrEqual(t, d.Recommended, d.MinimumRequired, "data type %s", d.DataType)
	}
}
