package testplan

import (
	"io"

	"github.com/xuri/excelize/v2"
	"gitlab.com/tozd/go/errors"
)

// Sheet names, in workbook order.
const (
	SheetSummary      = "Test Summary"
	SheetTestCases    = "Test Cases"
	SheetSchedule     = "Execution Schedule"
	SheetEnvironments = "Test Environments"
	SheetBugSeverity  = "Bug Severity"
	SheetTestData     = "Test Data"
	SheetSecurity     = "Security Tests"
	SheetPerformance  = "Performance Metrics"
	SheetRegression   = "Regression Suite"
	SheetExitCriteria = "Exit Criteria"
)

// Header styling matches the QA team's original workbook: bold white on
// slate, bordered, with the header row frozen on every sheet.
const (
	headerFillColor = "4B5563"
	p0FillColor     = "FEE2E2"
	p1FillColor     = "FEF3C7"
	p2FillColor     = "E0E7FF"
)

// Write renders the full workbook to w.
func Write(w io.Writer) error {
	f, err := build()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return errors.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteFile renders the full workbook to a file.
func WriteFile(path string) error {
	f, err := build()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return errors.Errorf("saving workbook: %w", err)
	}
	return nil
}

type styles struct {
	header   int
	priority map[string]int
}

// sheetDef describes one sheet: its header row, its data rows, and
// which column (1-based; 0 for none) carries a P0/P1/P2 priority that
// gets a tinted cell.
type sheetDef struct {
	name        string
	headers     []string
	rows        [][]interface{}
	priorityCol int
}

func sheets() []sheetDef {
	defs := []sheetDef{
		{
			name:    SheetSummary,
			headers: []string{"Module", "Total Tests", "P0 (Critical)", "P1 (High)", "P2 (Medium)", "Estimated Hours", "Dependencies", "Status"},
		},
		{
			name:        SheetTestCases,
			headers:     []string{"Test ID", "Module", "Feature", "Test Case", "Priority", "Test Type", "Est. Time (min)", "Preconditions", "Status", "Risk Level"},
			priorityCol: 5,
		},
		{
			name:    SheetSchedule,
			headers: []string{"Week", "Phase", "Modules", "Test Count", "Resources", "Priority Focus"},
		},
		{
			name:    SheetEnvironments,
			headers: []string{"Environment", "Purpose", "Database", "Users Required", "Data Requirements", "Tools", "Access Level"},
		},
		{
			name:    SheetBugSeverity,
			headers: []string{"Severity", "Description", "Response Time", "Resolution Time", "Examples", "Escalation"},
		},
		{
			name:    SheetTestData,
			headers: []string{"Data Type", "Minimum Required", "Recommended", "Variations Needed", "Special Cases", "Generation Method"},
		},
		{
			name:    SheetSecurity,
			headers: []string{"Test ID", "Category", "Test Case", "Method", "Expected Result", "Tools"},
		},
		{
			name:    SheetPerformance,
			headers: []string{"Metric", "Target", "Acceptable", "Test Method", "Frequency", "Notes"},
		},
		{
			name:        SheetRegression,
			headers:     []string{"Module", "Feature", "Test Cases", "Priority", "Automation"},
			priorityCol: 4,
		},
		{
			name:    SheetExitCriteria,
			headers: []string{"Phase", "Pass Criteria", "Fail Criteria", "Sign-off Required", "Documentation", "Rollback Plan"},
		},
	}

	for _, m := range ModuleSummaries() {
		defs[0].rows = append(defs[0].rows, []interface{}{m.Module, m.TotalTests, m.P0, m.P1, m.P2, m.EstimatedHours, m.Dependencies, m.Status})
	}
	for _, tc := range CriticalTestCases() {
		defs[1].rows = append(defs[1].rows, []interface{}{tc.ID, tc.Module, tc.Feature, tc.Description, tc.Priority, tc.Type, tc.EstMinutes, tc.Preconditions, tc.Status, tc.RiskLevel})
	}
	for _, s := range ExecutionSchedule() {
		defs[2].rows = append(defs[2].rows, []interface{}{s.Week, s.Phase, s.Modules, s.TestCount, s.Resources, s.PriorityFocus})
	}
	for _, e := range TestEnvironments() {
		defs[3].rows = append(defs[3].rows, []interface{}{e.Name, e.Purpose, e.Database, e.UsersRequired, e.DataRequirements, e.Tools, e.AccessLevel})
	}
	for _, b := range BugSeverities() {
		defs[4].rows = append(defs[4].rows, []interface{}{b.Severity, b.Description, b.ResponseTime, b.ResolutionTime, b.Examples, b.Escalation})
	}
	for _, d := range TestDataRequirements() {
		defs[5].rows = append(defs[5].rows, []interface{}{d.DataType, d.MinimumRequired, d.Recommended, d.Variations, d.SpecialCases, d.GenerationMethod})
	}
	for _, s := range SecurityTests() {
		defs[6].rows = append(defs[6].rows, []interface{}{s.ID, s.Category, s.Description, s.Method, s.ExpectedResult, s.Tools})
	}
	for _, p := range PerformanceMetrics() {
		defs[7].rows = append(defs[7].rows, []interface{}{p.Metric, p.Target, p.Acceptable, p.TestMethod, p.Frequency, p.Notes})
	}
	for _, r := range RegressionSuite() {
		defs[8].rows = append(defs[8].rows, []interface{}{r.Module, r.Feature, r.TestCases, r.Priority, r.Automation})
	}
	for _, ec := range ExitCriteria() {
		defs[9].rows = append(defs[9].rows, []interface{}{ec.Phase, ec.PassCriteria, ec.FailCriteria, ec.SignOff, ec.Documentation, ec.RollbackPlan})
	}

	return defs
}

func build() (*excelize.File, error) {
	f := excelize.NewFile()

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, def := range sheets() {
		// Reuse the default sheet as the first one
		if i == 0 {
			if err := f.SetSheetName("Sheet1", def.name); err != nil {
				f.Close()
				return nil, errors.Errorf("renaming default sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(def.name); err != nil {
				f.Close()
				return nil, errors.Errorf("creating sheet %s: %w", def.name, err)
			}
		}
		if err := writeSheet(f, def, st); err != nil {
			f.Close()
			return nil, errors.Errorf("writing %s: %w", def.name, err)
		}
	}

	return f, nil
}

func newStyles(f *excelize.File) (*styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return nil, errors.Errorf("creating header style: %w", err)
	}

	priority := make(map[string]int, 3)
	for p, fill := range map[string]string{"P0": p0FillColor, "P1": p1FillColor, "P2": p2FillColor} {
		id, err := f.NewStyle(&excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
			Border: border,
		})
		if err != nil {
			return nil, errors.Errorf("creating %s style: %w", p, err)
		}
		priority[p] = id
	}

	return &styles{header: header, priority: priority}, nil
}

// setupSheet writes the styled header row, freezes it, and sets the
// column widths the original workbook uses (narrow ID column, wide
// description column).
func setupSheet(f *excelize.File, sheet string, headers []string, st *styles) error {
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.Errorf("naming header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return errors.Errorf("writing header cell: %w", err)
		}
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return errors.Errorf("naming last header cell: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, st.header); err != nil {
		return errors.Errorf("styling header row: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", "A", 15); err != nil {
		return errors.Errorf("setting column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "C", 20); err != nil {
		return errors.Errorf("setting column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "D", "D", 40); err != nil {
		return errors.Errorf("setting column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "E", "J", 15); err != nil {
		return errors.Errorf("setting column width: %w", err)
	}

	// Freeze the header row
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return errors.Errorf("freezing header row: %w", err)
	}

	return nil
}

func writeSheet(f *excelize.File, def sheetDef, st *styles) error {
	if err := setupSheet(f, def.name, def.headers, st); err != nil {
		return err
	}

	for i, values := range def.rows {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return errors.Errorf("naming row cell: %w", err)
		}
		if err := f.SetSheetRow(def.name, cell, &values); err != nil {
			return errors.Errorf("writing row %d: %w", row, err)
		}

		if def.priorityCol == 0 {
			continue
		}
		// Tint the priority cell
		p, ok := values[def.priorityCol-1].(string)
		if !ok {
			continue
		}
		styleID, ok := st.priority[p]
		if !ok {
			continue
		}
		cell, err = excelize.CoordinatesToCellName(def.priorityCol, row)
		if err != nil {
			return errors.Errorf("naming priority cell: %w", err)
		}
		if err := f.SetCellStyle(def.name, cell, cell, styleID); err != nil {
			return errors.Errorf("styling priority cell: %w", err)
		}
	}
	return nil
}
