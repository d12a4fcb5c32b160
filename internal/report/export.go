package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	sheetOverview = "Overview"
	sheetDaily    = "Daily"
	sheetSubjects = "Subjects"
	sheetBadges   = "Badges"
)

// ExportXLSX writes r as a workbook with one sheet per report section.
func ExportXLSX(r *Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetOverview); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{sheetDaily, sheetSubjects, sheetBadges} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("add sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	o := r.Overview
	overview := [][]any{
		{"Student", r.StudentID},
		{"From", r.From},
		{"To", r.To},
		{"Sessions", o.TotalSessions},
		{"Completed", o.CompletedSessions},
		{"Score", o.TotalScore},
		{"Max score", o.MaxScore},
		{"Accuracy %", o.Accuracy},
		{"Time (s)", o.TotalTimeSeconds},
		{"Streak", o.Streak},
		{"Total points", o.TotalPoints},
		{"Next streak milestone", o.NextStreakMilestone},
	}
	if err := writeRows(f, sheetOverview, overview); err != nil {
		return err
	}

	daily := [][]any{{"Date", "Sessions", "Score", "Max score", "Accuracy %"}}
	for _, d := range r.DailyActivity {
		daily = append(daily, []any{d.Date, d.Sessions, d.Score, d.MaxScore, d.Accuracy})
	}
	if err := writeRows(f, sheetDaily, daily); err != nil {
		return err
	}

	weak := make(map[string]bool)
	for _, ws := range r.WeakSubjects {
		weak[string(ws.Subject)] = true
	}
	subjects := [][]any{{"Subject", "Correct", "Total", "Accuracy %", "Avg time (s)", "Weak"}}
	for _, s := range r.Subjects() {
		subjects = append(subjects, []any{
			s.Subject.DisplayName(), s.Correct, s.Total, s.Accuracy, s.AvgTime, weak[string(s.Subject)],
		})
	}
	if err := writeRows(f, sheetSubjects, subjects); err != nil {
		return err
	}

	earned := [][]any{{"Badge", "Rarity", "Earned at"}}
	for _, b := range r.Badges {
		earned = append(earned, []any{b.Name, b.Rarity.DisplayName(), b.EarnedAt.Format("2006-01-02 15:04")})
	}
	if err := writeRows(f, sheetBadges, earned); err != nil {
		return err
	}

	for _, name := range []string{sheetDaily, sheetSubjects, sheetBadges} {
		if err := f.SetRowStyle(name, 1, 1, header); err != nil {
			return fmt.Errorf("style %s: %w", name, err)
		}
	}
	if err := f.SetColStyle(sheetOverview, "A", header); err != nil {
		return fmt.Errorf("style %s: %w", sheetOverview, err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
