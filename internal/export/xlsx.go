// Package export renders workout plans as spreadsheets.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/meltforce/fitplan/internal/models"
)

// ContentType is the MIME type of the workbook WritePlan produces.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetOverview is the first sheet, holding plan metadata.
const SheetOverview = "Overview"

// Day sheet columns.
const (
	ColExercise  = "A"
	ColKind      = "B"
	ColSets      = "C"
	ColReps      = "D"
	ColDuration  = "E"
	ColRest      = "F"
	ColIntensity = "G"
)

var dayHeaders = []string{"Exercise", "Kind", "Sets", "Reps", "Duration (min)", "Rest (s)", "Intensity"}

// maxSheetName is the Excel limit on sheet name length.
const maxSheetName = 31

// WritePlan writes plan as an .xlsx workbook: an overview sheet followed by
// one sheet per training day.
func WritePlan(w io.Writer, plan *models.WorkoutPlan) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		return fmt.Errorf("renaming overview sheet: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := writeOverview(f, plan, header); err != nil {
		return err
	}
	for _, day := range plan.Workouts {
		if err := writeDay(f, day, header); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeOverview(f *excelize.File, plan *models.WorkoutPlan, header int) error {
	t := plan.Template
	rows := [][2]any{
		{"Plan", plan.ID.String()},
		{"Goal", string(plan.Goal)},
		{"Experience level", string(plan.ExperienceLevel)},
		{"Days per week", plan.DaysPerWeek},
		{"Strategy", plan.Strategy},
		{"Created", plan.CreatedAt.UTC().Format(time.RFC3339)},
		{"Sets", FormatRange(&t.Sets)},
		{"Reps", FormatRange(&t.Reps)},
		{"Rest (s)", t.RestSeconds},
		{"Exercises per workout", t.ExercisesPerWorkout},
		{"Intensity", t.Intensity},
		{"Frequency (days/week)", FormatRange(&t.Frequency)},
	}
	if plan.UnderfillWarning {
		rows = append(rows, [2]any{"Warning", "Some days have fewer exercises than targeted"})
	}

	for i, r := range rows {
		row := i + 1
		if err := f.SetCellValue(SheetOverview, fmt.Sprintf("A%d", row), r[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(SheetOverview, fmt.Sprintf("B%d", row), r[1]); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetOverview, "A1", fmt.Sprintf("A%d", len(rows)), header); err != nil {
		return err
	}
	return f.SetColWidth(SheetOverview, "A", "B", 28)
}

func writeDay(f *excelize.File, day models.DayWorkout, header int) error {
	sheet := SheetName(day)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %q: %w", sheet, err)
	}

	for i, h := range dayHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", fmt.Sprintf("%s1", ColIntensity), header); err != nil {
		return err
	}

	for i, ex := range day.Exercises {
		row := i + 2
		set := func(col string, v any) error {
			return f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
		if err := set(ColExercise, ex.Name); err != nil {
			return err
		}
		if err := set(ColKind, string(ex.Kind)); err != nil {
			return err
		}
		if err := set(ColSets, FormatRange(ex.Sets)); err != nil {
			return err
		}
		if err := set(ColReps, FormatRange(ex.Reps)); err != nil {
			return err
		}
		if ex.DurationMinutes != nil {
			if err := set(ColDuration, *ex.DurationMinutes); err != nil {
				return err
			}
		}
		if ex.RestSeconds > 0 {
			if err := set(ColRest, ex.RestSeconds); err != nil {
				return err
			}
		}
		if err := set(ColIntensity, ex.Intensity); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, ColExercise, ColExercise, 30); err != nil {
		return err
	}
	return f.SetColWidth(sheet, ColKind, ColIntensity, 14)
}

// SheetName returns the sheet title for a day, e.g. "Day 2 - Pull".
// Characters Excel rejects are dropped and the name is cut to 31 characters.
func SheetName(day models.DayWorkout) string {
	name := fmt.Sprintf("Day %d - %s", day.Day, day.SplitName)
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, name)
	if r := []rune(name); len(r) > maxSheetName {
		name = strings.TrimSpace(string(r[:maxSheetName]))
	}
	return name
}

// FormatRange renders "3-4", or "3" when both bounds agree. Nil renders empty.
func FormatRange(r *models.Range) string {
	if r == nil {
		return ""
	}
	if r.Min == r.Max {
		return fmt.Sprintf("%d", r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}
