package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stemsi/schedule-bot/internal/model"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Расписание"

// ReadXLSX reads lesson rows from the first sheet of a workbook. The first
// row is a header; fully blank rows are skipped.
func ReadXLSX(r io.Reader) ([]model.LessonSeed, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	seeds := make([]model.LessonSeed, 0, len(rows))
	for i, cells := range rows {
		if i == 0 || blank(cells) {
			continue
		}
		seed, err := rowFromCells(cells).Seed()
		if err != nil {
			return nil, fmt.Errorf("sheet row %d: %w", i+1, err)
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

// WriteXLSX writes seeds in the layout ReadXLSX accepts.
func WriteXLSX(w io.Writer, seeds []model.LessonSeed) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, s := range seeds {
		subgroup := ""
		if s.Subgroup != model.SubgroupAll {
			subgroup = strconv.Itoa(int(s.Subgroup))
		}
		row := []interface{}{
			model.DayName(s.DayOfWeek),
			s.StartTime + "-" + s.EndTime,
			s.Subject,
			s.LessonType,
			s.Teacher,
			s.Classroom,
			string(s.WeekType),
			subgroup,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func rowFromCells(cells []string) Row {
	get := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}
	return Row{
		Day:       get(0),
		Time:      get(1),
		Subject:   get(2),
		Type:      get(3),
		Teacher:   get(4),
		Classroom: get(5),
		Week:      get(6),
		Subgroup:  get(7),
	}
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
