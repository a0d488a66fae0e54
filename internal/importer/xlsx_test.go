package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stemsi/schedule-bot/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestWriteThenReadXLSX(t *testing.T) {
	seeds, err := Builtin()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, seeds); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	got, err := ReadXLSX(&buf)
	if err != nil {
		t.Fatalf("ReadXLSX() error = %v", err)
	}
	if len(got) != len(seeds) {
		t.Fatalf("ReadXLSX() returned %d rows, want %d", len(got), len(seeds))
	}
	for i := range seeds {
		if got[i] != seeds[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], seeds[i])
		}
	}
}

func TestReadXLSXSkipsBlankRowsAndReportsBadOnes(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"День", "Время", "Предмет"},
		{"Вторник", "15:30-17:05", "Информатика", "л", "", "2226", "Нечётная", ""},
		{},
		{"Вторник", "17:15", "Информатика"},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	_, err := ReadXLSX(bytes.NewReader(buf.Bytes()))
	if err == nil || !strings.Contains(err.Error(), "sheet row 4") {
		t.Fatalf("ReadXLSX() error = %v, want failure on sheet row 4", err)
	}

	if err := f.RemoveRow(sheet, 4); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	got, err := ReadXLSX(&buf)
	if err != nil {
		t.Fatalf("ReadXLSX() error = %v", err)
	}
	want := model.LessonSeed{Subject: "Информатика", DayOfWeek: 1, StartTime: "15:30", EndTime: "17:05", LessonType: "л", Classroom: "2226", WeekType: model.WeekOdd}
	if len(got) != 1 || got[0] != want {
		t.Errorf("ReadXLSX() = %+v, want [%+v]", got, want)
	}
}

func TestReadXLSXRejectsGarbage(t *testing.T) {
	if _, err := ReadXLSX(strings.NewReader("not a workbook")); err == nil {
		t.Error("ReadXLSX() expected error")
	}
}
