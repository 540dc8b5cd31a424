package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var sampleHeader = []interface{}{"Hiragana", "Kanji", "Meaning", "Example"}

var sampleSheets = []struct {
	name string
	rows [][]interface{}
}{
	{
		name: "Day 1",
		rows: [][]interface{}{
			{"こんにちは", "", "hello", "こんにちは、元気ですか。"},
			{"ありがとう", "有難う", "thank you", "手伝ってくれてありがとう。"},
			{"みず", "水", "water", "水を飲みます。"},
			{"たべる", "食べる", "to eat", "朝ごはんを食べる。"},
		},
	},
	{
		name: "Day 2",
		rows: [][]interface{}{
			{"がっこう", "学校", "school", "学校へ行きます。"},
			{"せんせい", "先生", "teacher", "先生に質問する。"},
			{"ともだち", "友達", "friend", "友達と遊ぶ。"},
		},
	},
}

// SampleBuffer builds the two-sheet demonstration workbook in memory.
func SampleBuffer() (*bytes.Buffer, error) {
	f, err := buildSample()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.WriteToBuffer()
}

// WriteSample saves the demonstration workbook to disk, for onboarding
// users who have no vocabulary file of their own yet.
func WriteSample(path string) error {
	f, err := buildSample()
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save sample workbook: %w", err)
	}
	return nil
}

func buildSample() (*excelize.File, error) {
	f := excelize.NewFile()

	for i, sheet := range sampleSheets {
		if i == 0 {
			f.SetSheetName("Sheet1", sheet.name)
		} else {
			f.NewSheet(sheet.name)
		}

		if err := f.SetSheetRow(sheet.name, "A1", &sampleHeader); err != nil {
			return nil, fmt.Errorf("failed to write header of %q: %w", sheet.name, err)
		}
		for r, row := range sheet.rows {
			axis, _ := excelize.CoordinatesToCellName(1, r+2)
			if err := f.SetSheetRow(sheet.name, axis, &row); err != nil {
				return nil, fmt.Errorf("failed to write row %d of %q: %w", r+2, sheet.name, err)
			}
		}
	}

	return f, nil
}
