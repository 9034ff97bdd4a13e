package upload

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// XLSXExtractor renders every worksheet of an Office Open XML workbook.
type XLSXExtractor struct{}

func (XLSXExtractor) Extract(doc *Document) (Payload, error) {
	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	if err != nil {
		return Payload{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return Payload{}, fmt.Errorf("read sheet %q: %w", name, err)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		renderTable(&b, name, rows)
	}
	return TextPayload(b.String()), nil
}

// XLSExtractor renders every worksheet of a legacy BIFF workbook.
type XLSExtractor struct{}

func (XLSExtractor) Extract(doc *Document) (Payload, error) {
	wb, err := xls.OpenReader(bytes.NewReader(doc.Data), "utf-8")
	if err != nil {
		return Payload{}, fmt.Errorf("open workbook: %w", err)
	}

	var b strings.Builder
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, 0, row.LastCol())
			for c := 0; c < row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			rows = append(rows, cells)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		renderTable(&b, sheet.Name, rows)
	}
	return TextPayload(b.String()), nil
}
