package salary

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type exportRow struct {
	EmployeeName string `csv:"Employee Name"`
	EmployeeID   string `csv:"Employee ID"`
	Department   string `csv:"Department"`
	SalaryPeriod string `csv:"Salary Period"`
	Position     string `csv:"Position"`
	BaseSalary   string `csv:"Base Salary"`
	GrossSalary  string `csv:"Gross Salary"`
	Bonus        string `csv:"Bonus"`
	Deductions   string `csv:"Deductions"`
	NetSalary    string `csv:"Net Salary"`
	PayDate      string `csv:"Pay Date"`
}

var exportHeaders = []string{
	"Employee Name", "Employee ID", "Department", "Salary Period", "Position",
	"Base Salary", "Gross Salary", "Bonus", "Deductions", "Net Salary", "Pay Date",
}

// plainFloat menulis angka tanpa format mata uang dan tanpa nol berlebih.
func plainFloat(d decimal.Decimal) string {
	return strconv.FormatFloat(d.InexactFloat64(), 'f', -1, 64)
}

func toExportRow(r SalaryRecord) exportRow {
	row := exportRow{
		SalaryPeriod: r.SalaryPeriod,
		Position:     r.PositionSnapshot,
		BaseSalary:   plainFloat(r.BaseSalarySnapshot),
		GrossSalary:  plainFloat(r.GrossSalary),
		Bonus:        plainFloat(r.Bonus),
		Deductions:   plainFloat(r.Deductions),
		NetSalary:    plainFloat(r.NetSalary),
	}
	if r.Employee != nil {
		row.EmployeeName = r.Employee.Name
		row.EmployeeID = r.Employee.EmployeeNumber
		row.Department = r.Employee.Department
	}
	if r.PayDate != nil {
		row.PayDate = r.PayDate.Format(dateLayout)
	}
	return row
}

func writeCSV(name string, records []SalaryRecord) (ExportFile, error) {
	rows := make([]exportRow, len(records))
	for i, r := range records {
		rows[i] = toExportRow(r)
	}

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return ExportFile{}, fmt.Errorf("write salary csv: %w", err)
	}

	return ExportFile{
		Filename:    name + ".csv",
		ContentType: "text/csv; charset=utf-8",
		Body:        buf.Bytes(),
	}, nil
}

func writeXLSX(name string, records []SalaryRecord) (ExportFile, error) {
	const sheet = "Salaries"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return ExportFile{}, err
	}
	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return ExportFile{}, err
	}

	for i, r := range records {
		row := toExportRow(r)
		values := []any{
			row.EmployeeName,
			row.EmployeeID,
			row.Department,
			row.SalaryPeriod,
			row.Position,
			r.BaseSalarySnapshot.InexactFloat64(),
			r.GrossSalary.InexactFloat64(),
			r.Bonus.InexactFloat64(),
			r.Deductions.InexactFloat64(),
			r.NetSalary.InexactFloat64(),
			row.PayDate,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return ExportFile{}, err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return ExportFile{}, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return ExportFile{}, fmt.Errorf("write salary xlsx: %w", err)
	}

	return ExportFile{
		Filename:    name + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Body:        buf.Bytes(),
	}, nil
}
