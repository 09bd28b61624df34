package salary

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

func formatAmount(v float64) string {
	return amountPrinter.Sprintf("%.2f", v)
}

func payslipFilename(r SalaryRecord) string {
	number := r.EmployeeID.String()
	if r.Employee != nil && r.Employee.EmployeeNumber != "" {
		number = r.Employee.EmployeeNumber
	}
	return fmt.Sprintf("payslip_%s_%s.pdf", number, r.SalaryPeriod)
}

func renderPayslipPDF(view PrintViewResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip "+view.SalaryInfo.SalaryPeriod, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", view.EmployeeInfo.Name, view.EmployeeInfo.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", view.EmployeeInfo.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s", view.EmployeeInfo.Position))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", view.SalaryInfo.SalaryPeriod))
	pdf.Ln(10)

	lines := []struct {
		label  string
		amount float64
	}{
		{"Base Salary", view.SalaryInfo.BaseSalary},
		{"Bonus", view.SalaryInfo.Bonus},
		{"Gross Salary", view.SalaryInfo.GrossSalary},
		{"Deductions", view.SalaryInfo.Deductions},
	}
	for _, l := range lines {
		pdf.CellFormat(60, 8, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, formatAmount(l.amount), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(60, 9, "Net Salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 9, formatAmount(view.SalaryInfo.NetSalary), "T", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Generated at "+view.GeneratedAt)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
