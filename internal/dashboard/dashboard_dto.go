package dashboard

import "github.com/shopspring/decimal"

type SummaryStatsResponse struct {
	TotalEmployees       int64           `json:"totalEmployees"`
	EmployeeGrowth       float64         `json:"employeeGrowth"`
	TotalDepartments     int64           `json:"totalDepartments"`
	AttendanceRate       float64         `json:"attendanceRate"`
	AverageSalary        decimal.Decimal `json:"averageSalary"`
	AttendanceRateGrowth float64         `json:"attendanceRateGrowth"`
}

type DepartmentSlice struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
	Color string `json:"color"`
}

// palette warna chart distribusi department, dipakai berulang bila department > 15
var palette = []string{
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#06B6D4",
	"#F97316",
	"#84CC16",
	"#EC4899",
	"#6B7280",
	"#14B8A6",
	"#F472B6",
	"#A78BFA",
	"#34D399",
	"#FBBF24",
}

func colorAt(i int) string {
	return palette[i%len(palette)]
}
