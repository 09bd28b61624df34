package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/salary"
	"go-payroll/internal/shared/connection"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	period     string
	bonus      string
	deductions string
}

type exportOptions struct {
	period     string
	department string
	format     string
	outDir     string
}

func newSalaryCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Salary record operations",
	}
	cmd.AddCommand(newSalaryGenerateCmd(cfg))
	cmd.AddCommand(newSalaryExportCmd(cfg))
	return cmd
}

// openSalaryService memakai outbox supaya record dari CLI tetap memicu arsip payslip.
func openSalaryService(cfg *config.Config) (salary.Service, func(), error) {
	db, err := connection.ConnectGORMWithRetry(cfg.Postgres)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	svc := salary.NewService(
		sqlDB,
		salary.NewRepository(db),
		employee.NewRepository(db),
		kafka.NewOutboxRepository(sqlDB),
		nil,
	)
	return svc, func() { _ = sqlDB.Close() }, nil
}

func parseAmount(flag, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return &d, nil
}

func newSalaryGenerateCmd(cfg *config.Config) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create salary records for every employee in a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			bonus, err := parseAmount("bonus", opts.bonus)
			if err != nil {
				return err
			}
			deductions, err := parseAmount("deductions", opts.deductions)
			if err != nil {
				return err
			}

			svc, closeDB, err := openSalaryService(cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			req := salary.CalculateRequest{
				SalaryPeriod: opts.period,
				Bonus:        bonus,
				Deductions:   deductions,
			}
			result, err := svc.GenerateForAll(cmd.Context(), req.Input())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"created":              len(result.Created),
				"skipped_employee_ids": result.SkippedEmployeeIDs,
			})
		},
	}

	cmd.Flags().StringVar(&opts.period, "period", "", "Salary period, YYYY-MM (required)")
	cmd.Flags().StringVar(&opts.bonus, "bonus", "", "Bonus applied to every employee")
	cmd.Flags().StringVar(&opts.deductions, "deductions", "", "Deductions applied to every employee")
	_ = cmd.MarkFlagRequired("period")

	return cmd
}

func newSalaryExportCmd(cfg *config.Config) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write salary records to a CSV or XLSX file",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDB, err := openSalaryService(cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			q := salary.ExportQuery{Format: strings.ToLower(strings.TrimSpace(opts.format))}
			if v := strings.TrimSpace(opts.period); v != "" {
				q.SalaryPeriod = &v
			}
			if v := strings.TrimSpace(opts.department); v != "" {
				q.Department = &v
			}

			file, err := svc.Export(cmd.Context(), q)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
				return err
			}
			target := filepath.Join(opts.outDir, file.Filename)
			if err := os.WriteFile(target, file.Body, 0o644); err != nil {
				return err
			}
			cmd.Println(target)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.period, "period", "", "Only records of this period (YYYY-MM)")
	cmd.Flags().StringVar(&opts.department, "department", "", "Only employees of this department")
	cmd.Flags().StringVar(&opts.format, "format", salary.ExportFormatCSV, "csv or xlsx")
	cmd.Flags().StringVar(&opts.outDir, "out", ".", "Output directory")

	return cmd
}
