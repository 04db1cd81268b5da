package payrollreport

import (
	"github.com/gaurisankartarasia/emp-2/internal/salary"
	"github.com/gaurisankartarasia/emp-2/internal/shared/money"
)

type GenerateReportRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

type InitiateResponse struct {
	ReportID string `json:"reportId"`
}

type StatusResponse struct {
	Status   string  `json:"status"`
	ErrorLog *string `json:"error_log,omitempty"`
}

type SlipComponentResponse struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

type SalarySlipResponse struct {
	EmployeeID           string                  `json:"employee_id"`
	EmployeeName         string                  `json:"employee_name"`
	Earnings             []SlipComponentResponse `json:"earnings"`
	Deductions           []SlipComponentResponse `json:"deductions"`
	GrossEarnings        string                  `json:"gross_earnings"`
	TotalDeductions      string                  `json:"total_deductions"`
	NetSalary            string                  `json:"net_salary"`
	SalaryStructureError *string                 `json:"salary_structure_error,omitempty"`
}

type ReportResponse struct {
	ID        string               `json:"id"`
	Month     int                  `json:"month"`
	Year      int                  `json:"year"`
	Status    string               `json:"status"`
	ErrorLog  *string              `json:"error_log,omitempty"`
	CreatedAt string               `json:"created_at,omitempty"`
	Slips     []SalarySlipResponse `json:"slips,omitempty"`
}

func mapSlipResponse(slip SalarySlip) SalarySlipResponse {
	earnings := make([]SlipComponentResponse, 0)
	deductions := make([]SlipComponentResponse, 0)
	for _, component := range slip.Components {
		line := SlipComponentResponse{
			Name:   component.Name,
			Type:   component.ComponentType,
			Amount: money.Format(component.Amount),
		}
		if component.ComponentType == salary.TypeDeduction {
			deductions = append(deductions, line)
		} else {
			earnings = append(earnings, line)
		}
	}

	return SalarySlipResponse{
		EmployeeID:           slip.EmployeeID.String(),
		EmployeeName:         slip.EmployeeName,
		Earnings:             earnings,
		Deductions:           deductions,
		GrossEarnings:        money.Format(slip.GrossEarnings),
		TotalDeductions:      money.Format(slip.TotalDeductions),
		NetSalary:            money.Format(slip.NetSalary),
		SalaryStructureError: slip.StructureError,
	}
}

func mapReportResponse(report PayrollReport, withSlips bool) ReportResponse {
	resp := ReportResponse{
		ID:       report.ID.String(),
		Month:    report.Month,
		Year:     report.Year,
		Status:   report.Status,
		ErrorLog: report.ErrorLog,
	}
	if !report.CreatedAt.IsZero() {
		resp.CreatedAt = report.CreatedAt.Format("2006-01-02 15:04:05")
	}

	if withSlips {
		resp.Slips = make([]SalarySlipResponse, len(report.Slips))
		for i, slip := range report.Slips {
			resp.Slips[i] = mapSlipResponse(slip)
		}
	}
	return resp
}
