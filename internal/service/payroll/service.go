package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/peopledesk/hr-backend-go/internal/domain/employee"
	"github.com/peopledesk/hr-backend-go/internal/domain/payroll"
	"github.com/peopledesk/hr-backend-go/internal/pkg/database"
	"github.com/peopledesk/hr-backend-go/internal/pkg/money"
	"github.com/peopledesk/hr-backend-go/internal/pkg/payslip"
	"github.com/peopledesk/hr-backend-go/internal/repository/postgresql"
)

type ServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.Repository
	employeeRepo employee.Repository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.Repository,
	employeeRepo employee.Repository,
) payroll.Service {
	return &ServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

// ========== RECORDS ==========

func (s *ServiceImpl) Create(ctx context.Context, req payroll.CreateRecordRequest) (payroll.RecordResponse, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.RecordResponse{}, err
	}

	record, err := recordFromRequest(req)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	record.Status = payroll.StatusDraft

	created, err := s.payrollRepo.CreateRecord(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return mapRecord(created)
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (payroll.RecordDetailResponse, error) {
	record, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.RecordDetailResponse{}, err
	}

	deductions, err := s.payrollRepo.GetDeductionsByPayrollID(ctx, id)
	if err != nil {
		return payroll.RecordDetailResponse{}, err
	}
	bonuses, err := s.payrollRepo.GetBonusesByPayrollID(ctx, id)
	if err != nil {
		return payroll.RecordDetailResponse{}, err
	}

	return mapRecordDetail(record, deductions, bonuses)
}

func (s *ServiceImpl) List(ctx context.Context, filter payroll.Filter) (payroll.ListRecordsResponse, error) {
	records, totalCount, err := s.payrollRepo.ListRecords(ctx, filter)
	if err != nil {
		return payroll.ListRecordsResponse{}, err
	}

	data := make([]payroll.RecordResponse, 0, len(records))
	for _, record := range records {
		mapped, err := mapRecord(record)
		if err != nil {
			return payroll.ListRecordsResponse{}, err
		}
		data = append(data, mapped)
	}

	return payroll.ListRecordsResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *ServiceImpl) Update(ctx context.Context, req payroll.UpdateRecordRequest) (payroll.RecordResponse, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	existing, err := s.payrollRepo.GetRecordByID(ctx, req.ID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	if existing.Status == payroll.StatusPaid || existing.Status == payroll.StatusCancelled {
		return payroll.RecordResponse{}, payroll.ErrRecordLocked
	}

	record, err := recordFromRequest(req.CreateRecordRequest)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	record.ID = req.ID
	record.Status = existing.Status

	var updated payroll.Record
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err = s.payrollRepo.UpdateRecord(txCtx, record)
		if err != nil {
			return err
		}
		return s.recomputeNet(txCtx, &updated)
	})
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return mapRecord(updated)
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteRecord(ctx, id)
}

// ========== STATUS TRANSITIONS ==========

func (s *ServiceImpl) Process(ctx context.Context, id string, processedBy string) (payroll.RecordResponse, error) {
	return s.transition(ctx, id, payroll.StatusProcessed, &processedBy)
}

func (s *ServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.RecordResponse, error) {
	return s.transition(ctx, id, payroll.StatusPaid, nil)
}

func (s *ServiceImpl) Cancel(ctx context.Context, id string) (payroll.RecordResponse, error) {
	return s.transition(ctx, id, payroll.StatusCancelled, nil)
}

func (s *ServiceImpl) transition(ctx context.Context, id string, next payroll.Status, processedBy *string) (payroll.RecordResponse, error) {
	record, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	if !record.Status.CanTransitionTo(next) {
		return payroll.RecordResponse{}, fmt.Errorf("%w: %s -> %s", payroll.ErrInvalidStatusTransition, record.Status, next)
	}

	if err := s.payrollRepo.UpdateStatus(ctx, id, next, processedBy); err != nil {
		return payroll.RecordResponse{}, err
	}

	record, err = s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return mapRecord(record)
}

// ========== ADJUSTMENT LEDGER ==========

func (s *ServiceImpl) AddDeduction(ctx context.Context, req payroll.AddDeductionRequest) (payroll.RecordDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordDetailResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err := s.payrollRepo.GetRecordByID(txCtx, req.PayrollID)
		if err != nil {
			return err
		}
		if record.Status == payroll.StatusPaid || record.Status == payroll.StatusCancelled {
			return payroll.ErrRecordLocked
		}

		_, err = s.payrollRepo.AddDeduction(txCtx, payroll.Deduction{
			PayrollID:   req.PayrollID,
			Type:        payroll.DeductionType(req.Type),
			Description: req.Description,
			Amount:      req.Amount,
			Percentage:  req.Percentage,
			IsRecurring: req.IsRecurring,
		})
		if err != nil {
			return err
		}
		return s.recomputeNet(txCtx, &record)
	})
	if err != nil {
		return payroll.RecordDetailResponse{}, err
	}

	return s.Get(ctx, req.PayrollID)
}

func (s *ServiceImpl) RemoveDeduction(ctx context.Context, deductionID string) (payroll.RecordDetailResponse, error) {
	deduction, err := s.payrollRepo.GetDeductionByID(ctx, deductionID)
	if err != nil {
		return payroll.RecordDetailResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err := s.payrollRepo.GetRecordByID(txCtx, deduction.PayrollID)
		if err != nil {
			return err
		}
		if err := s.payrollRepo.DeleteDeduction(txCtx, deductionID); err != nil {
			return err
		}
		return s.recomputeNet(txCtx, &record)
	})
	if err != nil {
		return payroll.RecordDetailResponse{}, err
	}

	return s.Get(ctx, deduction.PayrollID)
}

func (s *ServiceImpl) AddBonus(ctx context.Context, req payroll.AddBonusRequest) (payroll.RecordDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordDetailResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err := s.payrollRepo.GetRecordByID(txCtx, req.PayrollID)
		if err != nil {
			return err
		}
		if record.Status == payroll.StatusPaid || record.Status == payroll.StatusCancelled {
			return payroll.ErrRecordLocked
		}

		_, err = s.payrollRepo.AddBonus(txCtx, payroll.Bonus{
			PayrollID:   req.PayrollID,
			Type:        payroll.BonusType(req.Type),
			Description: req.Description,
			Amount:      req.Amount,
			IsRecurring: req.IsRecurring,
		})
		if err != nil {
			return err
		}
		return s.recomputeNet(txCtx, &record)
	})
	if err != nil {
		return payroll.RecordDetailResponse{}, err
	}

	return s.Get(ctx, req.PayrollID)
}

func (s *ServiceImpl) RemoveBonus(ctx context.Context, bonusID string) (payroll.RecordDetailResponse, error) {
	bonus, err := s.payrollRepo.GetBonusByID(ctx, bonusID)
	if err != nil {
		return payroll.RecordDetailResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err := s.payrollRepo.GetRecordByID(txCtx, bonus.PayrollID)
		if err != nil {
			return err
		}
		if err := s.payrollRepo.DeleteBonus(txCtx, bonusID); err != nil {
			return err
		}
		return s.recomputeNet(txCtx, &record)
	})
	if err != nil {
		return payroll.RecordDetailResponse{}, err
	}

	return s.Get(ctx, bonus.PayrollID)
}

// recomputeNet re-derives net salary from the full current adjustment set and
// persists it. Runs inside the caller's transaction.
func (s *ServiceImpl) recomputeNet(ctx context.Context, record *payroll.Record) error {
	deductions, err := s.payrollRepo.GetDeductionsByPayrollID(ctx, record.ID)
	if err != nil {
		return err
	}
	bonuses, err := s.payrollRepo.GetBonusesByPayrollID(ctx, record.ID)
	if err != nil {
		return err
	}

	net := NetSalary(record.GrossSalary, deductions, bonuses)
	record.NetSalary = net
	return s.payrollRepo.UpdateNetSalary(ctx, record.ID, net)
}

// ========== PAYSLIP ==========

func (s *ServiceImpl) Payslip(ctx context.Context, id string) ([]byte, error) {
	detail, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	currency := money.Currency(detail.Currency)
	format := func(amount decimal.Decimal) (string, error) {
		return money.Format(amount, currency)
	}

	basic, err := format(detail.BasicSalary)
	if err != nil {
		return nil, err
	}
	overtime, err := format(detail.OvertimePay)
	if err != nil {
		return nil, err
	}
	totalDeductions, err := format(detail.TotalDeductions)
	if err != nil {
		return nil, err
	}
	totalBonuses, err := format(detail.TotalBonuses)
	if err != nil {
		return nil, err
	}

	allowances := make([]payslip.Line, 0, 4)
	for _, allowance := range []struct {
		label  string
		amount decimal.Decimal
	}{
		{"House rent allowance", detail.HouseRentAllowance},
		{"Transport allowance", detail.TransportAllowance},
		{"Medical allowance", detail.MedicalAllowance},
		{"Other allowances", detail.OtherAllowances},
	} {
		if allowance.amount.IsZero() {
			continue
		}
		formatted, err := format(allowance.amount)
		if err != nil {
			return nil, err
		}
		allowances = append(allowances, payslip.Line{Label: allowance.label, Amount: formatted})
	}

	deductionLines := make([]payslip.Line, 0, len(detail.Deductions))
	for _, deduction := range detail.Deductions {
		formatted, err := format(deduction.Amount)
		if err != nil {
			return nil, err
		}
		label := deduction.Type
		if deduction.Description != nil && *deduction.Description != "" {
			label = *deduction.Description
		}
		deductionLines = append(deductionLines, payslip.Line{Label: label, Amount: formatted})
	}

	bonusLines := make([]payslip.Line, 0, len(detail.Bonuses))
	for _, bonus := range detail.Bonuses {
		formatted, err := format(bonus.Amount)
		if err != nil {
			return nil, err
		}
		label := bonus.Type
		if bonus.Description != nil && *bonus.Description != "" {
			label = *bonus.Description
		}
		bonusLines = append(bonusLines, payslip.Line{Label: label, Amount: formatted})
	}

	return payslip.Render(payslip.Data{
		EmployeeName:    detail.EmployeeName,
		PeriodStart:     detail.PayPeriodStart,
		PeriodEnd:       detail.PayPeriodEnd,
		PaymentDate:     detail.PaymentDate,
		Status:          detail.Status,
		PaymentMethod:   detail.PaymentMethod,
		BasicSalary:     basic,
		Allowances:      allowances,
		OvertimePay:     overtime,
		GrossSalary:     detail.GrossFormatted,
		Deductions:      deductionLines,
		Bonuses:         bonusLines,
		TotalDeductions: totalDeductions,
		TotalBonuses:    totalBonuses,
		NetSalary:       detail.NetFormatted,
	})
}

// ========== HELPERS ==========

func recordFromRequest(req payroll.CreateRecordRequest) (payroll.Record, error) {
	start, err := time.Parse("2006-01-02", req.PayPeriodStart)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("parse pay_period_start: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.PayPeriodEnd)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("parse pay_period_end: %w", err)
	}
	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("parse payment_date: %w", err)
	}

	currency, err := money.ParseCurrency(req.Currency)
	if err != nil {
		return payroll.Record{}, err
	}

	gross := GrossSalary(
		req.BasicSalary,
		req.HouseRentAllowance,
		req.TransportAllowance,
		req.MedicalAllowance,
		req.OtherAllowances,
		req.OvertimePay,
	)

	return payroll.Record{
		EmployeeID:         req.EmployeeID,
		PayPeriodStart:     start,
		PayPeriodEnd:       end,
		PaymentDate:        paymentDate,
		BasicSalary:        req.BasicSalary,
		HouseRentAllowance: req.HouseRentAllowance,
		TransportAllowance: req.TransportAllowance,
		MedicalAllowance:   req.MedicalAllowance,
		OtherAllowances:    req.OtherAllowances,
		OvertimeHours:      req.OvertimeHours,
		OvertimePay:        req.OvertimePay,
		WorkingDays:        *req.WorkingDays,
		PresentDays:        *req.PresentDays,
		AbsentDays:         req.AbsentDays,
		LeavesTaken:        req.LeavesTaken,
		GrossSalary:        gross,
		NetSalary:          gross,
		Currency:           currency,
		PaymentMethod:      payroll.PaymentMethod(req.PaymentMethod),
		BankCode:           req.BankCode,
		BankAccountNumber:  req.BankAccountNumber,
		Notes:              req.Notes,
		ProcessedBy:        req.ProcessedBy,
	}, nil
}

func mapRecord(r payroll.Record) (payroll.RecordResponse, error) {
	grossFormatted, err := money.Format(r.GrossSalary, r.Currency)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	netFormatted, err := money.Format(r.NetSalary, r.Currency)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}

	return payroll.RecordResponse{
		ID:                 r.ID,
		EmployeeID:         r.EmployeeID,
		EmployeeName:       employeeName,
		PayPeriodStart:     r.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:       r.PayPeriodEnd.Format("2006-01-02"),
		PaymentDate:        r.PaymentDate.Format("2006-01-02"),
		BasicSalary:        r.BasicSalary,
		HouseRentAllowance: r.HouseRentAllowance,
		TransportAllowance: r.TransportAllowance,
		MedicalAllowance:   r.MedicalAllowance,
		OtherAllowances:    r.OtherAllowances,
		OvertimeHours:      r.OvertimeHours,
		OvertimePay:        r.OvertimePay,
		WorkingDays:        r.WorkingDays,
		PresentDays:        r.PresentDays,
		AbsentDays:         r.AbsentDays,
		LeavesTaken:        r.LeavesTaken,
		GrossSalary:        r.GrossSalary,
		NetSalary:          r.NetSalary,
		GrossFormatted:     grossFormatted,
		NetFormatted:       netFormatted,
		Currency:           string(r.Currency),
		Status:             string(r.Status),
		PaymentMethod:      string(r.PaymentMethod),
		BankCode:           r.BankCode,
		BankAccountNumber:  r.BankAccountNumber,
		BankReference:      r.BankReference,
		Notes:              r.Notes,
		ProcessedBy:        r.ProcessedBy,
	}, nil
}

func mapRecordDetail(r payroll.Record, deductions []payroll.Deduction, bonuses []payroll.Bonus) (payroll.RecordDetailResponse, error) {
	base, err := mapRecord(r)
	if err != nil {
		return payroll.RecordDetailResponse{}, err
	}

	deductionResponses := make([]payroll.DeductionResponse, 0, len(deductions))
	for _, d := range deductions {
		deductionResponses = append(deductionResponses, payroll.DeductionResponse{
			ID:          d.ID,
			PayrollID:   d.PayrollID,
			Type:        string(d.Type),
			Description: d.Description,
			Amount:      d.Amount,
			Percentage:  d.Percentage,
			IsRecurring: d.IsRecurring,
		})
	}

	bonusResponses := make([]payroll.BonusResponse, 0, len(bonuses))
	for _, b := range bonuses {
		bonusResponses = append(bonusResponses, payroll.BonusResponse{
			ID:          b.ID,
			PayrollID:   b.PayrollID,
			Type:        string(b.Type),
			Description: b.Description,
			Amount:      b.Amount,
			IsRecurring: b.IsRecurring,
		})
	}

	return payroll.RecordDetailResponse{
		RecordResponse:  base,
		Deductions:      deductionResponses,
		Bonuses:         bonusResponses,
		TotalDeductions: TotalDeductions(deductions),
		TotalBonuses:    TotalBonuses(bonuses),
	}, nil
}
