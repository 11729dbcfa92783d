package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/peopledesk/hr-backend-go/internal/domain/payroll"
	"github.com/peopledesk/hr-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.pay_period_start, p.pay_period_end, p.payment_date,
	p.basic_salary, p.house_rent_allowance, p.transport_allowance, p.medical_allowance, p.other_allowances,
	p.overtime_hours, p.overtime_pay, p.working_days, p.present_days, p.absent_days, p.leaves_taken,
	p.gross_salary, p.net_salary, p.currency, p.status, p.payment_method,
	p.bank_code, p.bank_account_number, p.bank_reference, p.notes, p.processed_by,
	p.created_at, p.updated_at, e.name`

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PayPeriodStart, &rec.PayPeriodEnd, &rec.PaymentDate,
		&rec.BasicSalary, &rec.HouseRentAllowance, &rec.TransportAllowance, &rec.MedicalAllowance, &rec.OtherAllowances,
		&rec.OvertimeHours, &rec.OvertimePay, &rec.WorkingDays, &rec.PresentDays, &rec.AbsentDays, &rec.LeavesTaken,
		&rec.GrossSalary, &rec.NetSalary, &rec.Currency, &rec.Status, &rec.PaymentMethod,
		&rec.BankCode, &rec.BankAccountNumber, &rec.BankReference, &rec.Notes, &rec.ProcessedBy,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
	)
	return rec, err
}

// ========== RECORDS ==========

// CreateRecord implements payroll.Repository.
func (r *payrollRepository) CreateRecord(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	// One record per employee per period.
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM payroll_records
			WHERE employee_id = $1 AND pay_period_start = $2 AND pay_period_end = $3 AND status != 'cancelled'
		)
	`, rec.EmployeeID, rec.PayPeriodStart, rec.PayPeriodEnd).Scan(&exists)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to check payroll period: %w", err)
	}
	if exists {
		return payroll.Record{}, payroll.ErrPayrollAlreadyExists
	}

	rec.ID = uuid.New().String()

	query := `
		INSERT INTO payroll_records (
			id, employee_id, pay_period_start, pay_period_end, payment_date,
			basic_salary, house_rent_allowance, transport_allowance, medical_allowance, other_allowances,
			overtime_hours, overtime_pay, working_days, present_days, absent_days, leaves_taken,
			gross_salary, net_salary, currency, status, payment_method,
			bank_code, bank_account_number, notes, processed_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.PayPeriodStart, rec.PayPeriodEnd, rec.PaymentDate,
		rec.BasicSalary, rec.HouseRentAllowance, rec.TransportAllowance, rec.MedicalAllowance, rec.OtherAllowances,
		rec.OvertimeHours, rec.OvertimePay, rec.WorkingDays, rec.PresentDays, rec.AbsentDays, rec.LeavesTaken,
		rec.GrossSalary, rec.NetSalary, rec.Currency, rec.Status, rec.PaymentMethod,
		rec.BankCode, rec.BankAccountNumber, rec.Notes, rec.ProcessedBy,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

// GetRecordByID implements payroll.Repository.
func (r *payrollRepository) GetRecordByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`, payrollColumns)

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// ListRecords implements payroll.Repository.
func (r *payrollRepository) ListRecords(ctx context.Context, filter payroll.Filter) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Month != nil {
		where += fmt.Sprintf(" AND EXTRACT(MONTH FROM p.pay_period_start) = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND EXTRACT(YEAR FROM p.pay_period_start) = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM payroll_records p %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		%s
		ORDER BY p.pay_period_start DESC, e.name ASC
		LIMIT $%d OFFSET $%d
	`, payrollColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, total, nil
}

// UpdateRecord implements payroll.Repository.
func (r *payrollRepository) UpdateRecord(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET employee_id = $2, pay_period_start = $3, pay_period_end = $4, payment_date = $5,
		    basic_salary = $6, house_rent_allowance = $7, transport_allowance = $8,
		    medical_allowance = $9, other_allowances = $10, overtime_hours = $11, overtime_pay = $12,
		    working_days = $13, present_days = $14, absent_days = $15, leaves_taken = $16,
		    gross_salary = $17, net_salary = $18, currency = $19, payment_method = $20,
		    bank_code = $21, bank_account_number = $22, notes = $23, updated_at = NOW()
		WHERE id = $1
		RETURNING status, bank_reference, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.PayPeriodStart, rec.PayPeriodEnd, rec.PaymentDate,
		rec.BasicSalary, rec.HouseRentAllowance, rec.TransportAllowance,
		rec.MedicalAllowance, rec.OtherAllowances, rec.OvertimeHours, rec.OvertimePay,
		rec.WorkingDays, rec.PresentDays, rec.AbsentDays, rec.LeavesTaken,
		rec.GrossSalary, rec.NetSalary, rec.Currency, rec.PaymentMethod,
		rec.BankCode, rec.BankAccountNumber, rec.Notes,
	).Scan(&rec.Status, &rec.BankReference, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return rec, nil
}

// UpdateStatus implements payroll.Repository.
func (r *payrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.Status, processedBy *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $2,
		    processed_by = COALESCE($3, processed_by),
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, processedBy)
	if err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

// UpdateNetSalary implements payroll.Repository.
func (r *payrollRepository) UpdateNetSalary(ctx context.Context, id string, net decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE payroll_records SET net_salary = $2, updated_at = NOW() WHERE id = $1`, id, net)
	if err != nil {
		return fmt.Errorf("failed to update net salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

// DeleteRecord implements payroll.Repository.
func (r *payrollRepository) DeleteRecord(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Deductions and bonuses cascade via FK.
	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

// ========== DEDUCTIONS ==========

// AddDeduction implements payroll.Repository.
func (r *payrollRepository) AddDeduction(ctx context.Context, deduction payroll.Deduction) (payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	deduction.ID = uuid.New().String()

	query := `
		INSERT INTO payroll_deductions (id, payroll_id, deduction_type, description, amount, percentage, is_recurring)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		deduction.ID, deduction.PayrollID, deduction.Type, deduction.Description,
		deduction.Amount, deduction.Percentage, deduction.IsRecurring,
	).Scan(&deduction.CreatedAt)

	if err != nil {
		return payroll.Deduction{}, fmt.Errorf("failed to add deduction: %w", err)
	}

	return deduction, nil
}

// GetDeductionByID implements payroll.Repository.
func (r *payrollRepository) GetDeductionByID(ctx context.Context, id string) (payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_id, deduction_type, description, amount, percentage, is_recurring, created_at
		FROM payroll_deductions
		WHERE id = $1
	`

	var d payroll.Deduction
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.PayrollID, &d.Type, &d.Description, &d.Amount, &d.Percentage, &d.IsRecurring, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Deduction{}, payroll.ErrDeductionNotFound
		}
		return payroll.Deduction{}, fmt.Errorf("failed to get deduction: %w", err)
	}

	return d, nil
}

// DeleteDeduction implements payroll.Repository.
func (r *payrollRepository) DeleteDeduction(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_deductions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrDeductionNotFound
	}

	return nil
}

// GetDeductionsByPayrollID implements payroll.Repository.
func (r *payrollRepository) GetDeductionsByPayrollID(ctx context.Context, payrollID string) ([]payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_id, deduction_type, description, amount, percentage, is_recurring, created_at
		FROM payroll_deductions
		WHERE payroll_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	var deductions []payroll.Deduction
	for rows.Next() {
		var d payroll.Deduction
		if err := rows.Scan(&d.ID, &d.PayrollID, &d.Type, &d.Description, &d.Amount, &d.Percentage, &d.IsRecurring, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions = append(deductions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deductions: %w", err)
	}

	return deductions, nil
}

// ========== BONUSES ==========

// AddBonus implements payroll.Repository.
func (r *payrollRepository) AddBonus(ctx context.Context, bonus payroll.Bonus) (payroll.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	bonus.ID = uuid.New().String()

	query := `
		INSERT INTO payroll_bonuses (id, payroll_id, bonus_type, description, amount, is_recurring)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		bonus.ID, bonus.PayrollID, bonus.Type, bonus.Description, bonus.Amount, bonus.IsRecurring,
	).Scan(&bonus.CreatedAt)

	if err != nil {
		return payroll.Bonus{}, fmt.Errorf("failed to add bonus: %w", err)
	}

	return bonus, nil
}

// GetBonusByID implements payroll.Repository.
func (r *payrollRepository) GetBonusByID(ctx context.Context, id string) (payroll.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_id, bonus_type, description, amount, is_recurring, created_at
		FROM payroll_bonuses
		WHERE id = $1
	`

	var b payroll.Bonus
	err := q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.PayrollID, &b.Type, &b.Description, &b.Amount, &b.IsRecurring, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Bonus{}, payroll.ErrBonusNotFound
		}
		return payroll.Bonus{}, fmt.Errorf("failed to get bonus: %w", err)
	}

	return b, nil
}

// DeleteBonus implements payroll.Repository.
func (r *payrollRepository) DeleteBonus(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_bonuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bonus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrBonusNotFound
	}

	return nil
}

// GetBonusesByPayrollID implements payroll.Repository.
func (r *payrollRepository) GetBonusesByPayrollID(ctx context.Context, payrollID string) ([]payroll.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_id, bonus_type, description, amount, is_recurring, created_at
		FROM payroll_bonuses
		WHERE payroll_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	defer rows.Close()

	var bonuses []payroll.Bonus
	for rows.Next() {
		var b payroll.Bonus
		if err := rows.Scan(&b.ID, &b.PayrollID, &b.Type, &b.Description, &b.Amount, &b.IsRecurring, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bonus: %w", err)
		}
		bonuses = append(bonuses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bonuses: %w", err)
	}

	return bonuses, nil
}
