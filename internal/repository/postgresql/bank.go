package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peopledesk/hr-backend-go/internal/domain/master"
	"github.com/peopledesk/hr-backend-go/internal/pkg/database"
)

type bankRepository struct {
	db *database.DB
}

func NewBankRepository(db *database.DB) master.BankRepository {
	return &bankRepository{db: db}
}

// ListBanks implements master.BankRepository.
func (r *bankRepository) ListBanks(ctx context.Context) ([]master.Bank, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT code, name FROM banks ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	defer rows.Close()

	var banks []master.Bank
	for rows.Next() {
		var bank master.Bank
		if err := rows.Scan(&bank.Code, &bank.Name); err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		banks = append(banks, bank)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate banks: %w", err)
	}

	return banks, nil
}

// GetBankByCode implements master.BankRepository.
func (r *bankRepository) GetBankByCode(ctx context.Context, code string) (master.Bank, error) {
	q := GetQuerier(ctx, r.db)

	var bank master.Bank
	err := q.QueryRow(ctx, `SELECT code, name FROM banks WHERE code = $1`, code).Scan(&bank.Code, &bank.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Bank{}, master.ErrBankNotFound
		}
		return master.Bank{}, fmt.Errorf("failed to get bank: %w", err)
	}

	return bank, nil
}
