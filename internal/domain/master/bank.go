package master

import "context"

// Bank is a lookup row feeding the bank-transfer dropdown.
type Bank struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type BankRepository interface {
	ListBanks(ctx context.Context) ([]Bank, error)
	GetBankByCode(ctx context.Context, code string) (Bank, error)
}
