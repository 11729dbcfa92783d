package payroll

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	Get(ctx context.Context, id string) (RecordDetailResponse, error)
	List(ctx context.Context, filter Filter) (ListRecordsResponse, error)
	Update(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)
	Delete(ctx context.Context, id string) error

	Process(ctx context.Context, id string, processedBy string) (RecordResponse, error)
	MarkPaid(ctx context.Context, id string) (RecordResponse, error)
	Cancel(ctx context.Context, id string) (RecordResponse, error)

	AddDeduction(ctx context.Context, req AddDeductionRequest) (RecordDetailResponse, error)
	RemoveDeduction(ctx context.Context, deductionID string) (RecordDetailResponse, error)
	AddBonus(ctx context.Context, req AddBonusRequest) (RecordDetailResponse, error)
	RemoveBonus(ctx context.Context, bonusID string) (RecordDetailResponse, error)

	Payslip(ctx context.Context, id string) ([]byte, error)
}
