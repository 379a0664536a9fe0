package services

import (
	"context"

	"github.com/moneykeeper/ledger_backend/internal/core/domain"
	"github.com/moneykeeper/ledger_backend/internal/dto"
)

// TransferService runs the twin transaction protocol end to end:
// building the matched pair and committing each account's leg
// independently. The two commits are deliberately not atomic; a failed
// transfer is recovered by retrying it whole, which the idempotent
// append makes safe.
type TransferService interface {
	Transfer(ctx context.Context, req dto.CreateTransferRequest) (debit, credit domain.Transaction, err error)
}
