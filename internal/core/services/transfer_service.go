package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moneykeeper/ledger_backend/internal/apperrors"
	"github.com/moneykeeper/ledger_backend/internal/core/domain"
	portsrepo "github.com/moneykeeper/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/moneykeeper/ledger_backend/internal/core/ports/services"
	"github.com/moneykeeper/ledger_backend/internal/dto"
	"github.com/moneykeeper/ledger_backend/internal/validation"
)

// TransferService moves value between two accounts as a twin
// transaction pair and commits each leg independently.
type TransferService struct {
	accountRepo portsrepo.AccountRepository
}

// NewTransferService creates a new TransferService.
func NewTransferService(accountRepo portsrepo.AccountRepository) *TransferService {
	return &TransferService{accountRepo: accountRepo}
}

var _ portssvc.TransferService = (*TransferService)(nil)

// Transfer builds the matched pair of opposite-signed transactions and
// appends one leg to each account, each under its own commit. The two
// commits are not atomic: a failure after the first leaves the ledger
// unbalanced until the caller retries the transfer whole. Both stored
// legs are deduplicated by uuid on retry, so replay never duplicates
// the leg that already succeeded.
func (s *TransferService) Transfer(ctx context.Context, req dto.CreateTransferRequest) (domain.Transaction, domain.Transaction, error) {
	var none domain.Transaction

	if req.SourceID == req.TargetID {
		return none, none, apperrors.NewValidationError("targetID", "source and target accounts must differ")
	}
	if verr := validation.ValidateAll(validation.TransactionSchema, map[string]any{
		"value":    req.Value,
		"reason":   req.Reason,
		"category": req.Category,
	}); verr != nil {
		return none, none, verr
	}

	source, err := s.accountRepo.FindAccountByID(ctx, req.SourceID, false)
	if err != nil {
		return none, none, fmt.Errorf("failed to load source account %d: %w", req.SourceID, err)
	}
	target, err := s.accountRepo.FindAccountByID(ctx, req.TargetID, false)
	if err != nil {
		return none, none, fmt.Errorf("failed to load target account %d: %w", req.TargetID, err)
	}

	// Only the fresh legs get appended; stored history stays put.
	source.Transactions = nil
	target.Transactions = nil

	opts := domain.TransferOptions{
		Currency: req.Currency,
		Reason:   req.Reason,
		Category: req.Category,
	}
	if req.Timing != nil {
		opts.Timing = *req.Timing
	} else {
		opts.Timing = time.Now()
	}

	debit, credit := domain.Transfer(source, target, req.Value, opts)

	if err := s.accountRepo.AppendTransactions(ctx, *source); err != nil {
		return none, none, fmt.Errorf("failed to commit debit leg for account %d: %w", source.ID, err)
	}
	if err := s.accountRepo.AppendTransactions(ctx, *target); err != nil {
		slog.WarnContext(ctx, "Transfer committed only its debit leg; retry the transfer to converge",
			slog.Int64("source_id", source.ID),
			slog.Int64("target_id", target.ID),
			slog.String("uuid", debit.UUID.String()),
			slog.String("error", err.Error()),
		)
		// The uuid names the pair whose debit leg is already durable, so
		// the caller can target it when converging by hand instead of
		// retrying the transfer whole.
		return none, none, fmt.Errorf("failed to commit credit leg for account %d (transfer %s): %w", target.ID, debit.UUID, err)
	}

	return debit, credit, nil
}
