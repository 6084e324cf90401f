package commands

import (
	"context"
	"log/slog"

	"sales-engine/internal/domain/sale"
	"sales-engine/internal/infra"
	"sales-engine/internal/infra/monitoring"
	"sales-engine/internal/pkg/errs"
	"sales-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=sale.go -destination=../../../tests/mock/commands/sale.go -package=commandsmock

const (
	opSave   = "save"
	opDelete = "delete"
)

var saleRelations = []sale.Relation{
	sale.RelationPurchasable,
	sale.RelationCategory,
	sale.RelationUserGroup,
}

type SaleCommands interface {
	// Save persists s and its three association sets atomically. An empty id
	// list means the sale applies to everything of that kind. It returns
	// false, nil when validation fails; the messages stay on s.
	Save(ctx context.Context, s *sale.Sale, groupIDs, categoryIDs, purchasableIDs []uuid.UUID) (bool, error)
	// DeleteByID returns false, nil when no sale has id.
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type saleCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.SaleEventPublisher
}

func NewSaleCommands(uow shared.UnitOfWork, publisher shared.SaleEventPublisher) SaleCommands {
	return &saleCommandsImpl{uow: uow, publisher: publisher}
}

func (uc *saleCommandsImpl) Save(ctx context.Context, s *sale.Sale, groupIDs, categoryIDs, purchasableIDs []uuid.UUID) (bool, error) {
	isNew := s.ID() == uuid.Nil

	var savedID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Sales()

		if !isNew {
			exists, err := repo.LockByID(ctx, tx.DB(), s.ID())
			if err != nil {
				return err
			}
			if !exists {
				return errs.ErrSaleNotFound
			}
		}

		s.ApplyScope(groupIDs, categoryIDs, purchasableIDs)
		if !s.Validate() {
			return errs.ErrSaleValidationFailed
		}

		saleID := s.ID()
		if isNew {
			id, err := repo.Create(ctx, tx.DB(), s)
			if err != nil {
				return err
			}
			saleID = id
		} else if err := repo.Update(ctx, tx.DB(), s); err != nil {
			return err
		}

		for _, rel := range saleRelations {
			if err := repo.ReplaceAssociations(ctx, tx.DB(), saleID, rel, s.RelationIDs(rel)); err != nil {
				if rel == sale.RelationPurchasable && infra.IsKind(err, infra.KindNotFound) {
					err = errs.Mark(err, errs.ErrPurchasableNotFound)
				}
				return errs.Wrapf(err, "replace %s associations of sale %s", rel, saleID)
			}
		}
		savedID = saleID
		return nil
	})

	switch {
	case err == nil:
	case errs.Is(err, errs.ErrSaleValidationFailed):
		monitoring.RecordSaleMutation(opSave, monitoring.OutcomeInvalid)
		slog.InfoContext(ctx, "sale rejected by validation", "sale_id", s.ID().String(), "errors", s.Errors().Error())
		return false, nil
	case errs.Is(err, errs.ErrSaleNotFound):
		monitoring.RecordSaleMutation(opSave, monitoring.OutcomeNotFound)
		return false, err
	default:
		monitoring.RecordSaleMutation(opSave, monitoring.OutcomeError)
		slog.ErrorContext(ctx, "sale save rolled back", "sale_id", s.ID().String(), "error", err.Error())
		return false, err
	}

	s.AssignID(savedID)
	monitoring.RecordSaleMutation(opSave, monitoring.OutcomeSuccess)
	slog.InfoContext(ctx, "sale saved", "sale_id", savedID.String(), "created", isNew)

	if perr := uc.publisher.SaleSaved(ctx, s, isNew); perr != nil {
		slog.WarnContext(ctx, "failed to publish sale event", "sale_id", savedID.String(), "error", perr.Error())
	}
	return true, nil
}

func (uc *saleCommandsImpl) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Sales().LockByID(ctx, tx.DB(), id)
		if err != nil || !exists {
			return err
		}
		deleted, err = tx.Sales().Delete(ctx, tx.DB(), id)
		return err
	})
	if err != nil {
		monitoring.RecordSaleMutation(opDelete, monitoring.OutcomeError)
		slog.ErrorContext(ctx, "sale delete rolled back", "sale_id", id.String(), "error", err.Error())
		return false, err
	}
	if !deleted {
		monitoring.RecordSaleMutation(opDelete, monitoring.OutcomeNotFound)
		return false, nil
	}

	monitoring.RecordSaleMutation(opDelete, monitoring.OutcomeSuccess)
	slog.InfoContext(ctx, "sale deleted", "sale_id", id.String())

	if perr := uc.publisher.SaleDeleted(ctx, id); perr != nil {
		slog.WarnContext(ctx, "failed to publish sale event", "sale_id", id.String(), "error", perr.Error())
	}
	return true, nil
}
