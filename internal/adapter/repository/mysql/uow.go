package mysql

import (
	"context"

	"tokenvest-backend/internal/domain/liquidity"
	"tokenvest-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Requests:  &RequestRepository{db: tx},
			Sequences: &SequenceRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinRequestTx(ctx context.Context, requestID string, fn func(r uow.Repos, req *liquidity.Request) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Requests:  &RequestRepository{db: tx},
			Sequences: &SequenceRepository{db: tx},
		}
		// lock the request row up-front to prevent races
		req, err := r.Requests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		return fn(r, req)
	})
}
