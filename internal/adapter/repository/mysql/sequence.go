package mysql

import (
	"context"
	"errors"

	liqDomain "tokenvest-backend/internal/domain/liquidity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SequenceRepository struct{ db *gorm.DB }

func NewSequenceRepository(db *gorm.DB) *SequenceRepository { return &SequenceRepository{db: db} }

// Next claims the next request number for year. The year row is locked for
// the enclosing transaction so two concurrent creates cannot be handed the
// same number; the row is created lazily on a year's first request.
func (r *SequenceRepository) Next(ctx context.Context, year int) (uint64, error) {
	var seq liqDomain.Sequence
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("year = ?", year).
		First(&seq)
	switch {
	case errors.Is(res.Error, gorm.ErrRecordNotFound):
		seq = liqDomain.Sequence{Year: year, LastNumber: 1}
		if err := r.db.WithContext(ctx).Create(&seq).Error; err != nil {
			return 0, err
		}
		return 1, nil
	case res.Error != nil:
		return 0, res.Error
	}

	seq.LastNumber++
	if err := r.db.WithContext(ctx).Save(&seq).Error; err != nil {
		return 0, err
	}
	return seq.LastNumber, nil
}
