package postgres

import (
	"context"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type searchLogRepository struct {
	db *gorm.DB
}

// NewSearchLogRepository returns the append-only search log.
func NewSearchLogRepository(db *gorm.DB) repository.SearchLogRepository {
	return &searchLogRepository{db: db}
}

func (repo *searchLogRepository) Append(ctx context.Context, entry *entity.SearchLogEntry) error {
	row := &model.SearchLogModel{
		ID:        entry.ID,
		Term:      entry.Term,
		Latitude:  entry.Latitude,
		Longitude: entry.Longitude,
		CreatedAt: entry.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append search log")
	}

	entry.CreatedAt = row.CreatedAt

	return nil
}

func (repo *searchLogRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.SearchLogModel{}).Count(&total).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count search logs")
	}

	return total, nil
}

func (repo *searchLogRepository) TopTerms(ctx context.Context, limit int) ([]entity.TermCount, error) {
	var rows []model.TermCountRow
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).
		Model(&model.SearchLogModel{}).
		Select("LOWER(term) AS term, COUNT(*) AS count").
		Group("LOWER(term)").
		Order("count DESC").
		Order("term ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate search terms")
	}

	terms := make([]entity.TermCount, 0, len(rows))
	for _, row := range rows {
		terms = append(terms, entity.TermCount{Term: row.Term, Count: row.Count})
	}

	return terms, nil
}

func (repo *searchLogRepository) Recent(ctx context.Context, limit int) ([]*entity.SearchLogEntry, error) {
	var rows []*model.SearchLogModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list recent searches")
	}

	entries := make([]*entity.SearchLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.SearchLogEntry{
			ID:        row.ID,
			Term:      row.Term,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			CreatedAt: row.CreatedAt,
		})
	}

	return entries, nil
}
