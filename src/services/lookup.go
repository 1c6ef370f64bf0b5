package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// findByID loads one row by primary key, mapping a miss to ErrNotFound.
func findByID[T any](ctx context.Context, db *gorm.DB, id int, preloads ...string) (*T, error) {
	var record T
	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &record, nil
}

// exists reports whether a row of model with the given id is present.
func exists(ctx context.Context, db *gorm.DB, model any, id int) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// countChildren counts the rows of model whose column references parentID.
func countChildren(ctx context.Context, db *gorm.DB, model any, column string, parentID int) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where(column+" = ?", parentID).Count(&count).Error
	return count, err
}

// deleteUnlessReferenced deletes record (identified by id) inside a
// transaction, refusing with ErrHasDependents while rows of child still point
// at it through column. A foreign key violation from a child inserted
// concurrently is reported as ErrHasDependents too.
func deleteUnlessReferenced(ctx context.Context, db *gorm.DB, record any, id int, child any, column, what, children string) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := countChildren(ctx, tx, child, column, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %s %d has %d %s", ErrHasDependents, what, id, count, children)
		}
		return tx.Delete(record).Error
	})
	return referencedError(err, what, id)
}

func referencedError(err error, what string, id int) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %s %d is still referenced: %w", ErrHasDependents, what, id, err)
	}
	return err
}

func auditUpdates(updates map[string]any, actorID int) map[string]any {
	if actorID > 0 {
		updates["updated_by"] = actorID
	}
	return updates
}
