package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/gen/ent"
	"github.com/nota-music/nota-pipeline/gen/ent/category"
	"github.com/nota-music/nota-pipeline/internal/common"
)

// CategoryRepository manages the score tag taxonomy.
type CategoryRepository interface {
	Ensure(ctx context.Context, name string) (*ent.Category, error)
	List(ctx context.Context) ([]*ent.Category, error)
	ResolveIDs(ctx context.Context, names []string) ([]uuid.UUID, error)
}

type categoryRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewCategoryRepository(entc *ent.Client, log *slog.Logger) CategoryRepository {
	if log == nil {
		log = slog.Default()
	}
	return &categoryRepo{ent: entc, log: log}
}

// Ensure returns the category named name, creating it on first use.
func (r *categoryRepo) Ensure(ctx context.Context, name string) (*ent.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrInvalidInput
	}
	row, err := r.ent.Category.
		Query().
		Where(category.Name(name)).
		Only(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, common.WrapError(err, "query category")
	}
	row, err = r.ent.Category.Create().SetName(name).Save(ctx)
	if err != nil {
		// lost a create race; read the winner
		if ent.IsConstraintError(err) {
			return r.ent.Category.Query().Where(category.Name(name)).Only(ctx)
		}
		return nil, common.WrapError(err, "create category")
	}
	r.log.Info("category created", "category_id", row.ID, "name", name)
	return row, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]*ent.Category, error) {
	rows, err := r.ent.Category.
		Query().
		Order(ent.Asc(category.FieldName)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list categories")
	}
	return rows, nil
}

// ResolveIDs maps category names to ids, creating missing ones.
func (r *categoryRepo) ResolveIDs(ctx context.Context, names []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		row, err := r.Ensure(ctx, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, row.ID)
	}
	return ids, nil
}
