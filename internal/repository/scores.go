package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/gen/ent"
	"github.com/nota-music/nota-pipeline/gen/ent/score"
	"github.com/nota-music/nota-pipeline/internal/common"
	"github.com/nota-music/nota-pipeline/internal/pipeline"
)

const maxTitleLen = 100

// ScoreRepository persists uploaded scores and their pipeline results.
type ScoreRepository interface {
	pipeline.ScoreStore

	Create(ctx context.Context, title, composer string, year *int, categoryIDs []uuid.UUID) (*ent.Score, error)
	Get(ctx context.Context, id uuid.UUID) (*ent.Score, error)
	List(ctx context.Context, processedOnly bool, limit, offset int) ([]*ent.Score, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type scoreRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewScoreRepository(entc *ent.Client, log *slog.Logger) ScoreRepository {
	if log == nil {
		log = slog.Default()
	}
	return &scoreRepo{ent: entc, log: log}
}

func (r *scoreRepo) Create(ctx context.Context, title, composer string, year *int, categoryIDs []uuid.UUID) (*ent.Score, error) {
	title = clampTitle(title)
	c := r.ent.Score.
		Create().
		SetTitle(title)
	if composer != "" {
		c.SetComposer(composer)
	}
	if year != nil {
		c.SetYear(*year)
	}
	if len(categoryIDs) > 0 {
		c.AddCategoryIDs(categoryIDs...)
	}
	row, err := c.Save(ctx)
	if err != nil {
		r.log.Error("score create failed", "title", title, "err", err)
		return nil, common.WrapError(err, "create score")
	}
	r.log.Info("score created", "score_id", row.ID, "title", title)
	return row, nil
}

func (r *scoreRepo) Get(ctx context.Context, id uuid.UUID) (*ent.Score, error) {
	row, err := r.ent.Score.
		Query().
		Where(score.ID(id)).
		WithCategories().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get score")
	}
	return row, nil
}

func (r *scoreRepo) List(ctx context.Context, processedOnly bool, limit, offset int) ([]*ent.Score, error) {
	q := r.ent.Score.
		Query().
		WithCategories().
		Order(ent.Desc(score.FieldUploadedAt))
	if processedOnly {
		q.Where(score.Processed(true))
	}
	if limit > 0 {
		q.Limit(limit)
	}
	if offset > 0 {
		q.Offset(offset)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list scores")
	}
	return rows, nil
}

func (r *scoreRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.Score.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(err, "delete score")
	}
	r.log.Info("score deleted", "score_id", id)
	return nil
}

func (r *scoreRepo) SaveAnalysis(ctx context.Context, scoreID uuid.UUID, features []byte) error {
	err := r.ent.Score.
		UpdateOneID(scoreID).
		SetResults(json.RawMessage(features)).
		Exec(ctx)
	if err != nil {
		r.log.Error("score analysis save failed", "score_id", scoreID, "err", err)
		return common.WrapError(err, "save analysis")
	}
	return nil
}

func (r *scoreRepo) SaveText(ctx context.Context, scoreID uuid.UUID, title, composer string, lyrics []string) error {
	u := r.ent.Score.UpdateOneID(scoreID)
	// keep user-provided metadata; fill only what is still blank
	row, err := r.ent.Score.Get(ctx, scoreID)
	if err != nil {
		return common.WrapError(err, "get score")
	}
	if title != "" && (row.Title == "" || row.Title == "Untitled") {
		u.SetTitle(clampTitle(title))
	}
	if composer != "" && row.Composer == "Anonymous" {
		u.SetComposer(composer)
	}
	if len(lyrics) > 0 {
		u.SetLyrics(strings.Join(lyrics, "\n"))
	}
	if err := u.Exec(ctx); err != nil {
		r.log.Error("score text save failed", "score_id", scoreID, "err", err)
		return common.WrapError(err, "save text")
	}
	return nil
}

func (r *scoreRepo) SaveSummary(ctx context.Context, scoreID uuid.UUID, summary string) error {
	err := r.ent.Score.
		UpdateOneID(scoreID).
		SetSummary(summary).
		Exec(ctx)
	if err != nil {
		r.log.Error("score summary save failed", "score_id", scoreID, "err", err)
		return common.WrapError(err, "save summary")
	}
	return nil
}

func (r *scoreRepo) MarkProcessed(ctx context.Context, scoreID uuid.UUID) error {
	err := r.ent.Score.
		UpdateOneID(scoreID).
		SetProcessed(true).
		Exec(ctx)
	if err != nil {
		return common.WrapError(err, "mark processed")
	}
	r.log.Info("score processed", "score_id", scoreID)
	return nil
}

func clampTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled"
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen]
	}
	return title
}
