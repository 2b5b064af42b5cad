package gormstore

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	commentModel "ewm_backend/internals/features/events/comments/model"
	"ewm_backend/internals/repository"
	"ewm_backend/internals/repository/specification"
)

func (s *Store) comments(ctx context.Context) *gorm.DB {
	return s.q(ctx).Model(&commentModel.CommentModel{}).
		Preload("Author").
		Preload("Event").
		Preload("Event.Category").
		Preload("Event.Initiator")
}

func (s *Store) CreateComment(ctx context.Context, c *commentModel.CommentModel) error {
	if err := s.q(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return translate(err)
	}
	return s.reloadComment(ctx, c)
}

func (s *Store) SaveComment(ctx context.Context, c *commentModel.CommentModel) error {
	if err := s.q(ctx).Omit(clause.Associations).Save(c).Error; err != nil {
		return translate(err)
	}
	return s.reloadComment(ctx, c)
}

func (s *Store) reloadComment(ctx context.Context, c *commentModel.CommentModel) error {
	fresh, err := s.FindComment(ctx, c.ID)
	if err != nil {
		return err
	}
	*c = *fresh
	return nil
}

func (s *Store) FindComment(ctx context.Context, id int64) (*commentModel.CommentModel, error) {
	var c commentModel.CommentModel
	if err := s.comments(ctx).Where("comments.id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) FindCommentByAuthor(ctx context.Context, id, authorID int64) (*commentModel.CommentModel, error) {
	var c commentModel.CommentModel
	err := s.comments(ctx).Where("comments.id = ? AND comments.author_id = ?", id, authorID).First(&c).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) FindCommentByEvent(ctx context.Context, id, eventID int64) (*commentModel.CommentModel, error) {
	var c commentModel.CommentModel
	err := s.comments(ctx).Where("comments.id = ? AND comments.event_id = ?", id, eventID).First(&c).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) CommentExistsByAuthor(ctx context.Context, authorID, eventID int64) (bool, error) {
	return exists(s.q(ctx).Model(&commentModel.CommentModel{}).
		Where("author_id = ? AND event_id = ?", authorID, eventID))
}

func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	return deleted(s.q(ctx).Delete(&commentModel.CommentModel{}, id))
}

func (s *Store) ListCommentsByAuthor(ctx context.Context, authorID int64, page repository.Page) ([]commentModel.CommentModel, error) {
	var out []commentModel.CommentModel
	q := s.comments(ctx).Where("comments.author_id = ?", authorID).Order("comments.created ASC, comments.id ASC")
	err := paged(q, page).Find(&out).Error
	return out, translate(err)
}

func (s *Store) ListCommentsByEvent(ctx context.Context, eventID int64) ([]commentModel.CommentModel, error) {
	var out []commentModel.CommentModel
	err := s.comments(ctx).Where("comments.event_id = ?", eventID).
		Order("comments.created ASC, comments.id ASC").
		Find(&out).Error
	return out, translate(err)
}

func (s *Store) SearchComments(ctx context.Context, f repository.CommentFilter, page repository.Page) ([]commentModel.CommentModel, error) {
	var out []commentModel.CommentModel
	q := specification.Comments(f).Apply(s.comments(ctx)).Order("comments.created ASC, comments.id ASC")
	err := paged(q, page).Find(&out).Error
	return out, translate(err)
}

func (s *Store) CountCommentsByEvents(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	out := make(map[int64]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		EventID int64
		Total   int64
	}
	err := s.q(ctx).Model(&commentModel.CommentModel{}).
		Select("event_id, COUNT(*) AS total").
		Where("event_id = ANY(?)", pq.Array(eventIDs)).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	for _, r := range rows {
		out[r.EventID] = r.Total
	}
	return out, nil
}
