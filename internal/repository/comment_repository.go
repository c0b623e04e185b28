package repository

import (
	"context"

	"gorm.io/gorm"

	"ankaragis/internal/model"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	ListByPlace(ctx context.Context, placeID uint) ([]model.CommentWithAuthor, error)
	Create(ctx context.Context, comment *model.Comment) error
	FindAuthorID(ctx context.Context, id uint) (uint, error)
	UpdateText(ctx context.Context, id uint, text string) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByPlace returns a place's comments joined with the author's username,
// newest first.
func (r *commentRepository) ListByPlace(ctx context.Context, placeID uint) ([]model.CommentWithAuthor, error) {
	var rows []model.CommentWithAuthor
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.comment_text, comments.score, comments.created_at, users.username, comments.user_id").
		Joins("JOIN users ON comments.user_id = users.id").
		Where("comments.place_id = ?", placeID).
		Order("comments.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindAuthorID returns the user id that wrote the comment.
func (r *commentRepository) FindAuthorID(ctx context.Context, id uint) (uint, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).Select("user_id").First(&comment, id).Error; err != nil {
		return 0, err
	}
	return comment.UserID, nil
}

// UpdateText replaces the comment text only; score and place are untouched.
func (r *commentRepository) UpdateText(ctx context.Context, id uint, text string) error {
	return r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		Update("comment_text", text).Error
}

// Delete removes a comment. Deleting a nonexistent id is not an error.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}
