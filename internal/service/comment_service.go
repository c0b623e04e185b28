package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ankaragis/internal/auth"
	apperrors "ankaragis/internal/errors"
	"ankaragis/internal/model"
	"ankaragis/internal/repository"
)

// CommentService handles comment operations. Any authenticated user may
// create; editing is author-only; deletion is privileged-only regardless of
// authorship.
type CommentService interface {
	ListByPlace(ctx context.Context, placeID uint) ([]model.CommentWithAuthor, error)
	Create(ctx context.Context, claims *auth.Claims, placeID uint, text string, score float64) error
	Update(ctx context.Context, claims *auth.Claims, id uint, text string) error
	Delete(ctx context.Context, claims *auth.Claims, id uint) error
}

type commentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

// ListByPlace returns a place's comments, newest first.
func (s *commentService) ListByPlace(ctx context.Context, placeID uint) ([]model.CommentWithAuthor, error) {
	rows, err := s.commentRepo.ListByPlace(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return rows, nil
}

// Create inserts a comment authored by the caller. The place must exist;
// the foreign key rejects orphans at the datastore.
func (s *commentService) Create(ctx context.Context, claims *auth.Claims, placeID uint, text string, score float64) error {
	comment := &model.Comment{
		PlaceID:     placeID,
		UserID:      claims.UserID,
		CommentText: text,
		Score:       score,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// Update replaces the comment text. Only the author may edit, whatever
// their role.
func (s *commentService) Update(ctx context.Context, claims *auth.Claims, id uint, text string) error {
	authorID, err := s.commentRepo.FindAuthorID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("find comment: %w", err)
	}
	if authorID != claims.UserID {
		return apperrors.ErrNotCommentAuthor
	}
	if err := s.commentRepo.UpdateText(ctx, id, text); err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

// Delete removes any comment. Privileged roles only; authorship is not
// checked.
func (s *commentService) Delete(ctx context.Context, claims *auth.Claims, id uint) error {
	if !model.IsPrivileged(claims.Role) {
		return apperrors.ErrInsufficientRole
	}
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
