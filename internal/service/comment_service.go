package service

import (
	"context"
	"fmt"

	"Yuyu_Weibo/internal/model"
	"Yuyu_Weibo/internal/repository/mysql"
)

type CommentService struct {
	repo *mysql.CommentRepository
}

func NewCommentService() *CommentService {
	return &CommentService{
		repo: &mysql.CommentRepository{DB: mysql.DB},
	}
}

// Create parentID 传 0 表示一级评论
func (s *CommentService) Create(ctx context.Context, userID, weiboID uint64, content string, parentID uint64) (uint64, error) {
	if userID == 0 || weiboID == 0 {
		return 0, fmt.Errorf("%w: invalid id", ErrInvalidArgument)
	}
	if content == "" {
		return 0, fmt.Errorf("%w: content required", ErrInvalidArgument)
	}

	comment := &model.Comment{
		WeiboID:  weiboID,
		UserID:   userID,
		Content:  content,
		ParentID: parentID,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return 0, err
	}
	return comment.ID, nil
}

func (s *CommentService) Delete(ctx context.Context, userID, commentID uint64) error {
	if userID == 0 || commentID == 0 {
		return fmt.Errorf("%w: invalid id", ErrInvalidArgument)
	}
	return s.repo.DeleteWithOwner(ctx, userID, commentID)
}

func (s *CommentService) ListByWeibo(ctx context.Context, weiboID uint64) ([]mysql.CommentRow, error) {
	if weiboID == 0 {
		return nil, fmt.Errorf("%w: invalid weibo id", ErrInvalidArgument)
	}
	return s.repo.ListByWeibo(ctx, weiboID)
}
