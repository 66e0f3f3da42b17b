package service

import (
	"context"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/util"
	"strings"
	"time"
)

type BookmarkStore interface {
	Add(ctx context.Context, b *model.Bookmark) error
	Remove(ctx context.Context, studentID uint, questionID string) error
	ListByStudent(ctx context.Context, studentID uint) ([]model.Bookmark, error)
	Exists(ctx context.Context, studentID uint, questionID string) (bool, error)
}

type DiscussionStore interface {
	Create(ctx context.Context, p *model.DiscussionPost) error
	ListByQuestion(ctx context.Context, questionID string) ([]model.DiscussionPost, error)
}

type BookmarkRequest struct {
	QuestionID   string `json:"questionId" binding:"required"`
	QuestionText string `json:"questionText"`
}

// SocialService covers bookmarks and per-question discussion threads.
type SocialService struct {
	Bookmarks   BookmarkStore
	Discussions DiscussionStore
	Users       UserDirectory
	Bank        QuestionIndex
	now         func() time.Time
}

func NewSocialService(bookmarks BookmarkStore, discussions DiscussionStore, users UserDirectory, bank QuestionIndex) *SocialService {
	return &SocialService{
		Bookmarks:   bookmarks,
		Discussions: discussions,
		Users:       users,
		Bank:        bank,
		now:         time.Now,
	}
}

// AddBookmark is idempotent. Missing question text is filled from the dataset
// when it is available.
func (s *SocialService) AddBookmark(ctx context.Context, studentID uint, req BookmarkRequest) (*model.Bookmark, error) {
	qid := strings.TrimSpace(req.QuestionID)
	if qid == "" {
		return nil, util.Validation("question_id is required")
	}
	text := req.QuestionText
	if text == "" {
		if idx, err := s.Bank.Index(); err == nil {
			text = idx[qid].QuestionText
		}
	}
	b := &model.Bookmark{
		StudentID:    studentID,
		QuestionID:   qid,
		QuestionText: text,
		BookmarkedAt: s.now(),
	}
	if err := s.Bookmarks.Add(ctx, b); err != nil {
		return nil, util.Internal("add bookmark", err)
	}
	return b, nil
}

func (s *SocialService) RemoveBookmark(ctx context.Context, studentID uint, questionID string) error {
	if err := s.Bookmarks.Remove(ctx, studentID, questionID); err != nil {
		return util.Internal("remove bookmark", err)
	}
	return nil
}

func (s *SocialService) ListBookmarks(ctx context.Context, studentID uint) ([]model.Bookmark, error) {
	list, err := s.Bookmarks.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, util.Internal("list bookmarks", err)
	}
	return list, nil
}

func (s *SocialService) IsBookmarked(ctx context.Context, studentID uint, questionID string) (bool, error) {
	ok, err := s.Bookmarks.Exists(ctx, studentID, questionID)
	if err != nil {
		return false, util.Internal("check bookmark", err)
	}
	return ok, nil
}

// AddPost stores a discussion post signed with the author's full name.
func (s *SocialService) AddPost(ctx context.Context, userID uint, questionID, content string) (*model.DiscussionPost, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, util.Validation("content is required")
	}
	if strings.TrimSpace(questionID) == "" {
		return nil, util.Validation("question id is required")
	}
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	p := &model.DiscussionPost{
		QuestionID:  questionID,
		StudentID:   userID,
		StudentName: user.FullName,
		Content:     content,
		PostedAt:    s.now(),
	}
	if err := s.Discussions.Create(ctx, p); err != nil {
		return nil, util.Internal("add discussion post", err)
	}
	return p, nil
}

// ListPosts returns a question's posts, newest first.
func (s *SocialService) ListPosts(ctx context.Context, questionID string) ([]model.DiscussionPost, error) {
	posts, err := s.Discussions.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, util.Internal("list discussion posts", err)
	}
	return posts, nil
}
