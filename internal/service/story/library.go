package story

import (
	"context"

	"github.com/rs/zerolog/log"

	"lullaby/internal/model/story"
	"lullaby/internal/pkg/ctxutil"
)

// GetStory 获取单个故事
// 查询按认证用户隔离：别人的故事和不存在的故事一律返回 ErrStoryNotFound
func (s *storyService) GetStory(ctx context.Context, storyID string) (*story.Story, error) {
	userID, ok := ctxutil.GetUserID(ctx)
	if !ok {
		return nil, ErrIdentityMismatch
	}

	st, err := s.storyRepo.FindByID(ctx, storyID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrStoryNotFound
		}
		log.Error().Err(err).Str("story_id", storyID).Msg("failed to find story")
		return nil, err
	}
	return st, nil
}

// ListStories 获取当前用户的所有故事（按创建时间倒序）
func (s *storyService) ListStories(ctx context.Context) ([]*story.Story, error) {
	userID, ok := ctxutil.GetUserID(ctx)
	if !ok {
		return nil, ErrIdentityMismatch
	}

	stories, err := s.storyRepo.FindByUserID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to list stories")
		return nil, err
	}
	return stories, nil
}

// DeleteStory 删除故事（硬删除，不可恢复）
func (s *storyService) DeleteStory(ctx context.Context, storyID string) error {
	userID, ok := ctxutil.GetUserID(ctx)
	if !ok {
		return ErrIdentityMismatch
	}

	if err := s.storyRepo.Delete(ctx, storyID, userID); err != nil {
		if isNotFound(err) {
			return ErrStoryNotFound
		}
		log.Error().Err(err).Str("story_id", storyID).Msg("failed to delete story")
		return err
	}

	log.Info().Str("story_id", storyID).Str("user_id", userID).Msg("story deleted")
	return nil
}
