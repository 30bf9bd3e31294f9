package story

import (
	"context"

	"github.com/rs/zerolog/log"

	"lullaby/internal/pkg/ctxutil"
)

// RateStory 给故事评分
// 评分范围 1-5；重复评分直接覆盖旧值，不保留历史
func (s *storyService) RateStory(ctx context.Context, storyID string, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	userID, ok := ctxutil.GetUserID(ctx)
	if !ok {
		return ErrIdentityMismatch
	}

	if err := s.storyRepo.UpdateRating(ctx, storyID, userID, rating); err != nil {
		if isNotFound(err) {
			return ErrStoryNotFound
		}
		log.Error().Err(err).Str("story_id", storyID).Msg("failed to update rating")
		return err
	}

	log.Info().Str("story_id", storyID).Int("rating", rating).Msg("story rated")
	return nil
}
