package story

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"lullaby/internal/model/story"
	"lullaby/internal/pkg/ctxutil"
	"lullaby/internal/pkg/id"
	"lullaby/internal/pkg/storytools"
)

// GenerateStory 生成故事和插图并落库
// 流程：校验 → 身份比对 → 配置检查 → 生成正文 → 提取场景 → 逐张生成插图 → 保存
// 插图按场景顺序串行生成，单张失败降级为占位图，不中断整体流程
func (s *storyService) GenerateStory(ctx context.Context, input GenerateInput) (*story.Story, error) {
	// 1. 校验必填字段
	input.UserID = strings.TrimSpace(input.UserID)
	input.Genre = strings.TrimSpace(input.Genre)
	if input.UserID == "" || input.Genre == "" {
		return nil, ErrMissingFields
	}

	genre := story.Genre(input.Genre)
	if !genre.IsValid() {
		return nil, ErrInvalidGenre
	}

	// 2. 声明的 userID 必须与认证身份一致
	authUserID, ok := ctxutil.GetUserID(ctx)
	if !ok || authUserID != input.UserID {
		return nil, ErrIdentityMismatch
	}

	// 3. 图片服务未配置时直接拒绝，不发起任何生成调用
	if s.imageProvider == nil {
		return nil, ErrImageNotConfigured
	}

	// 4. 生成故事正文（温度偏高保证想象力）
	storyPrompt := s.promptBuilder.BuildStoryPrompt(genre, input.Theme, input.DailyContext, input.ChildName)
	completion, err := s.llmProvider.Generate(ctx, storyPrompt, storytools.StoryTemperature)
	if err != nil {
		log.Error().Err(err).Str("genre", string(genre)).Msg("failed to generate story text")
		return nil, ErrGenerationFailed
	}

	text := s.parser.ParseStoryText(completion, genre)
	if !text.TitleParsed || !text.ContentParsed {
		log.Warn().
			Bool("title_parsed", text.TitleParsed).
			Bool("content_parsed", text.ContentParsed).
			Msg("story completion not in expected format, fallback applied")
	}

	// 5. 提取插图场景（温度偏低保证格式稳定）
	protagonist := s.promptBuilder.Protagonist(input.ChildName)
	scenesPrompt := s.promptBuilder.BuildScenesPrompt(text.Content)
	scenesCompletion, err := s.llmProvider.Generate(ctx, scenesPrompt, storytools.ScenesTemperature)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate scene descriptions")
		return nil, ErrGenerationFailed
	}

	sceneSet := s.parser.ExtractScenes(scenesCompletion, protagonist, genre)
	if sceneSet.FallbackUsed {
		log.Warn().Msg("no scenes parsed from completion, fallback scenes used")
	}

	// 6. 逐张生成插图
	illustrations := make([]story.Illustration, 0, len(sceneSet.Scenes))
	for i, scene := range sceneSet.Scenes {
		imageURL := s.generateIllustration(ctx, scene, i)
		illustrations = append(illustrations, story.Illustration{
			URL:   imageURL,
			Scene: scene,
		})
	}

	// 7. 保存故事
	st := &story.Story{
		ID:            id.New(),
		UserID:        input.UserID,
		Title:         text.Title,
		Genre:         genre,
		Theme:         input.Theme,
		Context:       input.DailyContext,
		ChildName:     input.ChildName,
		Content:       text.Content,
		Illustrations: illustrations,
		ReadingTime:   readingTimeMinutes,
	}

	if err := s.storyRepo.Create(ctx, st); err != nil {
		log.Error().Err(err).Str("story_id", st.ID).Msg("failed to save story")
		return nil, ErrSaveFailed
	}

	log.Info().
		Str("story_id", st.ID).
		Str("user_id", st.UserID).
		Str("genre", string(genre)).
		Int("illustrations", len(illustrations)).
		Msg("story generated")

	return st, nil
}

// generateIllustration 生成单张插图，失败时返回场景占位图
// 图片服务自身返回占位地址时同样视为失败降级
func (s *storyService) generateIllustration(ctx context.Context, scene string, index int) string {
	prompt := s.promptBuilder.BuildIllustrationPrompt(scene)

	imageURL, err := s.imageProvider.GenerateImage(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Int("scene_index", index).Msg("failed to generate illustration, using placeholder")
		return storytools.PlaceholderURL(scene)
	}
	if imageURL == "" || storytools.IsPlaceholder(imageURL) {
		log.Warn().Int("scene_index", index).Msg("image provider returned placeholder or empty url")
		return storytools.PlaceholderURL(scene)
	}

	return imageURL
}
