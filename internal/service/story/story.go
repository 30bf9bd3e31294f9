package story

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"lullaby/internal/model/story"
	"lullaby/internal/pkg/storytools"
	storyrepo "lullaby/internal/repository/story"
)

var (
	ErrMissingFields      = errors.New("缺少必填字段")
	ErrInvalidGenre       = errors.New("无效的故事题材")
	ErrInvalidRating      = errors.New("评分必须是1到5的整数")
	ErrIdentityMismatch   = errors.New("无权以他人身份操作")
	ErrStoryNotFound      = errors.New("故事不存在")
	ErrImageNotConfigured = errors.New("图片生成服务未配置")
	ErrGenerationFailed   = errors.New("故事生成失败")
	ErrSaveFailed         = errors.New("故事保存失败")
)

// readingTimeMinutes 每个故事的固定阅读时长（分钟）
// 不按字数估算，所有故事统一展示
const readingTimeMinutes = 5

// GenerateInput 故事生成请求参数
// UserID 由调用方声明，service 层会与 context 中的认证身份比对
type GenerateInput struct {
	UserID       string
	Genre        string
	Theme        string
	DailyContext string
	ChildName    string
}

// StoryService 故事服务接口
// 定义 story 模块 service 层提供的能力；除生成外都从 context 取认证用户做归属隔离
type StoryService interface {
	// GenerateStory 生成故事和插图并落库，返回故事ID
	GenerateStory(ctx context.Context, input GenerateInput) (*story.Story, error)

	// GetStory 获取单个故事（仅限本人）
	GetStory(ctx context.Context, storyID string) (*story.Story, error)

	// ListStories 获取当前用户的所有故事（按创建时间倒序）
	ListStories(ctx context.Context) ([]*story.Story, error)

	// RateStory 给故事评分（1-5，覆盖旧评分）
	RateStory(ctx context.Context, storyID string, rating int) error

	// DeleteStory 删除故事（硬删除）
	DeleteStory(ctx context.Context, storyID string) error
}

// storyService 故事服务实现
type storyService struct {
	storyRepo     storyrepo.StoryRepository
	llmProvider   storytools.LLMProvider
	imageProvider storytools.ImageProvider // 为 nil 表示图片服务未配置
	promptBuilder *storytools.StoryPromptBuilder
	parser        *storytools.CompletionParser
}

// NewStoryService 创建故事服务
// imageProvider 可以为 nil（未配置 fal API key 时），此时生成接口直接报错
func NewStoryService(
	storyRepo storyrepo.StoryRepository,
	llmProvider storytools.LLMProvider,
	imageProvider storytools.ImageProvider,
) StoryService {
	return &storyService{
		storyRepo:     storyRepo,
		llmProvider:   llmProvider,
		imageProvider: imageProvider,
		promptBuilder: storytools.NewStoryPromptBuilder(),
		parser:        storytools.NewCompletionParser(),
	}
}

// isNotFound 仓库层"无匹配文档"统一转换为业务错误
func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
