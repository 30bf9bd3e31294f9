package story

import (
	storysvc "lullaby/internal/service/story"
)

// Handler 故事处理器
// 所有story相关的Handler方法都通过这个结构体访问Service
type Handler struct {
	storyService storysvc.StoryService
}

// NewHandler 创建故事处理器
func NewHandler(storyService storysvc.StoryService) *Handler {
	return &Handler{
		storyService: storyService,
	}
}
