package story

import (
	"time"

	"lullaby/internal/model/story"
	httputil "lullaby/internal/pkg/http"
)

// ErrorResponse 错误响应类型别名（使用共用的 http.ErrorResponse）
type ErrorResponse = httputil.ErrorResponse

// IllustrationInfo 插图信息 DTO
type IllustrationInfo struct {
	URL   string `json:"url"`   // 图片地址（远程URL或占位图路径）
	Scene string `json:"scene"` // 对应的场景描述
}

// StoryInfo 故事信息 DTO
type StoryInfo struct {
	ID            string             `json:"id"`                // 故事ID
	UserID        string             `json:"user_id"`           // 用户ID
	Title         string             `json:"title"`             // 标题
	Genre         string             `json:"genre"`             // 题材
	Theme         string             `json:"theme,omitempty"`   // 教育主题（可选）
	Context       string             `json:"context,omitempty"` // 当天经历（可选）
	ChildName     string             `json:"child_name,omitempty"`
	Content       string             `json:"content"`       // 正文
	Illustrations []IllustrationInfo `json:"illustrations"` // 插图列表（按场景顺序）
	ReadingTime   int                `json:"reading_time"`  // 阅读时长（分钟）
	Rating        *int               `json:"rating,omitempty"`
	CreatedAt     string             `json:"created_at"` // 创建时间
	UpdatedAt     string             `json:"updated_at"` // 更新时间
}

// toStoryInfo 将 Story 实体转换为 StoryInfo DTO
func toStoryInfo(st *story.Story) StoryInfo {
	illustrations := make([]IllustrationInfo, len(st.Illustrations))
	for i, ill := range st.Illustrations {
		illustrations[i] = IllustrationInfo{
			URL:   ill.URL,
			Scene: ill.Scene,
		}
	}

	return StoryInfo{
		ID:            st.ID,
		UserID:        st.UserID,
		Title:         st.Title,
		Genre:         string(st.Genre),
		Theme:         st.Theme,
		Context:       st.Context,
		ChildName:     st.ChildName,
		Content:       st.Content,
		Illustrations: illustrations,
		ReadingTime:   st.ReadingTime,
		Rating:        st.Rating,
		CreatedAt:     st.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     st.UpdatedAt.Format(time.RFC3339),
	}
}

// toStoryInfoList 将 Story 实体列表转换为 StoryInfo DTO 列表
func toStoryInfoList(stories []*story.Story) []StoryInfo {
	list := make([]StoryInfo, len(stories))
	for i, st := range stories {
		list[i] = toStoryInfo(st)
	}
	return list
}
