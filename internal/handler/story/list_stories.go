package story

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListStoriesResponseData 故事列表响应数据
type ListStoriesResponseData struct {
	Stories []StoryInfo `json:"stories"` // 故事列表（按创建时间倒序）
	Total   int         `json:"total"`   // 故事总数
}

// ListStories 获取故事列表
// @Summary      获取故事列表
// @Description  获取当前用户的所有故事，按创建时间倒序排列
// @Tags         故事
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse  "未授权"
// @Failure      500  {object}  ErrorResponse  "服务器内部错误"
// @Router       /api/v1/stories [get]
func (h *Handler) ListStories(c *gin.Context) {
	ctx := c.Request.Context()

	stories, err := h.storyService.ListStories(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": ListStoriesResponseData{
			Stories: toStoryInfoList(stories),
			Total:   len(stories),
		},
	})
}
