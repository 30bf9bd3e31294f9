package story

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStoryRequest 获取故事请求
type GetStoryRequest struct {
	StoryID string `uri:"story_id" binding:"required"` // 故事ID（必填）
}

// GetStoryResponseData 获取故事响应数据
type GetStoryResponseData struct {
	Story StoryInfo `json:"story"` // 故事信息
}

// GetStory 获取故事详情
// @Summary      获取故事详情
// @Description  根据故事ID获取完整故事（仅限本人的故事）
// @Tags         故事
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        story_id  path      string  true  "故事ID"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  ErrorResponse  "请求参数错误"
// @Failure      404       {object}  ErrorResponse  "故事不存在"
// @Failure      500       {object}  ErrorResponse  "服务器内部错误"
// @Router       /api/v1/stories/{story_id} [get]
func (h *Handler) GetStory(c *gin.Context) {
	var req GetStoryRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid story_id",
			Detail:  err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	st, err := h.storyService.GetStory(ctx, req.StoryID)
	if err != nil {
		code := http.StatusInternalServerError
		errorCode := 50001

		// 根据错误类型设置错误码
		if err.Error() == "故事不存在" {
			code = http.StatusNotFound
			errorCode = 40401
		}

		c.JSON(code, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": GetStoryResponseData{
			Story: toStoryInfo(st),
		},
	})
}
