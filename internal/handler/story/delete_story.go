package story

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DeleteStoryRequest 删除故事请求
type DeleteStoryRequest struct {
	StoryID string `uri:"story_id" binding:"required"` // 故事ID（必填）
}

// DeleteStory 删除故事
// @Summary      删除故事
// @Description  从故事库中永久删除故事（不可恢复）
// @Tags         故事
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        story_id  path      string  true  "故事ID"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  ErrorResponse  "请求参数错误"
// @Failure      404       {object}  ErrorResponse  "故事不存在"
// @Failure      500       {object}  ErrorResponse  "服务器内部错误"
// @Router       /api/v1/stories/{story_id} [delete]
func (h *Handler) DeleteStory(c *gin.Context) {
	var req DeleteStoryRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid story_id",
			Detail:  err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	if err := h.storyService.DeleteStory(ctx, req.StoryID); err != nil {
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
		"message": "删除成功",
	})
}
