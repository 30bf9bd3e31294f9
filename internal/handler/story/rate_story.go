package story

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RateStoryUriRequest 评分故事URI参数
type RateStoryUriRequest struct {
	StoryID string `uri:"story_id" binding:"required"` // 故事ID（必填）
}

// RateStoryRequest 评分故事请求
type RateStoryRequest struct {
	Rating int `json:"rating" binding:"required"` // 评分（必填，1-5）
}

// RateStory 给故事评分
// @Summary      给故事评分
// @Description  给故事打1-5星评分，重复评分覆盖旧值
// @Tags         故事
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        story_id  path      string            true  "故事ID"
// @Param        request   body      RateStoryRequest  true  "评分请求"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  ErrorResponse  "请求参数错误"
// @Failure      404       {object}  ErrorResponse  "故事不存在"
// @Failure      500       {object}  ErrorResponse  "服务器内部错误"
// @Router       /api/v1/stories/{story_id}/rating [put]
func (h *Handler) RateStory(c *gin.Context) {
	var uriReq RateStoryUriRequest
	if err := c.ShouldBindUri(&uriReq); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid story_id",
			Detail:  err.Error(),
		})
		return
	}

	var req RateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	if err := h.storyService.RateStory(ctx, uriReq.StoryID, req.Rating); err != nil {
		code := http.StatusInternalServerError
		errorCode := 50001

		// 根据错误类型设置错误码
		switch err.Error() {
		case "评分必须是1到5的整数":
			code = http.StatusBadRequest
			errorCode = 40003
		case "故事不存在":
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
		"message": "评分成功",
	})
}
