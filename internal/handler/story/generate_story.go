package story

import (
	"net/http"

	"github.com/gin-gonic/gin"

	storysvc "lullaby/internal/service/story"
)

// GenerateStoryRequest 生成故事请求
type GenerateStoryRequest struct {
	UserID       string `json:"user_id" binding:"required"` // 用户ID（必填，须与登录身份一致）
	Genre        string `json:"genre" binding:"required"`   // 题材（必填）：fantasy/sci-fi/animals/superheroes/calming
	Theme        string `json:"theme,omitempty"`            // 教育主题（可选）
	DailyContext string `json:"daily_context,omitempty"`    // 孩子当天的经历（可选）
	ChildName    string `json:"child_name,omitempty"`       // 孩子的名字（可选，默认通用主角）
}

// GenerateStoryResponseData 生成故事响应数据
type GenerateStoryResponseData struct {
	Story StoryInfo `json:"story"` // 生成并保存的完整故事
}

// GenerateStory 生成故事
// @Summary      生成故事
// @Description  根据题材和个性化参数生成睡前故事及配套插图，并保存到故事库
// @Tags         故事
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      GenerateStoryRequest  true  "生成故事请求"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse  "请求参数错误"
// @Failure      401      {object}  ErrorResponse  "身份不匹配"
// @Failure      500      {object}  ErrorResponse  "生成失败或图片服务未配置"
// @Router       /api/v1/stories [post]
func (h *Handler) GenerateStory(c *gin.Context) {
	var req GenerateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	st, err := h.storyService.GenerateStory(ctx, storysvc.GenerateInput{
		UserID:       req.UserID,
		Genre:        req.Genre,
		Theme:        req.Theme,
		DailyContext: req.DailyContext,
		ChildName:    req.ChildName,
	})
	if err != nil {
		code := http.StatusInternalServerError
		errorCode := 50001

		// 根据错误类型设置错误码
		switch err.Error() {
		case "缺少必填字段":
			code = http.StatusBadRequest
			errorCode = 40001
		case "无效的故事题材":
			code = http.StatusBadRequest
			errorCode = 40002
		case "无权以他人身份操作":
			code = http.StatusUnauthorized
			errorCode = 40103
		case "图片生成服务未配置":
			errorCode = 50002
		}

		c.JSON(code, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "故事生成成功",
		"data": GenerateStoryResponseData{
			Story: toStoryInfo(st),
		},
	})
}
