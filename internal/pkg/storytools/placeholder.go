package storytools

import (
	"fmt"
	"net/url"
	"strings"
)

// placeholderMarker 占位图判定子串
// 既用于识别我们自己生成的占位图，也用于识别图片服务按它自己的
// 占位约定返回的链接——两种情况按同一方式兜底，刻意不做区分
const placeholderMarker = "placeholder"

// PlaceholderURL 构建占位图链接
// 把场景描述编码进查询参数，前端据此渲染带文字的占位图
func PlaceholderURL(scene string) string {
	return fmt.Sprintf("/placeholder.svg?height=400&width=600&query=%s", url.QueryEscape(scene))
}

// IsPlaceholder 判断链接是否为占位图
func IsPlaceholder(imageURL string) bool {
	return strings.Contains(imageURL, placeholderMarker)
}
