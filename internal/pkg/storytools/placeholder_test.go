package storytools

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPlaceholder(t *testing.T) {
	Convey("占位图链接测试", t, func() {
		Convey("场景描述编码进查询参数", func() {
			url := PlaceholderURL("a fox & an owl")
			So(url, ShouldStartWith, "/placeholder.svg?height=400&width=600&query=")
			So(url, ShouldContainSubstring, "a+fox+%26+an+owl")
		})

		Convey("占位图链接能被识别", func() {
			So(IsPlaceholder(PlaceholderURL("any scene")), ShouldBeTrue)
		})

		Convey("图片服务返回的占位链接同样被识别", func() {
			So(IsPlaceholder("https://cdn.example.com/placeholder/123.png"), ShouldBeTrue)
		})

		Convey("真实图片链接不会误判", func() {
			So(IsPlaceholder("https://fal.media/files/abc/output.png"), ShouldBeFalse)
			So(IsPlaceholder(""), ShouldBeFalse)
		})
	})
}
