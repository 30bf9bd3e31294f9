package storytools

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"lullaby/internal/model/story"
)

func TestParseStoryText(t *testing.T) {
	Convey("CompletionParser 标题和正文解析测试", t, func() {
		parser := NewCompletionParser()

		Convey("标准格式：TITLE 和 STORY 标记齐全", func() {
			completion := "TITLE: The Sleepy Dragon\nSTORY: Once upon a time, a little dragon could not sleep."

			result := parser.ParseStoryText(completion, story.GenreFantasy)
			So(result.Title, ShouldEqual, "The Sleepy Dragon")
			So(result.Content, ShouldEqual, "Once upon a time, a little dragon could not sleep.")
			So(result.TitleParsed, ShouldBeTrue)
			So(result.ContentParsed, ShouldBeTrue)
		})

		Convey("标记大小写不敏感", func() {
			completion := "title: Moon Friends\nstory: Two friends watched the moon together."

			result := parser.ParseStoryText(completion, story.GenreCalming)
			So(result.Title, ShouldEqual, "Moon Friends")
			So(result.TitleParsed, ShouldBeTrue)
			So(result.ContentParsed, ShouldBeTrue)
		})

		Convey("标题在 TITLE 标记的下一行", func() {
			completion := "TITLE:\nThe Moonlit Fox\nSTORY: A fox slept under the moon."

			result := parser.ParseStoryText(completion, story.GenreAnimals)
			So(result.Title, ShouldEqual, "The Moonlit Fox")
			So(result.TitleParsed, ShouldBeTrue)
			So(result.Content, ShouldEqual, "A fox slept under the moon.")
		})

		Convey("只有 TITLE 标记且直到文本结束", func() {
			completion := "TITLE: The Lonely Star"

			result := parser.ParseStoryText(completion, story.GenreCalming)
			So(result.Title, ShouldEqual, "The Lonely Star")
			So(result.TitleParsed, ShouldBeTrue)
			// 没有 STORY 标记：正文兜底为原始补全全文
			So(result.ContentParsed, ShouldBeFalse)
		})

		Convey("正文跨多行", func() {
			completion := "TITLE: Star Cat\nSTORY: Line one.\nLine two.\n\nLine three."

			result := parser.ParseStoryText(completion, story.GenreAnimals)
			So(result.Content, ShouldContainSubstring, "Line one.")
			So(result.Content, ShouldContainSubstring, "Line three.")
		})

		Convey("缺少 TITLE 标记：标题兜底为题材冒险", func() {
			completion := "STORY: A story without any title marker in it at all."

			result := parser.ParseStoryText(completion, story.GenreSciFi)
			So(result.Title, ShouldEqual, "A sci-fi Adventure")
			So(result.TitleParsed, ShouldBeFalse)
			So(result.ContentParsed, ShouldBeTrue)
		})

		Convey("缺少 STORY 标记：正文兜底为原始补全全文", func() {
			completion := "  Just a plain story with no markers anywhere.  "

			result := parser.ParseStoryText(completion, story.GenreAnimals)
			So(result.Title, ShouldEqual, "A animals Adventure")
			So(result.Content, ShouldEqual, "Just a plain story with no markers anywhere.")
			So(result.TitleParsed, ShouldBeFalse)
			So(result.ContentParsed, ShouldBeFalse)
		})

		Convey("TITLE 和 STORY 在同一行", func() {
			completion := "TITLE: Brave Robot STORY: A small robot learned to be brave."

			result := parser.ParseStoryText(completion, story.GenreSciFi)
			So(result.Title, ShouldEqual, "Brave Robot")
			So(result.Content, ShouldEqual, "A small robot learned to be brave.")
		})
	})
}

func TestExtractScenes(t *testing.T) {
	Convey("CompletionParser 场景提取测试", t, func() {
		parser := NewCompletionParser()

		Convey("标准格式：5个带编号的场景", func() {
			completion := "SCENE 1: A little fox walking through a moonlit forest full of fireflies.\n" +
				"SCENE 2: The fox meeting a wise old owl perched on a glowing branch.\n" +
				"SCENE 3: The fox and owl sharing berries under a starry night sky.\n" +
				"SCENE 4: The fox bravely crossing a sparkling stream on stepping stones.\n" +
				"SCENE 5: The fox curled up asleep in a cozy den with the owl nearby."

			result := parser.ExtractScenes(completion, "a brave young hero", story.GenreAnimals)
			So(result.FallbackUsed, ShouldBeFalse)
			So(len(result.Scenes), ShouldEqual, 5)
			So(result.Scenes[0], ShouldStartWith, "A little fox")
			So(result.Scenes[4], ShouldStartWith, "The fox curled up")
		})

		Convey("编号可省略，大小写不敏感", func() {
			completion := "scene: The first magical scene with plenty of visual detail.\n" +
				"SCENE: The second magical scene with plenty of visual detail."

			result := parser.ExtractScenes(completion, "Mia", story.GenreFantasy)
			So(result.FallbackUsed, ShouldBeFalse)
			So(len(result.Scenes), ShouldEqual, 2)
		})

		Convey("过短的片段被丢弃", func() {
			completion := "SCENE 1: too short\n" +
				"SCENE 2: This scene is long enough to be kept in the result set."

			result := parser.ExtractScenes(completion, "Mia", story.GenreFantasy)
			So(len(result.Scenes), ShouldEqual, 1)
			So(result.Scenes[0], ShouldStartWith, "This scene is long enough")
		})

		Convey("超过5个场景只保留前5个", func() {
			var sb strings.Builder
			for i := 0; i < 7; i++ {
				sb.WriteString("SCENE: A sufficiently long scene description used for counting purposes.\n")
			}

			result := parser.ExtractScenes(sb.String(), "Mia", story.GenreFantasy)
			So(len(result.Scenes), ShouldEqual, MaxScenes)
		})

		Convey("没有任何场景标记：使用兜底场景", func() {
			result := parser.ExtractScenes("The model rambled without any markers.", "Mia", story.GenreFantasy)
			So(result.FallbackUsed, ShouldBeTrue)
			So(len(result.Scenes), ShouldEqual, 5)
			// 兜底场景按主角和题材参数化
			So(result.Scenes[0], ShouldContainSubstring, "Mia")
			So(result.Scenes[0], ShouldContainSubstring, "fantasy")
		})

		Convey("空补全：使用兜底场景", func() {
			result := parser.ExtractScenes("", "a brave young hero", story.GenreCalming)
			So(result.FallbackUsed, ShouldBeTrue)
			So(len(result.Scenes), ShouldEqual, 5)
		})
	})
}
