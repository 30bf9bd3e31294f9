package storytools

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"lullaby/internal/model/story"
)

func TestStoryPromptBuilder(t *testing.T) {
	Convey("StoryPromptBuilder 提示词构建测试", t, func() {
		builder := NewStoryPromptBuilder()

		Convey("主角称呼", func() {
			Convey("提供了孩子名字时使用名字", func() {
				So(builder.Protagonist("Lily"), ShouldEqual, "Lily")
			})

			Convey("名字为空或全空白时使用默认主角", func() {
				So(builder.Protagonist(""), ShouldEqual, DefaultProtagonist)
				So(builder.Protagonist("   "), ShouldEqual, DefaultProtagonist)
			})
		})

		Convey("故事提示词", func() {
			Convey("包含题材、主角和输出格式标记", func() {
				prompt := builder.BuildStoryPrompt(story.GenreFantasy, "", "", "Lily")
				So(prompt, ShouldContainSubstring, "fantasy")
				So(prompt, ShouldContainSubstring, "Lily")
				So(prompt, ShouldContainSubstring, "TITLE:")
				So(prompt, ShouldContainSubstring, "STORY:")
			})

			Convey("主题和当天经历按需拼接", func() {
				prompt := builder.BuildStoryPrompt(story.GenreAnimals, "sharing", "visited the zoo", "")
				So(prompt, ShouldContainSubstring, "teach the lesson: sharing")
				So(prompt, ShouldContainSubstring, "visited the zoo")
				So(prompt, ShouldContainSubstring, DefaultProtagonist)
			})

			Convey("未提供主题和经历时不出现对应句子", func() {
				prompt := builder.BuildStoryPrompt(story.GenreCalming, "", "", "")
				So(prompt, ShouldNotContainSubstring, "teach the lesson")
				So(prompt, ShouldNotContainSubstring, "events from their day")
			})
		})

		Convey("场景提取提示词嵌入故事正文", func() {
			prompt := builder.BuildScenesPrompt("Once upon a time there was a sleepy dragon.")
			So(prompt, ShouldContainSubstring, "sleepy dragon")
			So(prompt, ShouldContainSubstring, "SCENE 1:")
		})

		Convey("插图提示词包裹场景描述", func() {
			prompt := builder.BuildIllustrationPrompt("A fox under the moon")
			So(prompt, ShouldContainSubstring, "A fox under the moon")
			So(prompt, ShouldContainSubstring, "watercolor")
		})

		Convey("兜底场景固定5个并按主角和题材参数化", func() {
			scenes := builder.FallbackScenes("Mia", story.GenreSciFi)
			So(len(scenes), ShouldEqual, 5)
			So(scenes[0], ShouldContainSubstring, "Mia")
			So(scenes[0], ShouldContainSubstring, "sci-fi")
			for _, scene := range scenes {
				So(scene, ShouldContainSubstring, "Mia")
			}
		})
	})
}
