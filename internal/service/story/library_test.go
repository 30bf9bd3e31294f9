package story

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"lullaby/internal/model/story"
)

// seedStory 直接向仓库写入一条故事记录
func seedStory(repo *fakeStoryRepo, id, userID string, createdAt time.Time) *story.Story {
	st := &story.Story{
		ID:          id,
		UserID:      userID,
		Title:       "Seeded " + id,
		Genre:       story.GenreFantasy,
		Content:     "content of " + id,
		ReadingTime: 5,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	repo.stories = append(repo.stories, st)
	return st
}

func TestLibrary(t *testing.T) {
	Convey("StoryService 故事库测试", t, func() {
		repo := &fakeStoryRepo{}
		svc := NewStoryService(repo, &fakeLLM{}, &fakeImage{})

		now := time.Now()
		seedStory(repo, "story-old", testUserID, now.Add(-2*time.Hour))
		seedStory(repo, "story-new", testUserID, now)
		seedStory(repo, "story-other", "user-other", now.Add(-time.Hour))

		Convey("获取单个故事", func() {
			Convey("本人的故事可以获取", func() {
				st, err := svc.GetStory(authedCtx(testUserID), "story-new")
				So(err, ShouldBeNil)
				So(st.Title, ShouldEqual, "Seeded story-new")
			})

			Convey("别人的故事等同于不存在", func() {
				_, err := svc.GetStory(authedCtx(testUserID), "story-other")
				So(err, ShouldEqual, ErrStoryNotFound)
			})

			Convey("不存在的故事返回不存在", func() {
				_, err := svc.GetStory(authedCtx(testUserID), "no-such-story")
				So(err, ShouldEqual, ErrStoryNotFound)
			})

			Convey("未认证的请求被拒绝", func() {
				_, err := svc.GetStory(context.Background(), "story-new")
				So(err, ShouldEqual, ErrIdentityMismatch)
			})
		})

		Convey("故事列表", func() {
			Convey("只返回本人的故事，按创建时间倒序", func() {
				stories, err := svc.ListStories(authedCtx(testUserID))
				So(err, ShouldBeNil)
				So(len(stories), ShouldEqual, 2)
				So(stories[0].ID, ShouldEqual, "story-new")
				So(stories[1].ID, ShouldEqual, "story-old")
			})

			Convey("没有故事的用户返回空列表", func() {
				stories, err := svc.ListStories(authedCtx("user-empty"))
				So(err, ShouldBeNil)
				So(len(stories), ShouldEqual, 0)
			})
		})

		Convey("删除故事", func() {
			Convey("本人的故事可以删除，删除后不可再获取", func() {
				err := svc.DeleteStory(authedCtx(testUserID), "story-old")
				So(err, ShouldBeNil)

				_, err = svc.GetStory(authedCtx(testUserID), "story-old")
				So(err, ShouldEqual, ErrStoryNotFound)

				stories, _ := svc.ListStories(authedCtx(testUserID))
				So(len(stories), ShouldEqual, 1)
			})

			Convey("别人的故事不能删除", func() {
				err := svc.DeleteStory(authedCtx(testUserID), "story-other")
				So(err, ShouldEqual, ErrStoryNotFound)

				// 原故事仍然存在
				st, err := svc.GetStory(authedCtx("user-other"), "story-other")
				So(err, ShouldBeNil)
				So(st, ShouldNotBeNil)
			})

			Convey("重复删除返回不存在", func() {
				So(svc.DeleteStory(authedCtx(testUserID), "story-old"), ShouldBeNil)
				So(svc.DeleteStory(authedCtx(testUserID), "story-old"), ShouldEqual, ErrStoryNotFound)
			})
		})
	})
}

func TestRateStory(t *testing.T) {
	Convey("StoryService 评分测试", t, func() {
		repo := &fakeStoryRepo{}
		svc := NewStoryService(repo, &fakeLLM{}, &fakeImage{})

		seedStory(repo, "story-001", testUserID, time.Now())

		Convey("评分范围必须是1-5", func() {
			So(svc.RateStory(authedCtx(testUserID), "story-001", 0), ShouldEqual, ErrInvalidRating)
			So(svc.RateStory(authedCtx(testUserID), "story-001", 6), ShouldEqual, ErrInvalidRating)
			So(svc.RateStory(authedCtx(testUserID), "story-001", -1), ShouldEqual, ErrInvalidRating)
		})

		Convey("边界值1和5有效", func() {
			So(svc.RateStory(authedCtx(testUserID), "story-001", 1), ShouldBeNil)
			So(svc.RateStory(authedCtx(testUserID), "story-001", 5), ShouldBeNil)
		})

		Convey("评分成功后可以读到", func() {
			So(svc.RateStory(authedCtx(testUserID), "story-001", 4), ShouldBeNil)

			st, err := svc.GetStory(authedCtx(testUserID), "story-001")
			So(err, ShouldBeNil)
			So(st.Rating, ShouldNotBeNil)
			So(*st.Rating, ShouldEqual, 4)
		})

		Convey("重复评分覆盖旧值", func() {
			So(svc.RateStory(authedCtx(testUserID), "story-001", 2), ShouldBeNil)
			So(svc.RateStory(authedCtx(testUserID), "story-001", 5), ShouldBeNil)

			st, _ := svc.GetStory(authedCtx(testUserID), "story-001")
			So(*st.Rating, ShouldEqual, 5)
		})

		Convey("不能给别人的故事评分", func() {
			So(svc.RateStory(authedCtx("user-other"), "story-001", 3), ShouldEqual, ErrStoryNotFound)
		})

		Convey("不存在的故事返回不存在", func() {
			So(svc.RateStory(authedCtx(testUserID), "no-such-story", 3), ShouldEqual, ErrStoryNotFound)
		})

		Convey("未认证的请求被拒绝", func() {
			So(svc.RateStory(context.Background(), "story-001", 3), ShouldEqual, ErrIdentityMismatch)
		})
	})
}
