package fal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewClient(t *testing.T) {
	Convey("fal 客户端创建测试", t, func() {
		Convey("缺少 API Key 时返回错误", func() {
			client, err := NewClient(&Config{})
			So(client, ShouldBeNil)
			So(err, ShouldEqual, ErrMissingAPIKey)
		})

		Convey("未指定的配置项使用默认值", func() {
			cfg := &Config{APIKey: "test-key"}
			client, err := NewClient(cfg)
			So(err, ShouldBeNil)
			So(client, ShouldNotBeNil)
			So(cfg.BaseURL, ShouldEqual, "https://fal.run")
			So(cfg.Model, ShouldEqual, "fal-ai/flux/schnell")
			So(cfg.ImageSize, ShouldEqual, "landscape_16_9")
			So(cfg.NumSteps, ShouldEqual, 4)
		})

		Convey("BaseURL 末尾斜杠被去除", func() {
			cfg := &Config{APIKey: "test-key", BaseURL: "https://fal.run/"}
			_, err := NewClient(cfg)
			So(err, ShouldBeNil)
			So(cfg.BaseURL, ShouldEqual, "https://fal.run")
		})
	})
}

func TestGenerateImage(t *testing.T) {
	Convey("fal 图片生成测试", t, func() {
		ctx := context.Background()

		Convey("成功生成：返回第一张图片的URL", func() {
			var gotPath, gotAuth string
			var gotBody map[string]interface{}

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotAuth = r.Header.Get("Authorization")
				_ = json.NewDecoder(r.Body).Decode(&gotBody)

				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"images": []map[string]interface{}{
						{"url": "https://fal.media/files/abc/output.png", "width": 1024, "height": 576},
					},
				})
			}))
			defer server.Close()

			client, err := NewClient(&Config{APIKey: "test-key", BaseURL: server.URL})
			So(err, ShouldBeNil)

			url, err := client.GenerateImage(ctx, "a fox under the moon")
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://fal.media/files/abc/output.png")

			// 请求路径为 /{model}，认证头为 Key {apiKey}
			So(gotPath, ShouldEqual, "/fal-ai/flux/schnell")
			So(gotAuth, ShouldEqual, "Key test-key")
			So(gotBody["prompt"], ShouldEqual, "a fox under the moon")
			So(gotBody["image_size"], ShouldEqual, "landscape_16_9")
			So(gotBody["num_inference_steps"], ShouldEqual, float64(4))
			So(gotBody["num_images"], ShouldEqual, float64(1))
		})

		Convey("非200响应返回错误", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail": "invalid key"}`))
			}))
			defer server.Close()

			client, err := NewClient(&Config{APIKey: "bad-key", BaseURL: server.URL})
			So(err, ShouldBeNil)

			url, err := client.GenerateImage(ctx, "any prompt")
			So(url, ShouldBeEmpty)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "status 401")
		})

		Convey("响应中没有图片返回错误", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"images": []}`))
			}))
			defer server.Close()

			client, err := NewClient(&Config{APIKey: "test-key", BaseURL: server.URL})
			So(err, ShouldBeNil)

			url, err := client.GenerateImage(ctx, "any prompt")
			So(url, ShouldBeEmpty)
			So(err, ShouldNotBeNil)
		})

		Convey("图片URL为空返回错误", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"images": [{"url": ""}]}`))
			}))
			defer server.Close()

			client, err := NewClient(&Config{APIKey: "test-key", BaseURL: server.URL})
			So(err, ShouldBeNil)

			_, err = client.GenerateImage(ctx, "any prompt")
			So(err, ShouldNotBeNil)
		})
	})
}
