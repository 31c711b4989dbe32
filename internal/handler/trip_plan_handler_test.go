package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"YatraPlan-App/internal/domain/model"
)

// fakeTripPlanUseCase はTripPlanUseCaseのテスト用実装
type fakeTripPlanUseCase struct {
	draft    *model.TripDraft
	err      error
	draftErr error
}

func (f *fakeTripPlanUseCase) PlanTrip(ctx context.Context, req *model.TripPlanRequest) (*model.TripDraft, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.draft, nil
}

func (f *fakeTripPlanUseCase) GetTripDraft(ctx context.Context, draftID string) (*model.TripDraft, error) {
	if f.draftErr != nil {
		return nil, f.draftErr
	}
	return f.draft, nil
}

func setupPlanRouter(uc *fakeTripPlanUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTripPlanHandler(uc)
	router := gin.New()
	router.POST("/trips/plan", h.PostTripPlan)
	router.GET("/drafts/:id", h.GetTripDraft)
	return router
}

func doPlanRequest(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/trips/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestPostTripPlan_Success(t *testing.T) {
	uc := &fakeTripPlanUseCase{
		draft: &model.TripDraft{
			Places: []string{"p1", "p2"},
			Totals: model.ItineraryTotals{Days: 1},
		},
	}
	router := setupPlanRouter(uc)

	w := doPlanRequest(router, `{
		"start_location": {"latitude": 27.7172, "longitude": 85.3240},
		"preferences": {"interests": ["Cultural"]}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "p1")
}

func TestPostTripPlan_InvalidJSON(t *testing.T) {
	router := setupPlanRouter(&fakeTripPlanUseCase{})

	w := doPlanRequest(router, `{"start_location": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "リクエストの形式")
}

func TestPostTripPlan_Validation(t *testing.T) {
	router := setupPlanRouter(&fakeTripPlanUseCase{draft: &model.TripDraft{}})

	t.Run("開始地点なしは400", func(t *testing.T) {
		w := doPlanRequest(router, `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "開始地点は必須")
	})

	t.Run("緯度が範囲外は400", func(t *testing.T) {
		w := doPlanRequest(router, `{"start_location": {"latitude": 120.0, "longitude": 85.3240}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "緯度")
	})

	t.Run("経度が範囲外は400", func(t *testing.T) {
		w := doPlanRequest(router, `{"start_location": {"latitude": 27.7, "longitude": -200.0}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "経度")
	})

	t.Run("日付の片方指定は400", func(t *testing.T) {
		w := doPlanRequest(router, `{
			"start_location": {"latitude": 27.7, "longitude": 85.3},
			"start_date": "2026-03-01"
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "両方指定")
	})

	t.Run("不正な日付形式は400", func(t *testing.T) {
		w := doPlanRequest(router, `{
			"start_location": {"latitude": 27.7, "longitude": 85.3},
			"start_date": "03/01/2026",
			"end_date": "2026-03-03"
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
	})

	t.Run("時間帯が範囲外は400", func(t *testing.T) {
		w := doPlanRequest(router, `{
			"start_location": {"latitude": 27.7, "longitude": 85.3},
			"preferences": {"daily_start_hour": 25}
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "開始時刻")
	})

	t.Run("未定義カテゴリは400", func(t *testing.T) {
		w := doPlanRequest(router, `{
			"start_location": {"latitude": 27.7, "longitude": 85.3},
			"preferences": {"interests": ["Shopping"]}
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "未定義のカテゴリ")
	})
}

func TestPostTripPlan_UseCaseFailure(t *testing.T) {
	uc := &fakeTripPlanUseCase{err: errors.New("候補スポットの取得に失敗")}
	router := setupPlanRouter(uc)

	w := doPlanRequest(router, `{"start_location": {"latitude": 27.7, "longitude": 85.3}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "生成に失敗")
}

func TestGetTripDraft(t *testing.T) {
	t.Run("取得成功は200", func(t *testing.T) {
		uc := &fakeTripPlanUseCase{
			draft: &model.TripDraft{DraftID: "draft_abc", Places: []string{"p1"}},
		}
		router := setupPlanRouter(uc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/drafts/draft_abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "draft_abc")
	})

	t.Run("見つからない場合は404", func(t *testing.T) {
		uc := &fakeTripPlanUseCase{draftErr: errors.New("ドラフトが見つかりません（有効期限切れまたは無効なID）")}
		router := setupPlanRouter(uc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/drafts/draft_missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ストア障害は500", func(t *testing.T) {
		uc := &fakeTripPlanUseCase{draftErr: errors.New("接続タイムアウト")}
		router := setupPlanRouter(uc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/drafts/draft_abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
