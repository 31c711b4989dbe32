package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"YatraPlan-App/internal/domain/model"
	"YatraPlan-App/internal/usecase"
)

// TripPlanHandler は旅程プランAPIのハンドラー
type TripPlanHandler struct {
	planUseCase usecase.TripPlanUseCase
}

// NewTripPlanHandler は新しいTripPlanHandlerインスタンスを作成
func NewTripPlanHandler(planUseCase usecase.TripPlanUseCase) *TripPlanHandler {
	return &TripPlanHandler{
		planUseCase: planUseCase,
	}
}

// PostTripPlan は旅程ドラフトを生成するエンドポイント
// POST /trips/plan
func (h *TripPlanHandler) PostTripPlan(c *gin.Context) {
	var req model.TripPlanRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	draft, err := h.planUseCase.PlanTrip(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "旅程プランの生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, draft)
}

// GetTripDraft は保存済みドラフトを取得するエンドポイント
// GET /drafts/:id
func (h *TripPlanHandler) GetTripDraft(c *gin.Context) {
	draftID := c.Param("id")
	if draftID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "draft_idが指定されていません",
		})
		return
	}

	draft, err := h.planUseCase.GetTripDraft(c.Request.Context(), draftID)
	if err != nil {
		// エラーメッセージから404か500かを判定
		if strings.Contains(err.Error(), "見つかりません") || strings.Contains(err.Error(), "有効期限切れ") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "ドラフトが見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "ドラフトの取得に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, draft)
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *TripPlanHandler) validateRequest(req *model.TripPlanRequest) error {
	// StartLocationは必須
	if req.StartLocation == nil {
		return &ValidationError{Field: "start_location", Message: "開始地点は必須です [lon,lat]"}
	}

	// 緯度経度の範囲チェック
	if req.StartLocation.Latitude < -90 || req.StartLocation.Latitude > 90 {
		return &ValidationError{Field: "start_location.latitude", Message: "緯度は-90から90の範囲で指定してください"}
	}
	if req.StartLocation.Longitude < -180 || req.StartLocation.Longitude > 180 {
		return &ValidationError{Field: "start_location.longitude", Message: "経度は-180から180の範囲で指定してください"}
	}

	// 日付はペアで指定し、YYYY-MM-DD形式であること
	if (req.StartDate == "") != (req.EndDate == "") {
		return &ValidationError{Field: "start_date", Message: "開始日と終了日は両方指定してください"}
	}
	if req.HasDates() {
		if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
			return &ValidationError{Field: "start_date", Message: "開始日はYYYY-MM-DD形式で指定してください"}
		}
		if _, err := time.Parse("2006-01-02", req.EndDate); err != nil {
			return &ValidationError{Field: "end_date", Message: "終了日はYYYY-MM-DD形式で指定してください"}
		}
	}

	// 時間帯のチェック
	if req.Preferences != nil {
		prefs := req.Preferences
		if prefs.DailyStartHour != nil && (*prefs.DailyStartHour < 0 || *prefs.DailyStartHour > 24) {
			return &ValidationError{Field: "preferences.daily_start_hour", Message: "開始時刻は0から24の範囲で指定してください"}
		}
		if prefs.DailyEndHour != nil && (*prefs.DailyEndHour < 0 || *prefs.DailyEndHour > 24) {
			return &ValidationError{Field: "preferences.daily_end_hour", Message: "終了時刻は0から24の範囲で指定してください"}
		}

		// 興味カテゴリの確認
		for _, category := range prefs.Interests {
			if !model.IsValidCategory(category) {
				return &ValidationError{Field: "preferences.interests", Message: "未定義のカテゴリです: " + category}
			}
		}
	}

	return nil
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
