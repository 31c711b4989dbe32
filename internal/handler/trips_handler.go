package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"YatraPlan-App/internal/application"
	"YatraPlan-App/internal/domain/model"
)

// TripsHandler は確定済み旅程APIのハンドラー
type TripsHandler struct {
	tripsService application.TripsService
}

// NewTripsHandler は新しいTripsHandlerインスタンスを作成
func NewTripsHandler(tripsService application.TripsService) *TripsHandler {
	return &TripsHandler{
		tripsService: tripsService,
	}
}

// PostTrip は計算済みドラフトを旅程として保存するエンドポイント
// POST /trips
func (h *TripsHandler) PostTrip(c *gin.Context) {
	var req model.SaveTripRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	response, err := h.tripsService.SaveTrip(c.Request.Context(), &req)
	if err != nil {
		// バリデーション起因のエラーは400を返す
		if strings.Contains(err.Error(), "検証失敗") {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "バリデーションエラー",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "旅程の保存に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetTrip は保存済み旅程を取得するエンドポイント
// GET /trips/:id
func (h *TripsHandler) GetTrip(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "trip_idが指定されていません",
		})
		return
	}

	trip, err := h.tripsService.GetTrip(c.Request.Context(), tripID)
	if err != nil {
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "旅程が見つかりません",
				"details": err.Error(),
			})
			return
		}
		if strings.Contains(err.Error(), "無効な旅程ID") {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "旅程IDの形式が正しくありません",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "旅程の取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, trip)
}
