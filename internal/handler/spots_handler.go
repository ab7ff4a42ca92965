package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"TimeTraveler-App/internal/domain/model"
	domainRepo "TimeTraveler-App/internal/domain/repository"
	"TimeTraveler-App/internal/repository"
)

// SpotsHandler 観光スポットカタログのHTTPハンドラー
type SpotsHandler struct {
	spotsRepo domainRepo.SpotsRepository
}

// NewSpotsHandler SpotsHandlerの新しいインスタンスを作成
func NewSpotsHandler(spotsRepo domainRepo.SpotsRepository) *SpotsHandler {
	return &SpotsHandler{
		spotsRepo: spotsRepo,
	}
}

// GetSpots GET /spots - スポット一覧を取得（bbox指定で地図範囲に絞り込み）
func (h *SpotsHandler) GetSpots(c *gin.Context) {
	bbox := c.Query("bbox")

	// bbox未指定なら全件
	if bbox == "" {
		spots, err := h.spotsRepo.GetAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "internal_error",
				"message": "Failed to get spots: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"spots": spots})
		return
	}

	bound, err := repository.ParseBoundingBox(bbox)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": err.Error(),
		})
		return
	}

	spots, err := h.spotsRepo.GetByBoundingBox(
		c.Request.Context(),
		bound.Min.Lon(), bound.Min.Lat(),
		bound.Max.Lon(), bound.Max.Lat(),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get spots: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

// GetSpotDetail GET /spots/:id - スポットの詳細を取得
func (h *SpotsHandler) GetSpotDetail(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Spot ID must be an integer",
		})
		return
	}

	spot, err := h.spotsRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "Spot not found: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, spot)
}

// GetQuestions GET /questions - 旅行の好み質問カタログを取得
func (h *SpotsHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": model.GetQuestions()})
}
