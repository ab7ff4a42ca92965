package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"TimeTraveler-App/internal/domain/model"
	"TimeTraveler-App/internal/usecase"
)

// RoutesHandler 保存ルートに関するHTTPハンドラー
type RoutesHandler struct {
	routeUseCase usecase.RouteUseCase
}

// NewRoutesHandler RoutesHandlerの新しいインスタンスを作成
func NewRoutesHandler(routeUseCase usecase.RouteUseCase) *RoutesHandler {
	return &RoutesHandler{
		routeUseCase: routeUseCase,
	}
}

// CreateRoute POST /routes - 確定したコースの保存
func (h *RoutesHandler) CreateRoute(c *gin.Context) {
	var req model.CreateRouteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	response, err := h.routeUseCase.CreateRoute(c.Request.Context(), &req)
	if err != nil {
		// バリデーション由来のエラーは400で返す
		if strings.Contains(err.Error(), "必須") || strings.Contains(err.Error(), "指定してください") {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_request",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to create route: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetRoutes GET /routes - 保存済みルートの一覧を取得
func (h *RoutesHandler) GetRoutes(c *gin.Context) {
	routes, err := h.routeUseCase.GetRoutes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get routes: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, routes)
}

// GetRouteDetail GET /routes/:id - 保存済みルートの詳細を取得
func (h *RoutesHandler) GetRouteDetail(c *gin.Context) {
	routeID := c.Param("id")
	if routeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Route ID is required",
		})
		return
	}

	detail, err := h.routeUseCase.GetRouteDetail(c.Request.Context(), routeID)
	if err != nil {
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get route detail: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, detail)
}
