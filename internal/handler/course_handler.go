package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"TimeTraveler-App/internal/domain/model"
	"TimeTraveler-App/internal/usecase"
)

// CourseHandler コース生成APIのハンドラー
type CourseHandler struct {
	courseUseCase usecase.CourseUseCase
}

// NewCourseHandler 新しいCourseHandlerインスタンスを作成
func NewCourseHandler(courseUseCase usecase.CourseUseCase) *CourseHandler {
	return &CourseHandler{
		courseUseCase: courseUseCase,
	}
}

// PostCoursePlan はコースプランを生成するエンドポイント
// POST /courses/plans
func (h *CourseHandler) PostCoursePlan(c *gin.Context) {
	var req model.CourseGenerateRequest

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
	plan, err := h.courseUseCase.GenerateCoursePlan(c.Request.Context(), &req)
	if err != nil {
		// 構造化エラーはミッション提案・地域名のコンテキスト付きで返す
		if courseErr, ok := err.(*model.CourseError); ok {
			c.JSON(statusForErrorKind(courseErr.Kind), gin.H{
				"error":                courseErr.Kind,
				"message":              courseErr.Message,
				"proposal":             courseErr.Proposal,
				"is_mission_available": courseErr.IsMissionAvailable,
				"mission_spot_count":   courseErr.MissionSpotCount,
				"user_region_name":     courseErr.UserRegionName,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "コースプランの生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, plan)
}

// statusForErrorKind エラー種別をHTTPステータスに対応付ける
func statusForErrorKind(kind string) int {
	switch kind {
	case model.ErrKindInvalidInput, model.ErrKindNoPreferences:
		return http.StatusBadRequest
	case model.ErrKindInsufficientCandidates, model.ErrKindNoMissionCandidates:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *CourseHandler) validateRequest(req *model.CourseGenerateRequest) error {
	// UserLocationは必須
	if req.UserLocation == nil {
		return &ValidationError{Field: "user_location", Message: "現在地は必須です"}
	}

	// 緯度経度の範囲チェック
	if req.UserLocation.Latitude < -90 || req.UserLocation.Latitude > 90 {
		return &ValidationError{Field: "user_location.latitude", Message: "緯度は-90から90の範囲で指定してください"}
	}
	if req.UserLocation.Longitude < -180 || req.UserLocation.Longitude > 180 {
		return &ValidationError{Field: "user_location.longitude", Message: "経度は-180から180の範囲で指定してください"}
	}

	// スポット数のチェック
	if req.NumPlaces <= 0 {
		return &ValidationError{Field: "num_places", Message: "num_placesは正の整数で指定してください"}
	}

	// 回答のチェック（空配列は許されるが省略は不可）
	if req.Answers == nil {
		return &ValidationError{Field: "answers", Message: "answersは配列で指定してください"}
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

// GetCoursePlan は生成済みのコースプランを取得するエンドポイント
// GET /courses/plans/:id
func (h *CourseHandler) GetCoursePlan(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "plan_idが指定されていません",
		})
		return
	}

	plan, err := h.courseUseCase.GetCoursePlan(c.Request.Context(), planID)
	if err != nil {
		if err == usecase.ErrPlanCacheDisabled {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "コースプランキャッシュが利用できません",
			})
			return
		}
		// エラーメッセージから404か500かを判定
		if strings.Contains(err.Error(), "見つかりません") || strings.Contains(err.Error(), "有効期限切れ") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "コースプランが見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "コースプランの取得に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}
