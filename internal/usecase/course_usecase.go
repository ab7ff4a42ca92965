package usecase

import (
	"context"
	"errors"
	"log"

	"TimeTraveler-App/internal/domain/model"
	"TimeTraveler-App/internal/domain/repository"
	"TimeTraveler-App/internal/domain/service"
)

// coursePlanTTLHours 生成したプランをキャッシュに残す時間
const coursePlanTTLHours = 24

// CourseUseCase コース生成とプランキャッシュを束ねるユースケース
type CourseUseCase interface {
	// GenerateCoursePlan コースを生成し、キャッシュに保存してplan_id付きで返す
	GenerateCoursePlan(ctx context.Context, req *model.CourseGenerateRequest) (*model.CoursePlan, error)

	// GetCoursePlan 指定されたplan_idのプランをキャッシュから取得する
	GetCoursePlan(ctx context.Context, planID string) (*model.CoursePlan, error)
}

// ErrPlanCacheDisabled キャッシュなし構成でGetCoursePlanが呼ばれたときのエラー
var ErrPlanCacheDisabled = errors.New("コースプランキャッシュが構成されていません")

// courseUseCaseImpl CourseUseCaseの実装
type courseUseCaseImpl struct {
	courseService service.CourseSuggestionService
	planCache     repository.CoursePlanCacheRepository // nil許容（キャッシュなし運用）
}

// NewCourseUseCase 新しいCourseUseCaseインスタンスを作成
// planCacheにnilを渡すと生成のみの構成になる（Firestore未設定の環境向け）
func NewCourseUseCase(courseService service.CourseSuggestionService, planCache repository.CoursePlanCacheRepository) CourseUseCase {
	return &courseUseCaseImpl{
		courseService: courseService,
		planCache:     planCache,
	}
}

// GenerateCoursePlan コースを生成し、可能ならキャッシュへ保存する
func (u *courseUseCaseImpl) GenerateCoursePlan(ctx context.Context, req *model.CourseGenerateRequest) (*model.CoursePlan, error) {
	log.Printf("🚀 コース生成開始 (スポット数: %d, ミッション: %t)", req.NumPlaces, req.MissionAccepted)

	plan, err := u.courseService.GenerateCourse(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ コース生成完了 (モード: %s, スポット数: %d)", model.GetModeJapaneseName(plan.Mode), plan.TotalSpots)

	if u.planCache != nil {
		planID, err := u.planCache.SaveCoursePlan(ctx, plan, coursePlanTTLHours)
		if err != nil {
			// キャッシュ保存の失敗で生成結果を捨てない
			log.Printf("⚠️ コースプランのキャッシュ保存に失敗: %v", err)
		} else {
			plan.PlanID = planID
		}
	}

	return plan, nil
}

// GetCoursePlan キャッシュからプランを取得する
func (u *courseUseCaseImpl) GetCoursePlan(ctx context.Context, planID string) (*model.CoursePlan, error) {
	if u.planCache == nil {
		return nil, ErrPlanCacheDisabled
	}
	return u.planCache.GetCoursePlan(ctx, planID)
}
