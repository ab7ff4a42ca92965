package repository

import (
	"context"

	"TimeTraveler-App/internal/domain/model"
)

// CoursePlanCacheRepository 生成したコースプランの一時キャッシュインターフェース
// 保存時にplan_idを払い出し、TTL経過後は取得できなくなる
type CoursePlanCacheRepository interface {
	// SaveCoursePlan プランを保存してplan_idを返す
	SaveCoursePlan(ctx context.Context, plan *model.CoursePlan, ttlHours int) (string, error)

	// GetCoursePlan plan_idからプランを取得する
	GetCoursePlan(ctx context.Context, planID string) (*model.CoursePlan, error)
}
