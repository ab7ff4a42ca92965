package repository

import (
	"context"

	"TimeTraveler-App/internal/domain/model"
)

// SpotsRepository 観光スポットカタログへの読み取りインターフェース
// コース生成側はスナップショットとして読むだけで、スポットの作成・削除は行わない
type SpotsRepository interface {
	// GetAll 全スポットを取得（ID昇順）
	GetAll(ctx context.Context) ([]model.Spot, error)

	// GetByID 指定IDのスポットを取得
	GetByID(ctx context.Context, id int) (*model.Spot, error)

	// GetBySigunguCode 指定した行政区域コードのスポットのみ取得
	GetBySigunguCode(ctx context.Context, sigunguCode string) ([]model.Spot, error)

	// GetExcludingSigunguCodes 指定した行政区域コードを除いたスポットを取得
	GetExcludingSigunguCodes(ctx context.Context, sigunguCodes []string) ([]model.Spot, error)

	// GetByBoundingBox 境界ボックス内のスポットを取得（地図画面用）
	GetByBoundingBox(ctx context.Context, minLng, minLat, maxLng, maxLat float64) ([]model.Spot, error)
}
