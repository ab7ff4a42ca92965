package repository

import (
	"context"

	"TimeTraveler-App/internal/domain/model"
)

// RoutesRepository 保存済みルートの永続化インターフェース
type RoutesRepository interface {
	// Create ルート本体と訪問順付きスポットをまとめて保存
	Create(ctx context.Context, route *model.Route, spots []model.RouteSpot) error

	// GetAll 保存済みルートの一覧を取得（新しい順）
	GetAll(ctx context.Context) ([]model.Route, error)

	// GetByID 指定IDのルートを取得
	GetByID(ctx context.Context, id string) (*model.Route, error)

	// GetRouteSpots ルートの訪問順付きスポットを取得（order_number昇順）
	GetRouteSpots(ctx context.Context, routeID string) ([]model.RouteSpot, error)
}
