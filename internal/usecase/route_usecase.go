package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"TimeTraveler-App/internal/domain/model"
	"TimeTraveler-App/internal/domain/repository"
)

// RouteUseCase 確定したルートの保存・閲覧に関するユースケース
type RouteUseCase interface {
	// CreateRoute ルートを保存する
	CreateRoute(ctx context.Context, req *model.CreateRouteRequest) (*model.CreateRouteResponse, error)

	// GetRoutes 保存済みルートの一覧を取得する
	GetRoutes(ctx context.Context) (*model.GetRoutesResponse, error)

	// GetRouteDetail ルートの詳細（訪問順のスポット付き）を取得する
	GetRouteDetail(ctx context.Context, id string) (*model.RouteDetail, error)
}

// routeUseCaseImpl RouteUseCaseの実装
type routeUseCaseImpl struct {
	routesRepo repository.RoutesRepository
}

// NewRouteUseCase 新しいRouteUseCaseインスタンスを作成
func NewRouteUseCase(routesRepo repository.RoutesRepository) RouteUseCase {
	return &routeUseCaseImpl{
		routesRepo: routesRepo,
	}
}

// CreateRoute ルート本体と訪問順スポットを保存する
func (u *routeUseCaseImpl) CreateRoute(ctx context.Context, req *model.CreateRouteRequest) (*model.CreateRouteResponse, error) {
	if err := u.validateCreateRouteRequest(req); err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %w", err)
	}

	routeID := uuid.New().String()

	route := &model.Route{
		ID:                 routeID,
		Mode:               req.Mode,
		IsMissionAvailable: req.IsMissionAvailable,
		MissionSpotCount:   req.MissionSpotCount,
		UserRegionName:     req.UserRegionName,
		TotalSpots:         len(req.Spots),
		CreatedAt:          time.Now(),
	}

	routeSpots := make([]model.RouteSpot, len(req.Spots))
	for i, s := range req.Spots {
		routeSpots[i] = model.RouteSpot{
			ID:          uuid.New().String(),
			RouteID:     routeID,
			SpotID:      s.SpotID,
			OrderNumber: s.OrderNumber,
			IsMission:   s.IsMission,
		}
	}

	if err := u.routesRepo.Create(ctx, route, routeSpots); err != nil {
		return nil, fmt.Errorf("ルートの保存失敗: %w", err)
	}

	return &model.CreateRouteResponse{
		Status:  "created",
		Message: "ルートを保存しました",
		RouteID: routeID,
	}, nil
}

// validateCreateRouteRequest リクエストの詳細バリデーションを行う
func (u *routeUseCaseImpl) validateCreateRouteRequest(req *model.CreateRouteRequest) error {
	if req.Mode == "" {
		return fmt.Errorf("modeは必須です")
	}
	if len(req.Spots) == 0 {
		return fmt.Errorf("spotsを1件以上指定してください")
	}

	// 訪問順は1始まりの連番で重複なし
	seen := make(map[int]struct{}, len(req.Spots))
	for _, s := range req.Spots {
		if s.OrderNumber < 1 || s.OrderNumber > len(req.Spots) {
			return fmt.Errorf("order_numberは1〜%dの範囲で指定してください", len(req.Spots))
		}
		if _, dup := seen[s.OrderNumber]; dup {
			return fmt.Errorf("order_number %d が重複しています", s.OrderNumber)
		}
		seen[s.OrderNumber] = struct{}{}
	}
	return nil
}

// GetRoutes 保存済みルートの一覧を取得する
func (u *routeUseCaseImpl) GetRoutes(ctx context.Context) (*model.GetRoutesResponse, error) {
	routes, err := u.routesRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ルート一覧の取得失敗: %w", err)
	}

	summaries := make([]model.RouteSummary, 0, len(routes))
	for _, route := range routes {
		summaries = append(summaries, model.RouteSummary{
			ID:                 route.ID,
			Mode:               route.Mode,
			IsMissionAvailable: route.IsMissionAvailable,
			MissionSpotCount:   route.MissionSpotCount,
			UserRegionName:     route.UserRegionName,
			TotalSpots:         route.TotalSpots,
			Date:               route.CreatedAt.Format("2006年1月2日"),
		})
	}

	return &model.GetRoutesResponse{Routes: summaries}, nil
}

// GetRouteDetail ルート詳細を取得する
func (u *routeUseCaseImpl) GetRouteDetail(ctx context.Context, id string) (*model.RouteDetail, error) {
	route, err := u.routesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ルートの取得失敗: %w", err)
	}

	spots, err := u.routesRepo.GetRouteSpots(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ルートスポットの取得失敗: %w", err)
	}

	return &model.RouteDetail{
		ID:                 route.ID,
		Mode:               route.Mode,
		IsMissionAvailable: route.IsMissionAvailable,
		MissionSpotCount:   route.MissionSpotCount,
		UserRegionName:     route.UserRegionName,
		TotalSpots:         route.TotalSpots,
		Date:               route.CreatedAt.Format("2006年1月2日"),
		Spots:              spots,
	}, nil
}
