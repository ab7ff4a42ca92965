package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"TimeTraveler-App/internal/domain/model"
)

// fakeRoutesRepository インメモリのRoutesRepository実装
type fakeRoutesRepository struct {
	routes     map[string]*model.Route
	routeSpots map[string][]model.RouteSpot
	createErr  error
}

func newFakeRoutesRepository() *fakeRoutesRepository {
	return &fakeRoutesRepository{
		routes:     make(map[string]*model.Route),
		routeSpots: make(map[string][]model.RouteSpot),
	}
}

func (r *fakeRoutesRepository) Create(ctx context.Context, route *model.Route, spots []model.RouteSpot) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.routes[route.ID] = route
	r.routeSpots[route.ID] = spots
	return nil
}

func (r *fakeRoutesRepository) GetAll(ctx context.Context) ([]model.Route, error) {
	var result []model.Route
	for _, route := range r.routes {
		result = append(result, *route)
	}
	return result, nil
}

func (r *fakeRoutesRepository) GetByID(ctx context.Context, id string) (*model.Route, error) {
	route, ok := r.routes[id]
	if !ok {
		return nil, assert.AnError
	}
	return route, nil
}

func (r *fakeRoutesRepository) GetRouteSpots(ctx context.Context, routeID string) ([]model.RouteSpot, error) {
	return r.routeSpots[routeID], nil
}

func validCreateRouteRequest() *model.CreateRouteRequest {
	return &model.CreateRouteRequest{
		Mode:               model.ModeStrict,
		IsMissionAvailable: true,
		MissionSpotCount:   2,
		UserRegionName:     "内陸",
		Spots: []model.CreateRouteSpot{
			{SpotID: 10, OrderNumber: 1, IsMission: true},
			{SpotID: 20, OrderNumber: 2},
			{SpotID: 30, OrderNumber: 3, IsMission: true},
		},
	}
}

func TestRouteUseCase_CreateRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系：ルートと訪問順スポットが保存される", func(t *testing.T) {
		repo := newFakeRoutesRepository()
		uc := NewRouteUseCase(repo)

		resp, err := uc.CreateRoute(ctx, validCreateRouteRequest())

		assert.NoError(t, err)
		assert.Equal(t, "created", resp.Status)
		assert.NotEmpty(t, resp.RouteID)

		saved := repo.routes[resp.RouteID]
		assert.Equal(t, model.ModeStrict, saved.Mode)
		assert.Equal(t, 3, saved.TotalSpots)
		assert.Len(t, repo.routeSpots[resp.RouteID], 3)
	})

	t.Run("modeなしはエラー", func(t *testing.T) {
		uc := NewRouteUseCase(newFakeRoutesRepository())

		req := validCreateRouteRequest()
		req.Mode = ""
		_, err := uc.CreateRoute(ctx, req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "modeは必須です")
	})

	t.Run("spotsが空はエラー", func(t *testing.T) {
		uc := NewRouteUseCase(newFakeRoutesRepository())

		req := validCreateRouteRequest()
		req.Spots = nil
		_, err := uc.CreateRoute(ctx, req)

		assert.Error(t, err)
	})

	t.Run("order_numberの重複はエラー", func(t *testing.T) {
		uc := NewRouteUseCase(newFakeRoutesRepository())

		req := validCreateRouteRequest()
		req.Spots[2].OrderNumber = 1
		_, err := uc.CreateRoute(ctx, req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "重複")
	})

	t.Run("order_numberが範囲外はエラー", func(t *testing.T) {
		uc := NewRouteUseCase(newFakeRoutesRepository())

		req := validCreateRouteRequest()
		req.Spots[0].OrderNumber = 5
		_, err := uc.CreateRoute(ctx, req)

		assert.Error(t, err)
	})
}

func TestRouteUseCase_GetRoutes(t *testing.T) {
	ctx := context.Background()

	t.Run("保存日が日本語表記に整形される", func(t *testing.T) {
		repo := newFakeRoutesRepository()
		repo.routes["r1"] = &model.Route{
			ID:        "r1",
			Mode:      model.ModePlain,
			CreatedAt: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		}
		uc := NewRouteUseCase(repo)

		resp, err := uc.GetRoutes(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp.Routes, 1)
		assert.Equal(t, "2026年8月31日", resp.Routes[0].Date)
	})
}

func TestRouteUseCase_GetRouteDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("訪問順スポット付きの詳細を返す", func(t *testing.T) {
		repo := newFakeRoutesRepository()
		repo.routes["r1"] = &model.Route{
			ID:         "r1",
			Mode:       model.ModeSemiFlexible,
			TotalSpots: 2,
			CreatedAt:  time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		}
		repo.routeSpots["r1"] = []model.RouteSpot{
			{ID: "s1", RouteID: "r1", SpotID: 10, OrderNumber: 1, IsMission: true},
			{ID: "s2", RouteID: "r1", SpotID: 20, OrderNumber: 2},
		}
		uc := NewRouteUseCase(repo)

		detail, err := uc.GetRouteDetail(ctx, "r1")

		assert.NoError(t, err)
		assert.Equal(t, model.ModeSemiFlexible, detail.Mode)
		assert.Len(t, detail.Spots, 2)
		assert.Equal(t, 1, detail.Spots[0].OrderNumber)
	})

	t.Run("存在しないIDはエラー", func(t *testing.T) {
		uc := NewRouteUseCase(newFakeRoutesRepository())

		_, err := uc.GetRouteDetail(ctx, "missing")

		assert.Error(t, err)
	})
}
