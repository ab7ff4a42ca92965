package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"TimeTraveler-App/internal/domain/model"
	"TimeTraveler-App/internal/domain/repository"
	"TimeTraveler-App/internal/infrastructure/database"
)

type SupabaseRoutesRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseRoutesRepository(client *database.SupabaseClient) repository.RoutesRepository {
	return &SupabaseRoutesRepository{
		client: client,
	}
}

func (r *SupabaseRoutesRepository) Create(ctx context.Context, route *model.Route, spots []model.RouteSpot) error {
	routeData, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("ルートデータのJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("routes").Insert(string(routeData), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("ルートデータの作成失敗: %w", err)
	}

	spotsData, err := json.Marshal(spots)
	if err != nil {
		return fmt.Errorf("ルートスポットデータのJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("route_spots").Insert(string(spotsData), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("ルートスポットデータの作成失敗: %w", err)
	}

	return nil
}

func (r *SupabaseRoutesRepository) GetAll(ctx context.Context) ([]model.Route, error) {
	var routes []model.Route
	data, count, err := r.client.GetClient().From("routes").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("ルートデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &routes); err != nil {
		return nil, fmt.Errorf("ルートデータのJSONアンマーシャル失敗: %w", err)
	}

	// 新しい順に並べる
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].CreatedAt.After(routes[j].CreatedAt)
	})
	return routes, nil
}

func (r *SupabaseRoutesRepository) GetByID(ctx context.Context, id string) (*model.Route, error) {
	var routes []model.Route
	data, count, err := r.client.GetClient().From("routes").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("ルートデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &routes); err != nil {
		return nil, fmt.Errorf("ルートデータのJSONアンマーシャル失敗: %w", err)
	}

	if len(routes) == 0 {
		return nil, fmt.Errorf("ルートID %s が見つかりません", id)
	}

	return &routes[0], nil
}

func (r *SupabaseRoutesRepository) GetRouteSpots(ctx context.Context, routeID string) ([]model.RouteSpot, error) {
	var spots []model.RouteSpot
	data, count, err := r.client.GetClient().From("route_spots").Select("*", "exact", false).Eq("route_id", routeID).Execute()
	if err != nil {
		return nil, fmt.Errorf("ルートスポットデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &spots); err != nil {
		return nil, fmt.Errorf("ルートスポットデータのJSONアンマーシャル失敗: %w", err)
	}

	// 訪問順に並べる
	sort.Slice(spots, func(i, j int) bool {
		return spots[i].OrderNumber < spots[j].OrderNumber
	})
	return spots, nil
}
