package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"TimeTraveler-App/internal/domain/model"
	"TimeTraveler-App/internal/domain/repository"
	"TimeTraveler-App/internal/infrastructure/database"
)

type SupabaseSpotsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseSpotsRepository(client *database.SupabaseClient) repository.SpotsRepository {
	return &SupabaseSpotsRepository{
		client: client,
	}
}

// sortByID 取得順をID昇順に固定する（距離が同値のときのタイブレークを安定させる）
func sortByID(spots []model.Spot) {
	sort.Slice(spots, func(i, j int) bool {
		return spots[i].ID < spots[j].ID
	})
}

func (r *SupabaseSpotsRepository) GetAll(ctx context.Context) ([]model.Spot, error) {
	var spots []model.Spot
	data, count, err := r.client.GetClient().From("spots").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &spots); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	sortByID(spots)
	return spots, nil
}

func (r *SupabaseSpotsRepository) GetByID(ctx context.Context, id int) (*model.Spot, error) {
	var spots []model.Spot
	data, count, err := r.client.GetClient().From("spots").Select("*", "exact", false).Eq("id", strconv.Itoa(id)).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &spots); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	if len(spots) == 0 {
		return nil, fmt.Errorf("スポットID %d が見つかりません", id)
	}

	return &spots[0], nil
}

func (r *SupabaseSpotsRepository) GetBySigunguCode(ctx context.Context, sigunguCode string) ([]model.Spot, error) {
	var spots []model.Spot
	data, count, err := r.client.GetClient().From("spots").
		Select("*", "exact", false).
		Eq("sigungu_code", sigunguCode).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("区域 %s のスポットデータ取得失敗: %w", sigunguCode, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &spots); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	sortByID(spots)
	return spots, nil
}

func (r *SupabaseSpotsRepository) GetExcludingSigunguCodes(ctx context.Context, sigunguCodes []string) ([]model.Spot, error) {
	var spots []model.Spot
	// PostgRESTの not.in フィルタ形式: ("1","10")
	quoted := make([]string, len(sigunguCodes))
	for i, code := range sigunguCodes {
		quoted[i] = fmt.Sprintf("%q", code)
	}
	inList := "(" + strings.Join(quoted, ",") + ")"

	data, count, err := r.client.GetClient().From("spots").
		Select("*", "exact", false).
		Not("sigungu_code", "in", inList).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("区域除外スポットデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &spots); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	sortByID(spots)
	return spots, nil
}

func (r *SupabaseSpotsRepository) GetByBoundingBox(ctx context.Context, minLng, minLat, maxLng, maxLat float64) ([]model.Spot, error) {
	if minLng >= maxLng || minLat >= maxLat {
		return nil, fmt.Errorf("無効な境界ボックス: min値がmax値以上です")
	}

	var spots []model.Spot
	data, count, err := r.client.GetClient().From("spots").
		Select("*", "exact", false).
		Gte("lat", strconv.FormatFloat(minLat, 'f', -1, 64)).
		Lte("lat", strconv.FormatFloat(maxLat, 'f', -1, 64)).
		Gte("lng", strconv.FormatFloat(minLng, 'f', -1, 64)).
		Lte("lng", strconv.FormatFloat(maxLng, 'f', -1, 64)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("境界ボックス検索エラー: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &spots); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	sortByID(spots)
	return spots, nil
}
