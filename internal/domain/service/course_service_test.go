package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"TimeTraveler-App/internal/domain/helper"
	"TimeTraveler-App/internal/domain/model"
)

// fakeSpotsRepository インメモリのスポットカタログ（呼ばれたメソッドも記録する)
type fakeSpotsRepository struct {
	spots      []model.Spot
	lastMethod string
}

func (r *fakeSpotsRepository) GetAll(ctx context.Context) ([]model.Spot, error) {
	return r.spots, nil
}

func (r *fakeSpotsRepository) GetByID(ctx context.Context, id int) (*model.Spot, error) {
	for i := range r.spots {
		if r.spots[i].ID == id {
			return &r.spots[i], nil
		}
	}
	return nil, assert.AnError
}

func (r *fakeSpotsRepository) GetBySigunguCode(ctx context.Context, sigunguCode string) ([]model.Spot, error) {
	r.lastMethod = "GetBySigunguCode:" + sigunguCode
	var result []model.Spot
	for _, s := range r.spots {
		if s.SigunguCode == sigunguCode {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeSpotsRepository) GetExcludingSigunguCodes(ctx context.Context, sigunguCodes []string) ([]model.Spot, error) {
	r.lastMethod = "GetExcludingSigunguCodes"
	excluded := make(map[string]bool, len(sigunguCodes))
	for _, c := range sigunguCodes {
		excluded[c] = true
	}
	var result []model.Spot
	for _, s := range r.spots {
		if !excluded[s.SigunguCode] {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeSpotsRepository) GetByBoundingBox(ctx context.Context, minLng, minLat, maxLng, maxLat float64) ([]model.Spot, error) {
	var result []model.Spot
	for _, s := range r.spots {
		if s.Lng >= minLng && s.Lng <= maxLng && s.Lat >= minLat && s.Lat <= maxLat {
			result = append(result, s)
		}
	}
	return result, nil
}

// catalogSpot テスト用カタログのスポットを作る
func catalogSpot(id int, lat, lng float64, sigunguCode string, mission bool) model.Spot {
	s := model.Spot{
		ID:              id,
		Name:            "スポット",
		Lat:             lat,
		Lng:             lng,
		SigunguCode:     sigunguCode,
		WalkingActivity: true,
	}
	if mission {
		s.SetPastImageURL("https://example.com/past.jpg")
	}
	return s
}

func newTestCatalog() []model.Spot {
	return []model.Spot{
		// 江華郡（コード1）
		catalogSpot(1, 37.74, 126.48, model.SigunguCodeGanghwa, true),
		catalogSpot(2, 37.75, 126.49, model.SigunguCodeGanghwa, false),
		catalogSpot(3, 37.76, 126.50, model.SigunguCodeGanghwa, false),
		// 永宗島（コード10）
		catalogSpot(4, 37.49, 126.52, model.SigunguCodeYeongjong, false),
		// 内陸
		catalogSpot(5, 37.45, 126.70, "5", true),
		catalogSpot(6, 37.46, 126.71, "5", false),
		catalogSpot(7, 37.47, 126.72, "8", false),
	}
}

func boolPtr(b bool) *bool { return &b }

func TestCourseSuggestionService_GenerateCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("他地域移動許可時は全域が候補になる", func(t *testing.T) {
		repo := &fakeSpotsRepository{spots: newTestCatalog()}
		svc := NewCourseSuggestionService(repo)

		plan, err := svc.GenerateCourse(ctx, &model.CourseGenerateRequest{
			Answers:      []string{model.AnswerWalk},
			NumPlaces:    5,
			UserLocation: &model.Location{Latitude: 37.45, Longitude: 126.70},
		})

		assert.NoError(t, err)
		assert.Equal(t, "", repo.lastMethod, "スコープ用の絞り込みクエリは呼ばれない")
		assert.Equal(t, 5, plan.TotalSpots)
		assert.Equal(t, model.ModePlain, plan.Mode)
		assert.Equal(t, "内陸", plan.UserRegionName)
	})

	t.Run("江華郡のユーザーは移動不許可で江華郡のみが候補になる", func(t *testing.T) {
		repo := &fakeSpotsRepository{spots: newTestCatalog()}
		svc := NewCourseSuggestionService(repo)

		plan, err := svc.GenerateCourse(ctx, &model.CourseGenerateRequest{
			Answers:           []string{model.AnswerWalk},
			NumPlaces:         3,
			UserLocation:      &model.Location{Latitude: 37.74, Longitude: 126.48},
			MoveToOtherRegion: boolPtr(false),
		})

		assert.NoError(t, err)
		assert.Equal(t, "GetBySigunguCode:"+model.SigunguCodeGanghwa, repo.lastMethod)
		assert.Equal(t, "江華郡", plan.UserRegionName)
		for _, cs := range plan.CourseSpots {
			assert.Contains(t, []int{1, 2, 3}, cs.ID)
		}
	})

	t.Run("内陸のユーザーは移動不許可で江華・永宗が除外される", func(t *testing.T) {
		repo := &fakeSpotsRepository{spots: newTestCatalog()}
		svc := NewCourseSuggestionService(repo)

		plan, err := svc.GenerateCourse(ctx, &model.CourseGenerateRequest{
			Answers:           []string{model.AnswerWalk},
			NumPlaces:         3,
			UserLocation:      &model.Location{Latitude: 37.45, Longitude: 126.70},
			MoveToOtherRegion: boolPtr(false),
		})

		assert.NoError(t, err)
		assert.Equal(t, "GetExcludingSigunguCodes", repo.lastMethod)
		for _, cs := range plan.CourseSpots {
			assert.Contains(t, []int{5, 6, 7}, cs.ID)
		}
	})

	t.Run("訪問順と直前スポットからの距離が設定される", func(t *testing.T) {
		repo := &fakeSpotsRepository{spots: newTestCatalog()}
		svc := NewCourseSuggestionService(repo)

		plan, err := svc.GenerateCourse(ctx, &model.CourseGenerateRequest{
			Answers:      []string{model.AnswerWalk},
			NumPlaces:    3,
			UserLocation: &model.Location{Latitude: 37.45, Longitude: 126.70},
		})

		assert.NoError(t, err)
		for i, cs := range plan.CourseSpots {
			assert.Equal(t, i+1, cs.Order)
			if i == 0 {
				assert.Equal(t, 0.0, cs.DistanceFromPrevious)
				continue
			}
			prev := plan.CourseSpots[i-1]
			expected := helper.RoundDistanceKm(helper.HaversineDistance(
				model.LatLng{Lat: prev.Lat, Lng: prev.Lng},
				model.LatLng{Lat: cs.Lat, Lng: cs.Lng},
			))
			assert.InDelta(t, expected, cs.DistanceFromPrevious, 0.05)
		}
	})

	t.Run("ミッション提案は成功レスポンスに含まれる", func(t *testing.T) {
		repo := &fakeSpotsRepository{spots: newTestCatalog()}
		svc := NewCourseSuggestionService(repo)

		plan, err := svc.GenerateCourse(ctx, &model.CourseGenerateRequest{
			Answers:      []string{model.AnswerWalk},
			NumPlaces:    2,
			UserLocation: &model.Location{Latitude: 37.45, Longitude: 126.70},
		})

		assert.NoError(t, err)
		assert.True(t, plan.IsMissionAvailable)
		assert.Equal(t, 2, plan.MissionSpotCount)
		assert.Contains(t, plan.Proposal, "過去写真撮影ミッション")
	})

	t.Run("構築失敗時もエラーにミッション提案と地域名が入る", func(t *testing.T) {
		repo := &fakeSpotsRepository{spots: newTestCatalog()}
		svc := NewCourseSuggestionService(repo)

		_, err := svc.GenerateCourse(ctx, &model.CourseGenerateRequest{
			Answers:      []string{model.AnswerWalk},
			NumPlaces:    100,
			UserLocation: &model.Location{Latitude: 37.45, Longitude: 126.70},
		})

		courseErr, ok := err.(*model.CourseError)
		assert.True(t, ok)
		assert.Equal(t, model.ErrKindInsufficientCandidates, courseErr.Kind)
		assert.True(t, courseErr.IsMissionAvailable)
		assert.Equal(t, 2, courseErr.MissionSpotCount)
		assert.Equal(t, "内陸", courseErr.UserRegionName)
		assert.NotEmpty(t, courseErr.Proposal)
	})

	t.Run("バリデーション：num_placesが0以下ならinvalid_input", func(t *testing.T) {
		svc := NewCourseSuggestionService(&fakeSpotsRepository{})

		_, err := svc.GenerateCourse(ctx, &model.CourseGenerateRequest{
			Answers:      []string{model.AnswerWalk},
			NumPlaces:    0,
			UserLocation: &model.Location{Latitude: 37.45, Longitude: 126.70},
		})

		courseErr, ok := err.(*model.CourseError)
		assert.True(t, ok)
		assert.Equal(t, model.ErrKindInvalidInput, courseErr.Kind)
	})

	t.Run("バリデーション：現在地なしはinvalid_input", func(t *testing.T) {
		svc := NewCourseSuggestionService(&fakeSpotsRepository{})

		_, err := svc.GenerateCourse(ctx, &model.CourseGenerateRequest{
			Answers:   []string{model.AnswerWalk},
			NumPlaces: 3,
		})

		courseErr, ok := err.(*model.CourseError)
		assert.True(t, ok)
		assert.Equal(t, model.ErrKindInvalidInput, courseErr.Kind)
	})

	t.Run("バリデーション：緯度経度が範囲外ならinvalid_input", func(t *testing.T) {
		svc := NewCourseSuggestionService(&fakeSpotsRepository{})

		_, err := svc.GenerateCourse(ctx, &model.CourseGenerateRequest{
			Answers:      []string{model.AnswerWalk},
			NumPlaces:    3,
			UserLocation: &model.Location{Latitude: 91.0, Longitude: 126.70},
		})

		courseErr, ok := err.(*model.CourseError)
		assert.True(t, ok)
		assert.Equal(t, model.ErrKindInvalidInput, courseErr.Kind)
	})

	t.Run("バリデーション：answers省略はinvalid_input", func(t *testing.T) {
		svc := NewCourseSuggestionService(&fakeSpotsRepository{})

		_, err := svc.GenerateCourse(ctx, &model.CourseGenerateRequest{
			NumPlaces:    3,
			UserLocation: &model.Location{Latitude: 37.45, Longitude: 126.70},
		})

		courseErr, ok := err.(*model.CourseError)
		assert.True(t, ok)
		assert.Equal(t, model.ErrKindInvalidInput, courseErr.Kind)
	})
}
