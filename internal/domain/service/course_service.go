package service

import (
	"context"
	"fmt"

	"TimeTraveler-App/internal/domain/helper"
	"TimeTraveler-App/internal/domain/model"
	"TimeTraveler-App/internal/domain/repository"
)

// CourseSuggestionService 地域推定・ミッション提案・フィルタリング・コース構築を
// ひとつの結果にまとめるオーケストレーションサービス
type CourseSuggestionService interface {
	GenerateCourse(ctx context.Context, req *model.CourseGenerateRequest) (*model.CoursePlan, error)
}

type courseSuggestionService struct {
	spotsRepo  repository.SpotsRepository
	classifier *RegionClassifier
	proposer   *MissionProposer
	builder    *CourseBuilder
}

// NewCourseSuggestionService 新しいCourseSuggestionServiceインスタンスを作成する
func NewCourseSuggestionService(spotsRepo repository.SpotsRepository) CourseSuggestionService {
	return &courseSuggestionService{
		spotsRepo:  spotsRepo,
		classifier: NewRegionClassifier(),
		proposer:   NewMissionProposer(),
		builder:    NewCourseBuilder(),
	}
}

// GenerateCourse リクエストからコースプランを生成する
// 構築に失敗しても、呼び出し側がミッション提案と地域名を表示できるように
// エラーへコンテキストを詰めて返す
func (s *courseSuggestionService) GenerateCourse(ctx context.Context, req *model.CourseGenerateRequest) (*model.CoursePlan, error) {
	if err := validateGenerateRequest(req); err != nil {
		return nil, err
	}
	userLocation := req.UserLocation.ToLatLng()

	// 地域推定はカタログ全体に対して行う
	allSpots, err := s.spotsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("スポットカタログの取得失敗: %w", err)
	}
	regionCode := s.classifier.ClassifyRegion(allSpots, userLocation)
	regionName := s.classifier.RegionLabel(regionCode)

	candidates, err := s.scopeCandidates(ctx, allSpots, regionCode, req.AllowOtherRegions())
	if err != nil {
		return nil, fmt.Errorf("地域絞り込みの取得失敗: %w", err)
	}

	// ミッション提案は成否に関わらず常に計算する
	proposal := s.proposer.ProposeMission(candidates, userLocation)

	courseSpots, mode, err := s.builder.BuildCourse(candidates, req.Answers, req.NumPlaces, userLocation, req.MissionAccepted)
	if err != nil {
		if courseErr, ok := err.(*model.CourseError); ok {
			courseErr.Proposal = proposal.Message
			courseErr.IsMissionAvailable = proposal.Available
			courseErr.MissionSpotCount = proposal.SpotCount
			courseErr.UserRegionName = regionName
			return nil, courseErr
		}
		return nil, err
	}

	return assemblePlan(courseSpots, mode, proposal, regionName), nil
}

// scopeCandidates 地域スコープに応じた候補カタログを取得する
// 他地域への移動を許可しない場合：江華・永宗にいるならその区域のみ、
// それ以外（内陸）なら江華・永宗を除いた全域が対象になる
func (s *courseSuggestionService) scopeCandidates(ctx context.Context, allSpots []model.Spot, regionCode string, allowOtherRegions bool) ([]model.Spot, error) {
	if allowOtherRegions {
		return allSpots, nil
	}
	if regionCode == model.SigunguCodeGanghwa || regionCode == model.SigunguCodeYeongjong {
		return s.spotsRepo.GetBySigunguCode(ctx, regionCode)
	}
	return s.spotsRepo.GetExcludingSigunguCodes(ctx, []string{model.SigunguCodeGanghwa, model.SigunguCodeYeongjong})
}

// validateGenerateRequest 入力の事前検証（不正な入力は一切処理せずに弾く）
func validateGenerateRequest(req *model.CourseGenerateRequest) error {
	if req.NumPlaces <= 0 {
		return model.NewCourseError(model.ErrKindInvalidInput, "num_placesは正の整数で指定してください")
	}
	if req.UserLocation == nil {
		return model.NewCourseError(model.ErrKindInvalidInput, "user_locationは必須です")
	}
	if !req.UserLocation.IsValid() {
		return model.NewCourseError(model.ErrKindInvalidInput, "緯度は-90〜90、経度は-180〜180の範囲で指定してください")
	}
	if req.Answers == nil {
		return model.NewCourseError(model.ErrKindInvalidInput, "answersは配列で指定してください")
	}
	return nil
}

// assemblePlan 訪問順のスポット列をレスポンス形状に変換する
// 各スポットについて直前スポットからのハーバーサイン距離を計算する（先頭は0）
func assemblePlan(courseSpots []model.Spot, mode string, proposal MissionProposal, regionName string) *model.CoursePlan {
	spots := make([]model.CourseSpot, 0, len(courseSpots))
	for i, s := range courseSpots {
		distance := 0.0
		if i > 0 {
			distance = helper.RoundDistanceKm(helper.HaversineDistanceSpot(&courseSpots[i-1], &courseSpots[i]))
		}
		spots = append(spots, model.CourseSpot{
			ID:                   s.ID,
			Title:                s.Name,
			Lat:                  s.Lat,
			Lng:                  s.Lng,
			Order:                i + 1,
			IsMission:            s.IsMissionEligible(),
			PastImageURL:         s.PastImageURL,
			DistanceFromPrevious: distance,
		})
	}

	return &model.CoursePlan{
		CourseSpots:        spots,
		Mode:               mode,
		Proposal:           proposal.Message,
		IsMissionAvailable: proposal.Available,
		MissionSpotCount:   proposal.SpotCount,
		UserRegionName:     regionName,
		TotalSpots:         len(spots),
	}
}
