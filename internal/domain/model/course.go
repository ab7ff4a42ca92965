package model

import "time"

// CourseErrorKind コース生成が失敗したときの安定したエラー種別
const (
	ErrKindInvalidInput           = "invalid_input"
	ErrKindNoPreferences          = "no_preferences"
	ErrKindInsufficientCandidates = "insufficient_candidates"
	ErrKindNoMissionCandidates    = "no_mission_candidates"
	ErrKindInternal               = "internal_error"
)

// CourseError コース生成の構造化エラー
// オーケストレーターがミッション提案・地域名のコンテキストを埋めてから
// ハンドラーへ返すので、失敗時でも呼び出し側は提案を表示できる
type CourseError struct {
	Kind               string `json:"kind"`
	Message            string `json:"message"`
	Proposal           string `json:"proposal,omitempty"`
	IsMissionAvailable bool   `json:"is_mission_available"`
	MissionSpotCount   int    `json:"mission_spot_count"`
	UserRegionName     string `json:"user_region_name,omitempty"`
}

func (e *CourseError) Error() string {
	return e.Message
}

// NewCourseError 種別とメッセージからCourseErrorを作成する
func NewCourseError(kind, message string) *CourseError {
	return &CourseError{Kind: kind, Message: message}
}

// CourseGenerateRequest コース生成APIのリクエスト
type CourseGenerateRequest struct {
	Answers           []string  `json:"answers"`                              // 回答ID一覧
	NumPlaces         int       `json:"num_places" validate:"required,min=1"` // 訪問するスポット数
	UserLocation      *Location `json:"user_location" validate:"required"`    // 現在地
	MissionAccepted   bool      `json:"mission_accepted"`                     // ミッション受諾フラグ
	MoveToOtherRegion *bool     `json:"move_to_other_region"`                 // 他地域への移動許可（省略時は許可）
}

// AllowOtherRegions 他地域への移動が許可されているかどうか（デフォルトは許可）
func (r *CourseGenerateRequest) AllowOtherRegions() bool {
	if r.MoveToOtherRegion == nil {
		return true
	}
	return *r.MoveToOtherRegion
}

// CourseSpot 生成されたコース内の1スポット
type CourseSpot struct {
	ID                   int     `json:"id"`
	Title                string  `json:"title"`
	Lat                  float64 `json:"lat"`
	Lng                  float64 `json:"lng"`
	Order                int     `json:"order"`                  // 1始まりの訪問順
	IsMission            bool    `json:"is_mission"`             // ミッション対象スポットか
	PastImageURL         *string `json:"past_image_url"`         // 過去写真URL（対象外はnull）
	DistanceFromPrevious float64 `json:"distance_from_previous"` // 直前スポットからの距離 (km、小数1桁)
}

// CoursePlan コース生成の最終結果
type CoursePlan struct {
	PlanID             string       `json:"plan_id,omitempty"` // キャッシュ保存時に付与される一時ID
	CourseSpots        []CourseSpot `json:"course_spots"`
	Mode               string       `json:"mode"` // plain / strict / semi-flexible / fully-flexible
	Proposal           string       `json:"proposal"`
	IsMissionAvailable bool         `json:"is_mission_available"`
	MissionSpotCount   int          `json:"mission_spot_count"`
	UserRegionName     string       `json:"user_region_name"`
	TotalSpots         int          `json:"total_spots"`
}

// FirestoreCoursePlan Firestoreキャッシュ用のCoursePlan
type FirestoreCoursePlan struct {
	CourseSpots        []CourseSpot `firestore:"course_spots"`
	Mode               string       `firestore:"mode"`
	Proposal           string       `firestore:"proposal"`
	IsMissionAvailable bool         `firestore:"is_mission_available"`
	MissionSpotCount   int          `firestore:"mission_spot_count"`
	UserRegionName     string       `firestore:"user_region_name"`
	TotalSpots         int          `firestore:"total_spots"`
	ExpireAt           time.Time    `firestore:"expireAt"`
}

// ToFirestoreCoursePlan CoursePlanをFirestore保存用に変換（TTL付き）
func (p *CoursePlan) ToFirestoreCoursePlan(ttlHours int) *FirestoreCoursePlan {
	return &FirestoreCoursePlan{
		CourseSpots:        p.CourseSpots,
		Mode:               p.Mode,
		Proposal:           p.Proposal,
		IsMissionAvailable: p.IsMissionAvailable,
		MissionSpotCount:   p.MissionSpotCount,
		UserRegionName:     p.UserRegionName,
		TotalSpots:         p.TotalSpots,
		ExpireAt:           time.Now().Add(time.Duration(ttlHours) * time.Hour),
	}
}

// ToCoursePlan Firestoreのデータを CoursePlan に戻す
func (f *FirestoreCoursePlan) ToCoursePlan(planID string) *CoursePlan {
	return &CoursePlan{
		PlanID:             planID,
		CourseSpots:        f.CourseSpots,
		Mode:               f.Mode,
		Proposal:           f.Proposal,
		IsMissionAvailable: f.IsMissionAvailable,
		MissionSpotCount:   f.MissionSpotCount,
		UserRegionName:     f.UserRegionName,
		TotalSpots:         f.TotalSpots,
	}
}
