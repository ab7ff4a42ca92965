package model

// LatLng 緯度経度を表す基本的な型（距離計算などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Spot 観光スポットを表すモデル
// タグのbool列は質問への回答から導かれるフィルタ条件に対応する
type Spot struct {
	ID           int     `json:"id" db:"id"`                         // ユニークなスポットID
	Name         string  `json:"name" db:"name"`                     // スポット名
	Description  string  `json:"description" db:"description"`       // 説明文
	Address      string  `json:"address" db:"address"`               // 住所
	Lat          float64 `json:"lat" db:"lat"`                       // 緯度
	Lng          float64 `json:"lng" db:"lng"`                       // 経度
	SigunguCode  string  `json:"sigungu_code" db:"sigungu_code"`     // 行政区域コード
	PastImageURL *string `json:"past_image_url" db:"past_image_url"` // 過去写真URL（NULLABLE、ミッション対象の目印）

	WalkingActivity bool `json:"walking_activity" db:"walking_activity"` // 散策向き
	NightView       bool `json:"night_view" db:"night_view"`             // 景観・夜景
	QuietRest       bool `json:"quiet_rest" db:"quiet_rest"`             // 静かな休息
	ExperienceInfo  bool `json:"experience_info" db:"experience_info"`   // 歴史・文化体験
	FunSightseeing  bool `json:"fun_sightseeing" db:"fun_sightseeing"`   // ダイナミックな楽しさ
	WithChildren    bool `json:"with_children" db:"with_children"`       // 子供連れ向き
	WithPets        bool `json:"with_pets" db:"with_pets"`               // ペット同伴可
	PublicTransport bool `json:"public_transport" db:"public_transport"` // 公共交通で行ける
	CarTransport    bool `json:"car_transport" db:"car_transport"`       // 車・タクシーで行ける
	Famous          bool `json:"famous" db:"famous"`                     // 有名スポット
	CleanFacility   bool `json:"clean_facility" db:"clean_facility"`     // 施設が清潔
}

// ToLatLng スポットの位置情報をLatLng型に変換
func (s *Spot) ToLatLng() LatLng {
	return LatLng{Lat: s.Lat, Lng: s.Lng}
}

// GetPastImageURL 過去写真URLが存在する場合は値を、存在しない場合は空文字列を返す
func (s *Spot) GetPastImageURL() string {
	if s.PastImageURL != nil {
		return *s.PastImageURL
	}
	return ""
}

// SetPastImageURL 過去写真URLを設定する（空文字列の場合はnilのまま保持）
func (s *Spot) SetPastImageURL(url string) {
	if url != "" {
		s.PastImageURL = &url
	}
}

// IsMissionEligible 過去写真が登録されておりミッション対象かどうか
func (s *Spot) IsMissionEligible() bool {
	return s.PastImageURL != nil && *s.PastImageURL != ""
}

// HasTag 指定されたタグ名の属性を持つかチェック
func (s *Spot) HasTag(tag string) bool {
	switch tag {
	case TagWalkingActivity:
		return s.WalkingActivity
	case TagNightView:
		return s.NightView
	case TagQuietRest:
		return s.QuietRest
	case TagExperienceInfo:
		return s.ExperienceInfo
	case TagFunSightseeing:
		return s.FunSightseeing
	case TagWithChildren:
		return s.WithChildren
	case TagWithPets:
		return s.WithPets
	case TagPublicTransport:
		return s.PublicTransport
	case TagCarTransport:
		return s.CarTransport
	case TagFamous:
		return s.Famous
	case TagCleanFacility:
		return s.CleanFacility
	default:
		return false
	}
}

// Location 入力用の位置情報（バリデーションタグ付き）
type Location struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// ToLatLng Location を LatLng 型に変換
func (l *Location) ToLatLng() LatLng {
	return LatLng{Lat: l.Latitude, Lng: l.Longitude}
}

// IsValid 緯度経度が有効範囲内かチェック
func (l *Location) IsValid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}
