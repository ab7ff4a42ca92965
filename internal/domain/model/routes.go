package model

import "time"

// Route ユーザーが確定して保存した旅程
type Route struct {
	ID                 string    `json:"id" db:"id"`                                     // ユニークなルートID
	Mode               string    `json:"mode" db:"mode"`                                 // 生成時の構築モード
	IsMissionAvailable bool      `json:"is_mission_available" db:"is_mission_available"` // 生成時点のミッション有無
	MissionSpotCount   int       `json:"mission_spot_count" db:"mission_spot_count"`     // ミッション候補数
	UserRegionName     string    `json:"user_region_name" db:"user_region_name"`         // 出発時の地域名
	TotalSpots         int       `json:"total_spots" db:"total_spots"`                   // スポット数
	CreatedAt          time.Time `json:"created_at" db:"created_at"`                     // 保存日時
}

// RouteSpot ルート内の訪問順付きスポット
type RouteSpot struct {
	ID          string `json:"id" db:"id"`
	RouteID     string `json:"route_id" db:"route_id"`
	SpotID      int    `json:"spot_id" db:"spot_id"`
	OrderNumber int    `json:"order_number" db:"order_number"` // 1始まりの訪問順
	IsMission   bool   `json:"is_mission" db:"is_mission"`
}

// CreateRouteRequest ルート保存APIのリクエスト
type CreateRouteRequest struct {
	PlanID             string            `json:"plan_id"` // 元になったプランの一時ID（任意）
	Mode               string            `json:"mode" validate:"required"`
	IsMissionAvailable bool              `json:"is_mission_available"`
	MissionSpotCount   int               `json:"mission_spot_count"`
	UserRegionName     string            `json:"user_region_name"`
	Spots              []CreateRouteSpot `json:"spots" validate:"required"`
}

// CreateRouteSpot 保存するルートの1スポット
type CreateRouteSpot struct {
	SpotID      int  `json:"spot_id" validate:"required"`
	OrderNumber int  `json:"order_number" validate:"required,min=1"`
	IsMission   bool `json:"is_mission"`
}

// CreateRouteResponse ルート保存APIのレスポンス
type CreateRouteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	RouteID string `json:"route_id"`
}

// RouteSummary ルート一覧表示用のサマリー
type RouteSummary struct {
	ID                 string `json:"id"`
	Mode               string `json:"mode"`
	IsMissionAvailable bool   `json:"is_mission_available"`
	MissionSpotCount   int    `json:"mission_spot_count"`
	UserRegionName     string `json:"user_region_name"`
	TotalSpots         int    `json:"total_spots"`
	Date               string `json:"date"` // 表示用に整形した保存日
}

// RouteDetail ルート詳細（訪問順のスポット付き）
type RouteDetail struct {
	ID                 string      `json:"id"`
	Mode               string      `json:"mode"`
	IsMissionAvailable bool        `json:"is_mission_available"`
	MissionSpotCount   int         `json:"mission_spot_count"`
	UserRegionName     string      `json:"user_region_name"`
	TotalSpots         int         `json:"total_spots"`
	Date               string      `json:"date"`
	Spots              []RouteSpot `json:"spots"`
}

// GetRoutesResponse ルート一覧APIのレスポンス
type GetRoutesResponse struct {
	Routes []RouteSummary `json:"routes"`
}
