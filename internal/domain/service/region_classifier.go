package service

import (
	"TimeTraveler-App/internal/domain/helper"
	"TimeTraveler-App/internal/domain/model"
)

// RegionClassifier ユーザーの現在地から行政区域を推定する
type RegionClassifier struct{}

// NewRegionClassifier 新しいRegionClassifierインスタンスを作成する
func NewRegionClassifier() *RegionClassifier {
	return &RegionClassifier{}
}

// ClassifyRegion カタログの中で現在地に最も近いスポットの行政区域コードを返す
// 距離のしきい値は設けない（どれだけ遠くても最寄りスポットの区域になる）
// カタログが空の場合はセンチネルコードを返し、呼び出し側は常にラベルを得られる
func (c *RegionClassifier) ClassifyRegion(spots []model.Spot, userLocation model.LatLng) string {
	idx := helper.FindNearestIndex(userLocation, spots)
	if idx < 0 {
		return model.SigunguCodeUnknown
	}
	return spots[idx].SigunguCode
}

// RegionLabel 行政区域コードから表示名を返す
func (c *RegionClassifier) RegionLabel(sigunguCode string) string {
	return model.GetRegionName(sigunguCode)
}
