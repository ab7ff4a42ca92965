package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"TimeTraveler-App/internal/domain/model"
)

// GeoPoint GeoJSON POINT 型の JSON 表現
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

// SpotToGeoPoint スポットの座標を GeoJSON POINT 形式に変換
func SpotToGeoPoint(spot *model.Spot) *GeoPoint {
	if spot == nil {
		return nil
	}

	point := orb.Point{spot.Lng, spot.Lat}

	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{point.Lon(), point.Lat()},
	}
}

// ParseBoundingBox "min_lng,min_lat,max_lng,max_lat" 形式の文字列を境界ボックスに変換
// 角の順序が逆でも orb.Bound の拡張で正しいボックスに正規化される
func ParseBoundingBox(bbox string) (orb.Bound, error) {
	parts := strings.Split(bbox, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("bboxは min_lng,min_lat,max_lng,max_lat の4値で指定してください")
	}

	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("bboxの値が数値ではありません: %w", err)
		}
		values[i] = v
	}

	minPoint := orb.Point{values[0], values[1]}
	maxPoint := orb.Point{values[2], values[3]}

	// 座標値の範囲チェック（経度: -180〜180, 緯度: -90〜90）
	for _, p := range []orb.Point{minPoint, maxPoint} {
		if p.Lon() < -180 || p.Lon() > 180 || p.Lat() < -90 || p.Lat() > 90 {
			return orb.Bound{}, fmt.Errorf("bboxの座標値が有効範囲外です")
		}
	}

	bound := orb.MultiPoint{minPoint, maxPoint}.Bound()

	return bound, nil
}
