package helper

import (
	"math"
	"sort"

	"TimeTraveler-App/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の距離を計算する (km)
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// HaversineDistanceSpot は2つのスポット間の距離を計算する (km)
func HaversineDistanceSpot(s1, s2 *model.Spot) float64 {
	return HaversineDistance(s1.ToLatLng(), s2.ToLatLng())
}

// FindNearestIndex は基準地点に最も近いスポットのインデックスを返す
// 同距離の場合はカタログ順で先のものが勝つ（厳密な < 比較）。空なら -1
func FindNearestIndex(origin model.LatLng, spots []model.Spot) int {
	best := -1
	bestDist := math.Inf(1)
	for i := range spots {
		d := HaversineDistance(origin, spots[i].ToLatLng())
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// FindFarthestIndex は基準地点から最も遠いスポットのインデックスを返す
// 同距離の場合はカタログ順で先のものが勝つ。空なら -1
func FindFarthestIndex(origin model.LatLng, spots []model.Spot) int {
	best := -1
	bestDist := math.Inf(-1)
	for i := range spots {
		d := HaversineDistance(origin, spots[i].ToLatLng())
		if d > bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// MinDistance は基準地点から各スポットまでの最短距離を返す (km)
// 空の場合は +Inf
func MinDistance(origin model.LatLng, spots []model.Spot) float64 {
	min := math.Inf(1)
	for i := range spots {
		if d := HaversineDistance(origin, spots[i].ToLatLng()); d < min {
			min = d
		}
	}
	return min
}

// RemoveAt はインデックス位置のスポットを取り除いた新しいスライスを返す
// カタログ順を保ったままプールから選択済みスポットを外すために使う
func RemoveAt(spots []model.Spot, index int) []model.Spot {
	result := make([]model.Spot, 0, len(spots)-1)
	result = append(result, spots[:index]...)
	return append(result, spots[index+1:]...)
}

// SortByDistanceFromLocation は基準座標からの距離でスポットスライスをソートする
func SortByDistanceFromLocation(origin model.LatLng, spots []model.Spot) {
	sort.SliceStable(spots, func(i, j int) bool {
		distI := HaversineDistance(origin, spots[i].ToLatLng())
		distJ := HaversineDistance(origin, spots[j].ToLatLng())
		return distI < distJ
	})
}

// RoundDistanceKm は距離を小数1桁に丸める（レスポンス表示用）
func RoundDistanceKm(d float64) float64 {
	return math.Round(d*10) / 10
}
