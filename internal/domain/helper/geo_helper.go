package helper

import (
	"fmt"
	"math"
	"sort"

	"YatraPlan-App/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の大圏距離を計算する (km)
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

// HaversineDistancePlace は2つのスポット間の距離を計算する (km)
func HaversineDistancePlace(p1, p2 *model.Place) float64 {
	return HaversineDistance(p1.ToLatLng(), p2.ToLatLng())
}

// EstimateTravelMinutes は距離から移動時間（分）を見積もる
// 市街地・近郊の混合平均速度を想定し、非負の整数に丸める
func EstimateTravelMinutes(km float64) int {
	if km <= 0 {
		return 0
	}
	return int(math.Round(km / model.AssumedSpeedKmh * 60))
}

// ScorePlace はスポットの優先度スコアを計算する
// 人気スコア + 興味カテゴリ一致ボーナス(+1) − 入場料ペナルティ(fee/1000)
func ScorePlace(place *model.Place, prefs *model.PlannerPreferences) float64 {
	score := place.Popularity()
	if prefs.IsInterestedIn(place.Category) {
		score += 1
	}
	return score - place.Fee()/1000
}

// SortByScore はスコアの高い順にスポットスライスをソートする
// 同点の場合は入力の相対順序を維持する（安定ソート）
func SortByScore(places []*model.Place, prefs *model.PlannerPreferences) {
	sort.SliceStable(places, func(i, j int) bool {
		return ScorePlace(places[i], prefs) > ScorePlace(places[j], prefs)
	})
}

// FilterByLockedIDs は指定されたID順にスポットを並べ直して返す
// 指定順が正となり、リストに存在しないIDは読み飛ばす
func FilterByLockedIDs(places []*model.Place, lockedIDs []string) []*model.Place {
	byID := make(map[string]*model.Place, len(places))
	for _, p := range places {
		if p != nil {
			byID[p.ID] = p
		}
	}
	ordered := make([]*model.Place, 0, len(lockedIDs))
	for _, id := range lockedIDs {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// FilterByCategories は指定されたカテゴリのスポットのみを抽出する
func FilterByCategories(places []*model.Place, categories []string) []*model.Place {
	if len(categories) == 0 {
		return places
	}
	catSet := make(map[string]struct{})
	for _, c := range categories {
		catSet[c] = struct{}{}
	}
	var filtered []*model.Place
	for _, p := range places {
		if _, ok := catSet[p.Category]; ok {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// RoundKm は出力用に距離を小数2桁に丸める
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// FormatClock は0時からの経過分をゼロ埋めの HH:MM 形式に変換する
func FormatClock(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}
