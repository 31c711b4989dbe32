package model

// LatLng 緯度経度を表す基本的な型（距離計算などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry PostGIS GEOMETRY型に対応する構造体
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

// Location 緯度経度のリクエスト表現
type Location struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// ToLatLng Location を LatLng 型に変換
func (l *Location) ToLatLng() LatLng {
	return LatLng{Lat: l.Latitude, Lng: l.Longitude}
}

// ToGeometry Location を PostGIS GEOMETRY 型に変換
func (l *Location) ToGeometry() *Geometry {
	return &Geometry{
		Type:        "Point",
		Coordinates: []float64{l.Longitude, l.Latitude},
	}
}

// FromGeometry PostGIS GEOMETRY 型から Location に変換
func (l *Location) FromGeometry(g *Geometry) {
	if g != nil && len(g.Coordinates) >= 2 {
		l.Longitude = g.Coordinates[0]
		l.Latitude = g.Coordinates[1]
	}
}

// GeoPolygon PostGIS POLYGON 型に対応する構造体
type GeoPolygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// Place 観光スポット（候補地）を表すモデル
// PopularityScore / EntranceFee / AvgVisitMinutes はデータ欠損があり得るため
// NULLABLE とし、Normalize でデフォルト値を埋めてからスケジューリングに渡す
type Place struct {
	ID              string    `json:"id" db:"id"`                                         // ユニークなスポットID
	Name            string    `json:"name" db:"name"`                                     // スポット名
	Location        *Geometry `json:"location" db:"location"`                             // 位置情報（PostGIS GEOMETRY型）
	Category        string    `json:"category" db:"category"`                             // カテゴリ
	PopularityScore *float64  `json:"popularity_score,omitempty" db:"popularity_score"`   // 人気スコア（NULLABLE）
	EntranceFee     *float64  `json:"entrance_fee,omitempty" db:"entrance_fee"`           // 入場料（NULLABLE）
	AvgVisitMinutes *int      `json:"avg_visit_minutes,omitempty" db:"avg_visit_minutes"` // 平均滞在時間（分, NULLABLE）
}

// ToLatLng Placeの位置情報をLatLng型に変換
func (p *Place) ToLatLng() LatLng {
	if p.HasValidCoordinates() {
		return LatLng{
			Lat: p.Location.Coordinates[1], // latitude
			Lng: p.Location.Coordinates[0], // longitude
		}
	}
	return LatLng{}
}

// HasValidCoordinates 位置情報が有効な2要素の座標を持つかチェック
func (p *Place) HasValidCoordinates() bool {
	return p.Location != nil && len(p.Location.Coordinates) >= 2
}

// Popularity 人気スコアを取得する（未設定の場合はデフォルト値）
func (p *Place) Popularity() float64 {
	if p.PopularityScore != nil {
		return *p.PopularityScore
	}
	return DefaultPopularityScore
}

// Fee 入場料を取得する（未設定の場合は0）
func (p *Place) Fee() float64 {
	if p.EntranceFee != nil {
		return *p.EntranceFee
	}
	return 0
}

// VisitMinutes 平均滞在時間を取得する（未設定または非正の場合はデフォルト値）
func (p *Place) VisitMinutes() int {
	if p.AvgVisitMinutes != nil && *p.AvgVisitMinutes > 0 {
		return *p.AvgVisitMinutes
	}
	return DefaultVisitMinutes
}

// Normalize 欠損フィールドにデフォルト値を埋める
func (p *Place) Normalize() {
	if p.PopularityScore == nil {
		score := float64(DefaultPopularityScore)
		p.PopularityScore = &score
	}
	if p.EntranceFee == nil {
		fee := 0.0
		p.EntranceFee = &fee
	}
	if p.AvgVisitMinutes == nil || *p.AvgVisitMinutes <= 0 {
		minutes := DefaultVisitMinutes
		p.AvgVisitMinutes = &minutes
	}
}

// NormalizeCandidates 候補リストを正規化する
// 有効な座標を持たないスポットを除外し、残りにデフォルト値を埋める
// 入力の相対順序は維持する（スコア同点時のタイブレークに使用される）
func NormalizeCandidates(places []*Place) []*Place {
	normalized := make([]*Place, 0, len(places))
	for _, p := range places {
		if p == nil || !p.HasValidCoordinates() {
			continue
		}
		p.Normalize()
		normalized = append(normalized, p)
	}
	return normalized
}
