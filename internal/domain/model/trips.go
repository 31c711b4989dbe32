package model

import "time"

// Trip は旅行者が確定して保存した旅程を表す
type Trip struct {
	ID                 string    `json:"id" db:"id"`                                     // ユニークな旅程ID
	Title              string    `json:"title" db:"title"`                               // 旅程タイトル
	PlaceIDs           []string  `json:"place_ids" db:"place_ids"`                       // 訪問予定スポットのID配列（初出順）
	Days               int       `json:"days" db:"days"`                                 // 日数
	TotalTravelMinutes int       `json:"total_travel_minutes" db:"total_travel_minutes"` // 総移動時間（分）
	TotalEntranceFees  float64   `json:"total_entrance_fees" db:"total_entrance_fees"`   // 総入場料
	TotalCost          float64   `json:"total_cost" db:"total_cost"`                     // 総費用
	StartDate          string    `json:"start_date" db:"start_date"`                     // 開始日（YYYY-MM-DD）
	EndDate            string    `json:"end_date" db:"end_date"`                         // 終了日（YYYY-MM-DD）
	CreatedAt          time.Time `json:"created_at" db:"created_at"`                     // 保存日時
}

// SaveTripRequest は計算済みドラフトを旅程として保存するリクエスト
type SaveTripRequest struct {
	Title         string              `json:"title" validate:"required"`
	StartLocation *Location           `json:"start_location" validate:"required"`
	Itinerary     []DayPlan           `json:"itinerary" validate:"required"`
	Totals        ItineraryTotals     `json:"totals"`
	Preferences   *PlannerPreferences `json:"preferences"`
	StartDate     string              `json:"start_date,omitempty"`
	EndDate       string              `json:"end_date,omitempty"`
}

// SaveTripResponse は旅程保存の結果
type SaveTripResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	TripID  string `json:"trip_id"`
}

// VisitedPlaceIDs は旅程に含まれるスポットIDを初出順・重複なしで返す
func (req *SaveTripRequest) VisitedPlaceIDs() []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, day := range req.Itinerary {
		for _, visit := range day.Visits {
			if _, ok := seen[visit.PlaceID]; ok {
				continue
			}
			seen[visit.PlaceID] = struct{}{}
			ids = append(ids, visit.PlaceID)
		}
	}
	return ids
}
