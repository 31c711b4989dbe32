package model

import "time"

// ScheduledVisit は1スポットの訪問予定を表す
type ScheduledVisit struct {
	PlaceID                   string  `json:"place_id"`
	PlaceName                 string  `json:"place_name"`
	StartTime                 string  `json:"start_time"` // HH:MM（タイムゾーンなしの現地時刻）
	EndTime                   string  `json:"end_time"`   // HH:MM
	TravelMinutesFromPrevious int     `json:"travel_minutes_from_previous"`
	DistanceKmFromPrevious    float64 `json:"distance_km_from_previous"` // 小数2桁に丸める
	EntranceFee               float64 `json:"entrance_fee"`
}

// DayPlan は1日分の訪問予定を表す
// Visits は時系列順であり、順序がこのモデルの唯一の保証である（永続IDは持たない）
type DayPlan struct {
	Visits             []ScheduledVisit `json:"visits"`
	TotalTravelMinutes int              `json:"total_travel_minutes"`
	TotalEntranceFees  float64          `json:"total_entrance_fees"`
}

// ItineraryTotals は旅程全体の集計値を表す
type ItineraryTotals struct {
	TotalEntranceFees  float64 `json:"total_entrance_fees"`
	TotalTravelMinutes int     `json:"total_travel_minutes"`
	Days               int     `json:"days"`
	TotalCost          float64 `json:"total_cost"`
}

// Itinerary は日別プランの並び（インデックス = 0始まりの日番号）と全体集計を表す
type Itinerary struct {
	Days   []DayPlan       `json:"days"`
	Totals ItineraryTotals `json:"totals"`
}

// PlaceIDs は旅程全体で参照されるスポットIDを初出順・重複なしで返す
func (it *Itinerary) PlaceIDs() []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, day := range it.Days {
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

// TripDraft は旅程プラン生成の結果（ドラフト）を表す
// このコアは永続化を行わず、保存はドラフトストア経由で呼び出し側が行う
type TripDraft struct {
	DraftID       string              `json:"draft_id,omitempty"` // ドラフトストアに保存された場合のみ付与
	Itinerary     []DayPlan           `json:"itinerary"`
	Places        []string            `json:"places"` // 初出順・重複なしのスポットID一覧
	Totals        ItineraryTotals     `json:"totals"`
	StartLocation *Location           `json:"start_location"`
	Preferences   *PlannerPreferences `json:"preferences"`
	StartDate     string              `json:"start_date,omitempty"`
	EndDate       string              `json:"end_date,omitempty"`
	Budget        *Budget             `json:"budget,omitempty"`
}

// FirestoreTripDraft はFirestoreに保存するドラフトのドキュメント表現
type FirestoreTripDraft struct {
	Itinerary     []DayPlan           `firestore:"itinerary"`
	Places        []string            `firestore:"places"`
	Totals        ItineraryTotals     `firestore:"totals"`
	StartLocation *Location           `firestore:"start_location"`
	Preferences   *PlannerPreferences `firestore:"preferences"`
	StartDate     string              `firestore:"start_date"`
	EndDate       string              `firestore:"end_date"`
	Budget        *Budget             `firestore:"budget"`
	ExpireAt      time.Time           `firestore:"expireAt"`
}

// ToFirestoreTripDraft TripDraft を Firestore 保存用に変換
func (d *TripDraft) ToFirestoreTripDraft(ttlHours int) *FirestoreTripDraft {
	return &FirestoreTripDraft{
		Itinerary:     d.Itinerary,
		Places:        d.Places,
		Totals:        d.Totals,
		StartLocation: d.StartLocation,
		Preferences:   d.Preferences,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Budget:        d.Budget,
		ExpireAt:      time.Now().Add(time.Duration(ttlHours) * time.Hour),
	}
}

// ToTripDraft Firestore ドキュメントから TripDraft に変換
func (fd *FirestoreTripDraft) ToTripDraft(draftID string) *TripDraft {
	return &TripDraft{
		DraftID:       draftID,
		Itinerary:     fd.Itinerary,
		Places:        fd.Places,
		Totals:        fd.Totals,
		StartLocation: fd.StartLocation,
		Preferences:   fd.Preferences,
		StartDate:     fd.StartDate,
		EndDate:       fd.EndDate,
		Budget:        fd.Budget,
	}
}
