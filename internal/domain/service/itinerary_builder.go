package service

import (
	"YatraPlan-App/internal/domain/helper"
	"YatraPlan-App/internal/domain/model"
)

// ItineraryBuilder は候補スポットを日別スケジュールに詰め込む純粋な計算サービス
// I/Oや共有状態を持たず、入力のみから旅程を組み立てる
type ItineraryBuilder struct{}

// NewItineraryBuilder は新しいItineraryBuilderインスタンスを作成する
func NewItineraryBuilder() *ItineraryBuilder {
	return &ItineraryBuilder{}
}

// daySchedule は1日分のスケジューリング途中状態を保持する
// 1日の計算内に閉じたローカル状態であり、日やリクエストをまたいで共有しない
type daySchedule struct {
	visits         []model.ScheduledVisit
	minutesElapsed int
	lastCoordinate model.LatLng
	travelMinutes  int
	entranceFees   float64
}

// BuildItinerary は開始地点・日数・候補リスト・設定から日別の旅程を組み立てる
//
// 貪欲法による日枠詰め込み:
// 候補を優先度順（事前選択がある場合はその順）に走査し、残り時間に収まる
// スポットを順次採用する。収まらない候補は読み飛ばすが走査は打ち切らない
// （より近い後続候補がまだ収まる可能性があるため）。採用済みスポットは
// 旅程全体を通して再利用しない。
func (b *ItineraryBuilder) BuildItinerary(start model.LatLng, dayCount int, candidates []*model.Place, prefs *model.PlannerPreferences) *model.Itinerary {
	if prefs == nil {
		prefs = &model.PlannerPreferences{}
	}
	if dayCount <= 0 {
		dayCount = 1
	}

	dailyStartMinutes := prefs.StartHour() * 60
	dailyWindowMinutes := (prefs.EndHour() - prefs.StartHour()) * 60

	ordered := b.orderCandidates(candidates, prefs)

	used := make(map[string]struct{})
	cursor := start

	itinerary := &model.Itinerary{
		Days: make([]model.DayPlan, 0, dayCount),
	}

	for day := 0; day < dayCount; day++ {
		schedule := b.packDay(ordered, used, cursor, dailyStartMinutes, dailyWindowMinutes)

		itinerary.Days = append(itinerary.Days, model.DayPlan{
			Visits:             schedule.visits,
			TotalTravelMinutes: schedule.travelMinutes,
			TotalEntranceFees:  schedule.entranceFees,
		})

		// 最後に訪問したスポットの位置を翌日に引き継ぐ
		// その日に訪問がなければカーソルは動かさない
		cursor = schedule.lastCoordinate

		itinerary.Totals.TotalTravelMinutes += schedule.travelMinutes
		itinerary.Totals.TotalEntranceFees += schedule.entranceFees
	}

	itinerary.Totals.Days = dayCount
	itinerary.Totals.TotalCost = itinerary.Totals.TotalEntranceFees

	return itinerary
}

// orderCandidates は候補リストを採用順に並べる
// 事前選択IDがある場合はスコアリングを行わず、指定された順序をそのまま使う
func (b *ItineraryBuilder) orderCandidates(candidates []*model.Place, prefs *model.PlannerPreferences) []*model.Place {
	normalized := model.NormalizeCandidates(candidates)

	if prefs.HasLockedPlaces() {
		return helper.FilterByLockedIDs(normalized, prefs.LockedPlaceIDs)
	}

	ordered := make([]*model.Place, len(normalized))
	copy(ordered, normalized)
	helper.SortByScore(ordered, prefs)
	return ordered
}

// packDay は1日分の日枠にスポットを詰め込む
func (b *ItineraryBuilder) packDay(ordered []*model.Place, used map[string]struct{}, cursor model.LatLng, dailyStartMinutes, dailyWindowMinutes int) *daySchedule {
	schedule := &daySchedule{
		visits:         []model.ScheduledVisit{},
		lastCoordinate: cursor,
	}

	if dailyWindowMinutes <= 0 {
		return schedule
	}

	for _, place := range ordered {
		if len(schedule.visits) >= model.MaxVisitsPerDay {
			break
		}
		if _, ok := used[place.ID]; ok {
			continue
		}

		km := helper.HaversineDistance(schedule.lastCoordinate, place.ToLatLng())
		travel := helper.EstimateTravelMinutes(km)
		visit := place.VisitMinutes()

		// 残り時間に収まらない候補は読み飛ばして走査を続ける
		if schedule.minutesElapsed+travel+visit > dailyWindowMinutes {
			continue
		}

		startMinutes := dailyStartMinutes + schedule.minutesElapsed + travel
		endMinutes := startMinutes + visit

		schedule.visits = append(schedule.visits, model.ScheduledVisit{
			PlaceID:                   place.ID,
			PlaceName:                 place.Name,
			StartTime:                 helper.FormatClock(startMinutes),
			EndTime:                   helper.FormatClock(endMinutes),
			TravelMinutesFromPrevious: travel,
			DistanceKmFromPrevious:    helper.RoundKm(km),
			EntranceFee:               place.Fee(),
		})

		schedule.minutesElapsed += travel + visit
		schedule.lastCoordinate = place.ToLatLng()
		schedule.travelMinutes += travel
		schedule.entranceFees += place.Fee()
		used[place.ID] = struct{}{}
	}

	return schedule
}
