package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlaceDefaults(t *testing.T) {
	t.Run("欠損フィールドはデフォルト値を返す", func(t *testing.T) {
		place := &Place{ID: "p1", Name: "テスト"}

		assert.Equal(t, float64(DefaultPopularityScore), place.Popularity())
		assert.Equal(t, 0.0, place.Fee())
		assert.Equal(t, DefaultVisitMinutes, place.VisitMinutes())
	})

	t.Run("非正の滞在時間はデフォルト値に置き換え", func(t *testing.T) {
		zero := 0
		negative := -30
		assert.Equal(t, DefaultVisitMinutes, (&Place{AvgVisitMinutes: &zero}).VisitMinutes())
		assert.Equal(t, DefaultVisitMinutes, (&Place{AvgVisitMinutes: &negative}).VisitMinutes())
	})

	t.Run("設定済みの値はそのまま返す", func(t *testing.T) {
		popularity := 4.5
		fee := 1000.0
		minutes := 120
		place := &Place{PopularityScore: &popularity, EntranceFee: &fee, AvgVisitMinutes: &minutes}

		assert.Equal(t, 4.5, place.Popularity())
		assert.Equal(t, 1000.0, place.Fee())
		assert.Equal(t, 120, place.VisitMinutes())
	})
}

func TestHasValidCoordinates(t *testing.T) {
	valid := &Place{Location: &Geometry{Type: "Point", Coordinates: []float64{85.3240, 27.7172}}}
	assert.True(t, valid.HasValidCoordinates())

	assert.False(t, (&Place{}).HasValidCoordinates())
	assert.False(t, (&Place{Location: &Geometry{Type: "Point", Coordinates: []float64{85.3240}}}).HasValidCoordinates())
}

func TestNormalizeCandidates(t *testing.T) {
	minutes := 60
	candidates := []*Place{
		{ID: "valid", Location: &Geometry{Type: "Point", Coordinates: []float64{85.32, 27.71}}, AvgVisitMinutes: &minutes},
		nil,
		{ID: "no-location"},
		{ID: "short-coords", Location: &Geometry{Type: "Point", Coordinates: []float64{85.32}}},
		{ID: "valid2", Location: &Geometry{Type: "Point", Coordinates: []float64{85.33, 27.72}}},
	}

	normalized := NormalizeCandidates(candidates)

	// 無効な座標のスポットは除外され、順序は維持される
	assert.Len(t, normalized, 2)
	assert.Equal(t, "valid", normalized[0].ID)
	assert.Equal(t, "valid2", normalized[1].ID)

	// デフォルト値が埋められている
	assert.NotNil(t, normalized[1].PopularityScore)
	assert.Equal(t, float64(DefaultPopularityScore), *normalized[1].PopularityScore)
	assert.NotNil(t, normalized[1].EntranceFee)
	assert.Equal(t, 0.0, *normalized[1].EntranceFee)
	assert.NotNil(t, normalized[1].AvgVisitMinutes)
	assert.Equal(t, DefaultVisitMinutes, *normalized[1].AvgVisitMinutes)

	// 設定済みの値は上書きされない
	assert.Equal(t, 60, *normalized[0].AvgVisitMinutes)
}

func TestItineraryPlaceIDs(t *testing.T) {
	itinerary := &Itinerary{
		Days: []DayPlan{
			{Visits: []ScheduledVisit{{PlaceID: "p1"}, {PlaceID: "p2"}}},
			{Visits: []ScheduledVisit{{PlaceID: "p2"}, {PlaceID: "p3"}}},
			{Visits: []ScheduledVisit{}},
		},
	}

	// 初出順・重複なし
	assert.Equal(t, []string{"p1", "p2", "p3"}, itinerary.PlaceIDs())
}

func TestTripDraftFirestoreConversion(t *testing.T) {
	draft := &TripDraft{
		Itinerary: []DayPlan{{Visits: []ScheduledVisit{{PlaceID: "p1"}}}},
		Places:    []string{"p1"},
		Totals:    ItineraryTotals{Days: 1, TotalEntranceFees: 500, TotalCost: 500},
		StartDate: "2026-03-01",
		EndDate:   "2026-03-01",
	}

	doc := draft.ToFirestoreTripDraft(24)

	assert.Equal(t, draft.Places, doc.Places)
	assert.Equal(t, draft.Totals, doc.Totals)
	// 有効期限はTTL時間後に設定される
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), doc.ExpireAt, time.Minute)

	restored := doc.ToTripDraft("draft_abc")
	assert.Equal(t, "draft_abc", restored.DraftID)
	assert.Equal(t, draft.Itinerary, restored.Itinerary)
	assert.Equal(t, draft.Places, restored.Places)
	assert.Equal(t, draft.StartDate, restored.StartDate)
}
