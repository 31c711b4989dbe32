package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"YatraPlan-App/internal/domain/model"
	"YatraPlan-App/internal/domain/repository"
	"YatraPlan-App/internal/domain/service"
)

// ドラフトをFirestoreに保持する時間（時間単位）
const draftTTLHours = 24

// dateLayout 日付パラメータのフォーマット（YYYY-MM-DD）
const dateLayout = "2006-01-02"

type TripPlanUseCase interface {
	// PlanTrip はリクエストに基づいて旅程ドラフトを生成する
	// ドラフトストアが設定されている場合は保存してdraft_idを付与する
	PlanTrip(ctx context.Context, req *model.TripPlanRequest) (*model.TripDraft, error)

	// GetTripDraft は指定されたdraft_idのドラフトをストアから取得する
	GetTripDraft(ctx context.Context, draftID string) (*model.TripDraft, error)
}

// tripPlanUseCaseImpl はTripPlanUseCaseの実装
type tripPlanUseCaseImpl struct {
	placesRepo repository.PlacesRepository
	builder    *service.ItineraryBuilder
	draftRepo  repository.TripDraftRepository // nil指定可（ドラフト保存なしで動作する）
}

// NewTripPlanUseCase は新しいTripPlanUseCaseインスタンスを作成
func NewTripPlanUseCase(placesRepo repository.PlacesRepository, builder *service.ItineraryBuilder, draftRepo repository.TripDraftRepository) TripPlanUseCase {
	return &tripPlanUseCaseImpl{
		placesRepo: placesRepo,
		builder:    builder,
		draftRepo:  draftRepo,
	}
}

// PlanTrip はリクエストに基づいて旅程ドラフトを生成する
func (u *tripPlanUseCaseImpl) PlanTrip(ctx context.Context, req *model.TripPlanRequest) (*model.TripDraft, error) {
	if req.StartLocation == nil {
		return nil, errors.New("開始地点の座標が指定されていません [lon,lat]")
	}

	prefs := req.GetPreferences()

	dayCount, err := ResolveDayCount(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	log.Printf("🚀 旅程プラン生成開始 (日数: %d, 興味: %v, 事前選択: %d件)", dayCount, prefs.GetInterests(), len(prefs.LockedPlaceIDs))

	// Step 1: 候補スポットを取得
	// 事前選択がある場合はそのIDのみを取得し、スコアリングは行わない
	var candidates []*model.Place
	if prefs.HasLockedPlaces() {
		candidates, err = u.placesRepo.FindByIDs(ctx, prefs.LockedPlaceIDs)
	} else {
		candidates, err = u.placesRepo.FindByInterests(ctx, prefs.GetInterests(), model.DefaultCandidateFetchLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("候補スポットの取得に失敗: %w", err)
	}

	log.Printf("✅ %d件の候補スポットを取得", len(candidates))

	// Step 2: 旅程を組み立てる（純粋計算）
	itinerary := u.builder.BuildItinerary(req.StartLatLng(), dayCount, candidates, prefs)

	draft := &model.TripDraft{
		Itinerary:     itinerary.Days,
		Places:        itinerary.PlaceIDs(),
		Totals:        itinerary.Totals,
		StartLocation: req.StartLocation,
		Preferences:   prefs,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Budget:        req.Budget,
	}

	// Step 3: ドラフトストアが設定されていれば保存してIDを付与
	if u.draftRepo != nil {
		draftID, err := u.draftRepo.SaveTripDraft(ctx, draft, draftTTLHours)
		if err != nil {
			return nil, fmt.Errorf("ドラフトの保存に失敗: %w", err)
		}
		draft.DraftID = draftID
	}

	log.Printf("🎉 旅程プラン生成完了 (%d日, %dスポット)", dayCount, len(draft.Places))

	return draft, nil
}

// GetTripDraft は指定されたdraft_idのドラフトをストアから取得する
func (u *tripPlanUseCaseImpl) GetTripDraft(ctx context.Context, draftID string) (*model.TripDraft, error) {
	if u.draftRepo == nil {
		return nil, errors.New("ドラフトストアが設定されていません")
	}

	draft, err := u.draftRepo.GetTripDraft(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("ドラフトの取得に失敗: %w", err)
	}

	return draft, nil
}

// ResolveDayCount は開始日・終了日から旅程日数を解決する
// 両方未指定の場合は1日とする。日数は最低1にクランプされる
func ResolveDayCount(startDate, endDate string) (int, error) {
	if startDate == "" || endDate == "" {
		return 1, nil
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, fmt.Errorf("開始日の形式が正しくありません（YYYY-MM-DD）: %s", startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, fmt.Errorf("終了日の形式が正しくありません（YYYY-MM-DD）: %s", endDate)
	}

	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if days < 1 {
		days = 1
	}
	return days, nil
}
