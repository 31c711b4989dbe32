package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"YatraPlan-App/internal/domain/model"
	"YatraPlan-App/internal/domain/repository"
)

// TripsService 確定済み旅程に関するビジネスロジックを提供するサービス
type TripsService interface {
	// SaveTrip 計算済みドラフトを旅程として保存する
	SaveTrip(ctx context.Context, req *model.SaveTripRequest) (*model.SaveTripResponse, error)

	// GetTrip 保存済み旅程を取得する
	GetTrip(ctx context.Context, id string) (*model.Trip, error)
}

// tripsServiceImpl TripsServiceの実装
type tripsServiceImpl struct {
	tripsRepo  repository.TripsRepository
	placesRepo repository.PlacesRepository
}

// NewTripsService TripsServiceの新しいインスタンスを作成
func NewTripsService(tripsRepo repository.TripsRepository, placesRepo repository.PlacesRepository) TripsService {
	return &tripsServiceImpl{
		tripsRepo:  tripsRepo,
		placesRepo: placesRepo,
	}
}

// SaveTrip 計算済みドラフトを旅程として保存する
func (s *tripsServiceImpl) SaveTrip(ctx context.Context, req *model.SaveTripRequest) (*model.SaveTripResponse, error) {
	// 入力バリデーション
	if err := s.validateSaveTripRequest(req); err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %w", err)
	}

	// UUIDを生成
	tripID := uuid.New().String()

	// 訪問スポットのIDを抽出（初出順）
	placeIDs := req.VisitedPlaceIDs()

	// 境界ボックス計算用に訪問スポットの座標を取得
	placeLocations, err := s.resolvePlaceLocations(ctx, placeIDs)
	if err != nil {
		return nil, fmt.Errorf("訪問スポットの座標取得失敗: %w", err)
	}

	trip := &model.Trip{
		ID:                 tripID,
		Title:              req.Title,
		PlaceIDs:           placeIDs,
		Days:               req.Totals.Days,
		TotalTravelMinutes: req.Totals.TotalTravelMinutes,
		TotalEntranceFees:  req.Totals.TotalEntranceFees,
		TotalCost:          req.Totals.TotalCost,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	}

	// データベースに保存
	if err := s.tripsRepo.Create(ctx, trip, req.StartLocation, placeLocations); err != nil {
		return nil, fmt.Errorf("旅程の保存失敗: %w", err)
	}

	return &model.SaveTripResponse{
		Status:  "success",
		Message: "旅程を保存しました",
		TripID:  tripID,
	}, nil
}

// GetTrip 保存済み旅程を取得する
func (s *tripsServiceImpl) GetTrip(ctx context.Context, id string) (*model.Trip, error) {
	// IDの形式チェック
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("無効な旅程ID形式: %s", id)
	}

	trip, err := s.tripsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("旅程の取得失敗: %w", err)
	}

	return trip, nil
}

// resolvePlaceLocations 訪問スポットの座標をまとめて取得する
func (s *tripsServiceImpl) resolvePlaceLocations(ctx context.Context, placeIDs []string) ([]model.LatLng, error) {
	if len(placeIDs) == 0 {
		return []model.LatLng{}, nil
	}

	places, err := s.placesRepo.FindByIDs(ctx, placeIDs)
	if err != nil {
		return nil, err
	}

	locations := make([]model.LatLng, 0, len(places))
	for _, place := range places {
		if place.HasValidCoordinates() {
			locations = append(locations, place.ToLatLng())
		}
	}
	return locations, nil
}

// validateSaveTripRequest リクエストのバリデーション
func (s *tripsServiceImpl) validateSaveTripRequest(req *model.SaveTripRequest) error {
	if req.Title == "" {
		return fmt.Errorf("タイトルは必須です")
	}
	if req.StartLocation == nil {
		return fmt.Errorf("開始地点は必須です")
	}
	if len(req.Itinerary) == 0 {
		return fmt.Errorf("旅程が空です")
	}
	return nil
}
