package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"YatraPlan-App/internal/database"
	"YatraPlan-App/internal/domain/model"
	"YatraPlan-App/internal/domain/repository"
)

type SupabaseTripsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseTripsRepository(client *database.SupabaseClient) repository.TripsRepository {
	return &SupabaseTripsRepository{
		client: client,
	}
}

func (r *SupabaseTripsRepository) Create(ctx context.Context, trip *model.Trip, startLocation *model.Location, placeLocations []model.LatLng) error {
	// Trip を DB 保存用の形式に変換（地理情報を含む）
	tripDB := TripToTripDB(trip, startLocation, placeLocations)

	data, err := json.Marshal(tripDB)
	if err != nil {
		return fmt.Errorf("旅程データのJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("trips").Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("旅程データの作成失敗: %w", err)
	}

	return nil
}

func (r *SupabaseTripsRepository) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	var trips []model.Trip
	data, count, err := r.client.GetClient().From("trips").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("旅程データの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &trips); err != nil {
		return nil, fmt.Errorf("旅程データのJSONアンマーシャル失敗: %w", err)
	}

	if len(trips) == 0 {
		return nil, fmt.Errorf("旅程ID %s が見つかりません", id)
	}

	return &trips[0], nil
}
