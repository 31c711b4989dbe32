package repository

import (
	"context"

	"YatraPlan-App/internal/domain/model"
)

// TripsRepository は確定済み旅程の永続化を担う
// placeLocations は訪問スポットの座標列で、保存時の境界ボックス計算に使用する
type TripsRepository interface {
	Create(ctx context.Context, trip *model.Trip, startLocation *model.Location, placeLocations []model.LatLng) error
	GetByID(ctx context.Context, id string) (*model.Trip, error)
}
