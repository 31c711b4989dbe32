package repository

import (
	"context"

	"YatraPlan-App/internal/domain/model"
)

// TripDraftRepository は計算済みドラフトの一時保存を担う
type TripDraftRepository interface {
	// SaveTripDraft はドラフトをTTL付きで保存し、発行したdraft_idを返す
	SaveTripDraft(ctx context.Context, draft *model.TripDraft, ttlHours int) (string, error)
	// GetTripDraft は指定されたdraft_idのドラフトを取得する
	GetTripDraft(ctx context.Context, draftID string) (*model.TripDraft, error)
}
