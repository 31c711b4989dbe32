package repository

import (
	"context"

	"YatraPlan-App/internal/domain/model"
)

// PlacesRepository は候補スポットの取得を担うコラボレーター
// 返却リストの順序は保証されない（スケジューラ側で並べ替える）
type PlacesRepository interface {
	GetByID(ctx context.Context, id string) (*model.Place, error)
	// FindByInterests は興味カテゴリに一致するスポットを上限件数まで取得する
	// categoriesが空の場合は全カテゴリを対象とする
	FindByInterests(ctx context.Context, categories []string, limit int) ([]*model.Place, error)
	// FindByIDs は指定されたIDのスポットをまとめて取得する
	FindByIDs(ctx context.Context, ids []string) ([]*model.Place, error)
}
