package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"YatraPlan-App/internal/database"
	"YatraPlan-App/internal/domain/model"
	"YatraPlan-App/internal/domain/repository"
)

type SupabasePlacesRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePlacesRepository(client *database.SupabaseClient) repository.PlacesRepository {
	return &SupabasePlacesRepository{
		client: client,
	}
}

func (r *SupabasePlacesRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	var places []model.Place
	data, count, err := r.client.GetClient().From("places").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &places); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	if len(places) == 0 {
		return nil, fmt.Errorf("スポットID %s が見つかりません", id)
	}

	return &places[0], nil
}

func (r *SupabasePlacesRepository) FindByInterests(ctx context.Context, categories []string, limit int) ([]*model.Place, error) {
	if limit <= 0 {
		limit = model.DefaultCandidateFetchLimit
	}

	query := r.client.GetClient().From("places").Select("*", "exact", false)
	if len(categories) > 0 {
		query = query.In("category", categories)
	}

	data, count, err := query.Limit(limit, "").Execute()
	if err != nil {
		return nil, fmt.Errorf("カテゴリ別スポットデータの取得失敗: %w", err)
	}
	_ = count

	var places []model.Place
	if err := json.Unmarshal([]byte(data), &places); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	// ポインタスライスに変換
	var result []*model.Place
	for i := range places {
		result = append(result, &places[i])
	}

	return result, nil
}

func (r *SupabasePlacesRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.Place, error) {
	if len(ids) == 0 {
		return []*model.Place{}, nil
	}

	data, count, err := r.client.GetClient().From("places").
		Select("*", "exact", false).
		In("id", ids).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("ID指定スポットデータの取得失敗: %w", err)
	}
	_ = count

	var places []model.Place
	if err := json.Unmarshal([]byte(data), &places); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	var result []*model.Place
	for i := range places {
		result = append(result, &places[i])
	}

	return result, nil
}
