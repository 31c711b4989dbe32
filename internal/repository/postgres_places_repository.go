package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"YatraPlan-App/internal/domain/model"
	"YatraPlan-App/internal/domain/repository"
	"YatraPlan-App/internal/infrastructure/database"
)

type PostgresPlacesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPlacesRepository(client *database.PostgreSQLClient) repository.PlacesRepository {
	return &PostgresPlacesRepository{
		client: client,
	}
}

// PlaceResult クエリ結果を受け取るための構造体
type PlaceResult struct {
	ID              string
	Name            string
	Location        sql.NullString
	Category        string
	PopularityScore sql.NullFloat64
	EntranceFee     sql.NullFloat64
	AvgVisitMinutes sql.NullInt64
}

// ToPlace PlaceResultをmodel.Placeに変換
func (pr *PlaceResult) ToPlace() (*model.Place, error) {
	place := &model.Place{
		ID:       pr.ID,
		Name:     pr.Name,
		Category: pr.Category,
	}

	if pr.Location.Valid {
		var location model.Geometry
		if err := json.Unmarshal([]byte(pr.Location.String), &location); err != nil {
			return nil, fmt.Errorf("location JSONBパースエラー: %w", err)
		}
		place.Location = &location
	}

	if pr.PopularityScore.Valid {
		score := pr.PopularityScore.Float64
		place.PopularityScore = &score
	}
	if pr.EntranceFee.Valid {
		fee := pr.EntranceFee.Float64
		place.EntranceFee = &fee
	}
	if pr.AvgVisitMinutes.Valid {
		minutes := int(pr.AvgVisitMinutes.Int64)
		place.AvgVisitMinutes = &minutes
	}

	return place, nil
}

const placeColumns = `id, name, ST_AsGeoJSON(location), category, popularity_score, entrance_fee, avg_visit_minutes`

func (r *PostgresPlacesRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM places WHERE id = $1`, placeColumns)

	row := r.client.DB.QueryRowContext(ctx, query, id)

	var result PlaceResult
	err := row.Scan(&result.ID, &result.Name, &result.Location, &result.Category,
		&result.PopularityScore, &result.EntranceFee, &result.AvgVisitMinutes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("スポットID %s が見つかりません", id)
		}
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}

	return result.ToPlace()
}

func (r *PostgresPlacesRepository) FindByInterests(ctx context.Context, categories []string, limit int) ([]*model.Place, error) {
	if limit <= 0 {
		limit = model.DefaultCandidateFetchLimit
	}

	var rows *sql.Rows
	var err error

	if len(categories) > 0 {
		query := fmt.Sprintf(`SELECT %s FROM places WHERE category = ANY($1) LIMIT $2`, placeColumns)
		rows, err = r.client.DB.QueryContext(ctx, query, pq.Array(categories), limit)
	} else {
		query := fmt.Sprintf(`SELECT %s FROM places LIMIT $1`, placeColumns)
		rows, err = r.client.DB.QueryContext(ctx, query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("カテゴリ別スポットデータの取得失敗: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

func (r *PostgresPlacesRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.Place, error) {
	if len(ids) == 0 {
		return []*model.Place{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM places WHERE id = ANY($1)`, placeColumns)
	rows, err := r.client.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("ID指定スポットデータの取得失敗: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

// scanPlaces クエリ結果の全行をmodel.Placeに変換する
func scanPlaces(rows *sql.Rows) ([]*model.Place, error) {
	var places []*model.Place
	for rows.Next() {
		var result PlaceResult
		err := rows.Scan(&result.ID, &result.Name, &result.Location, &result.Category,
			&result.PopularityScore, &result.EntranceFee, &result.AvgVisitMinutes)
		if err != nil {
			return nil, fmt.Errorf("スポットデータスキャンエラー: %w", err)
		}

		place, err := result.ToPlace()
		if err != nil {
			return nil, err
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("スポットデータ読み取りエラー: %w", err)
	}

	return places, nil
}
