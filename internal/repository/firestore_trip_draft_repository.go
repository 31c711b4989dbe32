package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"YatraPlan-App/internal/domain/model"
	"YatraPlan-App/internal/domain/repository"
)

// FirestoreTripDraftRepository Firestoreを使用したドラフト一時保存リポジトリ
type FirestoreTripDraftRepository struct {
	client *firestore.Client
}

// NewFirestoreTripDraftRepository 新しいFirestoreTripDraftRepositoryインスタンスを作成
func NewFirestoreTripDraftRepository(client *firestore.Client) repository.TripDraftRepository {
	return &FirestoreTripDraftRepository{
		client: client,
	}
}

// SaveTripDraft はドラフトをTTL付きでFirestoreに保存し、draft_idを生成して返す
func (r *FirestoreTripDraftRepository) SaveTripDraft(ctx context.Context, draft *model.TripDraft, ttlHours int) (string, error) {
	draftID := fmt.Sprintf("draft_%s", uuid.New().String())

	firestoreData := draft.ToFirestoreTripDraft(ttlHours)

	_, err := r.client.Collection("tripDrafts").Doc(draftID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ Failed to save trip draft %s: %v", draftID, err)
		return "", fmt.Errorf("ドラフトの保存に失敗しました: %w", err)
	}

	log.Printf("✅ Trip draft saved: %s (expires in %d hours)", draftID, ttlHours)
	return draftID, nil
}

// GetTripDraft は指定されたdraft_idのドラフトをFirestoreから取得する
func (r *FirestoreTripDraftRepository) GetTripDraft(ctx context.Context, draftID string) (*model.TripDraft, error) {
	doc, err := r.client.Collection("tripDrafts").Doc(draftID).Get(ctx)
	if err != nil {
		// Firestoreのエラータイプをチェック
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("ドラフトが見つかりません（有効期限切れまたは無効なID）: %s", draftID)
		}
		return nil, fmt.Errorf("ドラフトの取得に失敗しました: %w", err)
	}

	var firestoreData model.FirestoreTripDraft
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	return firestoreData.ToTripDraft(draftID), nil
}
