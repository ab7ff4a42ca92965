package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"TimeTraveler-App/internal/domain/model"
	"TimeTraveler-App/internal/domain/repository"
)

// FirestoreCoursePlanRepository Firestoreを使用したコースプランキャッシュ
// TTLフィールド（expireAt）はFirestore側のTTLポリシーで削除される
type FirestoreCoursePlanRepository struct {
	client *firestore.Client
}

// NewFirestoreCoursePlanRepository 新しいFirestoreCoursePlanRepositoryインスタンスを作成
func NewFirestoreCoursePlanRepository(client *firestore.Client) repository.CoursePlanCacheRepository {
	return &FirestoreCoursePlanRepository{
		client: client,
	}
}

// SaveCoursePlan プランをFirestoreに保存し、払い出したplan_idを返す
func (r *FirestoreCoursePlanRepository) SaveCoursePlan(ctx context.Context, plan *model.CoursePlan, ttlHours int) (string, error) {
	planID := fmt.Sprintf("temp_plan_%s", uuid.New().String())

	firestoreData := plan.ToFirestoreCoursePlan(ttlHours)

	_, err := r.client.Collection("coursePlans").Doc(planID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ Failed to save course plan %s: %v", planID, err)
		return "", fmt.Errorf("コースプランの保存に失敗しました: %w", err)
	}

	log.Printf("✅ Course plan saved: %s (expires in %d hours)", planID, ttlHours)
	return planID, nil
}

// GetCoursePlan 指定されたplan_idのコースプランをFirestoreから取得する
func (r *FirestoreCoursePlanRepository) GetCoursePlan(ctx context.Context, planID string) (*model.CoursePlan, error) {
	doc, err := r.client.Collection("coursePlans").Doc(planID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("コースプランが見つかりません（有効期限切れまたは無効なID）: %s", planID)
		}
		return nil, fmt.Errorf("コースプランの取得に失敗しました: %w", err)
	}

	var firestoreData model.FirestoreCoursePlan
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	log.Printf("✅ Course plan retrieved: %s", planID)
	return firestoreData.ToCoursePlan(planID), nil
}
