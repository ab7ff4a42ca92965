package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreClient Firestoreクライアントのラッパー
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient 新しいFirestoreクライアントを作成
// Cloud Run上ではデフォルト認証、ローカルでは認証情報ファイルを使う
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	var client *firestore.Client
	var err error

	// Cloud Run環境の検出
	isCloudRun := os.Getenv("K_SERVICE") != "" || os.Getenv("PORT") != ""

	if isCloudRun {
		client, err = firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to create Firestore client with default auth: %w", err)
		}
		log.Printf("✅ Firestore client initialized for project: %s (Cloud Run default auth)", projectID)
	} else {
		credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")

		if credentialsFile == "" {
			credentialsFile = "timetraveler-firestore-key.json"
		}

		if _, fileErr := os.Stat(credentialsFile); fileErr != nil {
			log.Printf("⚠️ Credentials file not found: %s, trying with default authentication", credentialsFile)
			client, err = firestore.NewClient(ctx, projectID)
		} else {
			log.Printf("📄 Using credentials file: %s", credentialsFile)
			opt := option.WithCredentialsFile(credentialsFile)
			client, err = firestore.NewClient(ctx, projectID, opt)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to create Firestore client: %w", err)
		}
		log.Printf("✅ Firestore client initialized for project: %s", projectID)
	}

	return &FirestoreClient{client: client}, nil
}

// Close クライアントを閉じる
func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

// GetClient Firestoreクライアントを取得
func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
