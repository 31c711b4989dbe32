package database

import (
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

// 実際のSupabase PostgreSQLに接続する統合テスト
// 環境変数が設定されていない場合はスキップする
func TestPostgreSQLClientConnection(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	if os.Getenv("SUPABASE_URL") == "" || os.Getenv("SUPABASE_DB_PASSWORD") == "" {
		t.Skip("SUPABASE_URL / SUPABASE_DB_PASSWORD が未設定のためスキップ")
	}

	client, err := NewPostgreSQLClientWithRetry(3, 2*time.Second)
	assert.NoError(t, err)
	if client == nil {
		return
	}
	defer client.Close()

	assert.NoError(t, client.HealthCheck())
}
