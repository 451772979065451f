package feedback

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cleanup-estimator/internal/pkg/common"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"go.uber.org/zap"
)

// createdAtLayout 固定寬度，字串排序即時間排序
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

var schema = []string{`
CREATE TABLE IF NOT EXISTS user_feedback (
	id TEXT PRIMARY KEY,
	recipe_url TEXT NOT NULL,
	estimated_total_time INTEGER NOT NULL,
	actual_total_time INTEGER,
	equipment_feedback TEXT,
	feedback_text TEXT,
	created_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_user_feedback_created_at ON user_feedback (created_at)`,
}

// SQLiteStore 以 SQLite 檔案保存回饋
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore 開啟（必要時建立）資料庫並建立資料表
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create feedback directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("failed to open feedback database: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create feedback schema: %w", err)
		}
	}

	common.LogInfo("回饋資料庫已初始化", zap.String("path", path))
	return &SQLiteStore{db: db}, nil
}

// Save 儲存一筆回饋
func (s *SQLiteStore) Save(ctx context.Context, sub Submission) (*Record, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	rec := &Record{
		ID:                common.GenerateUUID(),
		RecipeURL:         sub.RecipeURL,
		EstimatedTime:     *sub.EstimatedTime,
		ActualTime:        sub.ActualTime,
		EquipmentFeedback: sub.EquipmentFeedback,
		Comments:          sub.Comments,
		CreatedAt:         time.Now().UTC(),
	}

	var equipmentFeedback, comments sql.NullString
	if len(rec.EquipmentFeedback) > 0 {
		equipmentFeedback = sql.NullString{String: string(rec.EquipmentFeedback), Valid: true}
	}
	if rec.Comments != "" {
		comments = sql.NullString{String: rec.Comments, Valid: true}
	}
	var actual sql.NullInt64
	if rec.ActualTime != nil {
		actual = sql.NullInt64{Int64: int64(*rec.ActualTime), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_feedback (id, recipe_url, estimated_total_time, actual_total_time, equipment_feedback, feedback_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.RecipeURL, rec.EstimatedTime, actual, equipmentFeedback, comments,
		rec.CreatedAt.Format(createdAtLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	common.LogInfo("Feedback saved", zap.String("recipe_url", rec.RecipeURL), zap.String("id", rec.ID))
	return rec, nil
}

// List 由新到舊列出回饋
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, recipe_url, estimated_total_time, actual_total_time, equipment_feedback, feedback_text, created_at
		FROM user_feedback
		ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var (
			rec               Record
			actual            sql.NullInt64
			equipmentFeedback sql.NullString
			comments          sql.NullString
			createdAt         string
		)
		if err := rows.Scan(&rec.ID, &rec.RecipeURL, &rec.EstimatedTime, &actual, &equipmentFeedback, &comments, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		if actual.Valid {
			v := int(actual.Int64)
			rec.ActualTime = &v
		}
		if equipmentFeedback.Valid {
			rec.EquipmentFeedback = []byte(equipmentFeedback.String)
		}
		rec.Comments = comments.String
		if t, err := time.Parse(createdAtLayout, createdAt); err == nil {
			rec.CreatedAt = t
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback: %w", err)
	}
	return records, nil
}

// Ping 檢查資料庫連線
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close 關閉資料庫
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
