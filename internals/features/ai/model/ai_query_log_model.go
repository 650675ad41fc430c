// internals/features/ai/model/ai_query_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Jejak audit setiap pertanyaan ke LLM: prompt, SQL yang dihasilkan,
// dan respons mentah. Dipakai untuk debugging kualitas jawaban.
type AIQueryLogModel struct {
	AIQueryLogID     uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ai_query_log_id" json:"ai_query_log_id"`
	AIQueryLogUserID *uuid.UUID     `gorm:"type:uuid;column:ai_query_log_user_id" json:"ai_query_log_user_id,omitempty"`
	AIQueryLogJenis  string         `gorm:"type:varchar(20);not null;column:ai_query_log_jenis" json:"ai_query_log_jenis"` // tanya | analisis
	AIQueryLogPrompt string         `gorm:"type:text;not null;column:ai_query_log_prompt" json:"ai_query_log_prompt"`
	AIQueryLogSQL    *string        `gorm:"type:text;column:ai_query_log_sql" json:"ai_query_log_sql,omitempty"`
	AIQueryLogRespon datatypes.JSON `gorm:"type:jsonb;column:ai_query_log_respon" json:"ai_query_log_respon,omitempty"`
	AIQueryLogDurasi int64          `gorm:"column:ai_query_log_durasi_ms" json:"ai_query_log_durasi_ms"`

	AIQueryLogCreatedAt time.Time `gorm:"column:ai_query_log_created_at;autoCreateTime" json:"ai_query_log_created_at"`
}

func (AIQueryLogModel) TableName() string {
	return "ai_query_logs"
}
