// internals/features/ai/dto/ai_dto.go
package dto

type TanyaRequest struct {
	Pertanyaan string `json:"pertanyaan" validate:"required,min=5,max=500"`
}

type TanyaResponse struct {
	Pertanyaan string                   `json:"pertanyaan"`
	SQL        string                   `json:"sql"`
	Hasil      []map[string]interface{} `json:"hasil"`
	Jawaban    string                   `json:"jawaban"`
	DurasiMs   int64                    `json:"durasi_ms"`
}

type AnalisisResponse struct {
	Pertanyaan string `json:"pertanyaan"`
	Jawaban    string `json:"jawaban"`
	DurasiMs   int64  `json:"durasi_ms"`
}
