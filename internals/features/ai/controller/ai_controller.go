// internals/features/ai/controller/ai_controller.go
package controller

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"log"
	"time"

	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp" // registrasi decoder webp untuk image.Decode

	"github.com/disintegration/imaging"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/ai/dto"
	"pesantrenku_backend/internals/features/ai/model"
	"pesantrenku_backend/internals/features/ai/service"
	helper "pesantrenku_backend/internals/helpers"
)

var validate = validator.New()

// Skema ringkas yang diberikan ke LLM supaya SQL-nya mengacu ke tabel nyata.
const skemaRegistri = `Tabel yang tersedia (PostgreSQL):
pesantren(pesantren_id, pesantren_nama, pesantren_provinsi, pesantren_kabupaten, pesantren_kecamatan, pesantren_desa, pesantren_jenjang)
pesantren_skor(pesantren_id, skor_fisik, skor_fasilitas, skor_pendidikan, skor_total, kategori_kelayakan)
pesantren_map(pesantren_id, nama, provinsi, kabupaten, kecamatan, desa, latitude, longitude, skor_terakhir, kategori_kelayakan)
santri(santri_id, santri_pesantren_id, santri_nama, santri_gender, santri_status_mukim)
santri_skor(santri_id, skor_ekonomi, skor_rumah, skor_aset, skor_pembiayaan, skor_kesehatan, skor_bansos, skor_total, kategori_kemiskinan)
santri_map(santri_id, nama, nama_pesantren, provinsi, kabupaten, skor_terakhir, kategori_kemiskinan)`

const promptSQL = `Kamu asisten data registri pesantren. Jawab HANYA dengan satu query SELECT PostgreSQL tanpa penjelasan, tanpa markdown. Jangan pernah menulis data.` + "\n\n" + skemaRegistri

type AIController struct {
	DB  *gorm.DB
	LLM *service.LLMClient
}

func NewAIController(db *gorm.DB) *AIController {
	return &AIController{DB: db, LLM: service.NewLLMClient()}
}

// =============================
// 🤖 POST /api/a/ai/tanya
// =============================
// Pertanyaan bahasa natural → SQL (lewat guard SELECT-only) → jawaban naratif.
func (ctl *AIController) Tanya(c *fiber.Ctx) error {
	var req dto.TanyaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mulai := time.Now()
	ctx := c.Context()

	sqlText, _, err := ctl.LLM.Chat(ctx, promptSQL, req.Pertanyaan)
	if err != nil {
		log.Println("[ERROR] LLM gagal membuat SQL:", err)
		return helper.Error(c, fiber.StatusServiceUnavailable, "Layanan AI sedang tidak tersedia")
	}

	aman, err := service.SanitizeSQL(sqlText)
	if err != nil {
		log.Println("[WARNING] SQL dari LLM ditolak guard:", sqlText)
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Pertanyaan tidak bisa diterjemahkan menjadi query yang aman")
	}

	var hasil []map[string]interface{}
	if err := ctl.DB.WithContext(ctx).Raw(aman).Scan(&hasil).Error; err != nil {
		log.Println("[ERROR] eksekusi SQL AI gagal:", err)
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Query hasil AI gagal dijalankan")
	}

	jawaban, rawResp, err := ctl.LLM.Chat(ctx,
		"Kamu asisten registri pesantren. Jelaskan hasil query berikut dalam bahasa Indonesia yang ringkas.",
		fmt.Sprintf("Pertanyaan: %s\nHasil query: %v", req.Pertanyaan, hasil))
	if err != nil {
		// hasil query tetap berguna walau narasi gagal
		jawaban = ""
	}

	durasi := time.Since(mulai).Milliseconds()
	ctl.catatLog(c, "tanya", req.Pertanyaan, &aman, rawResp, durasi)

	return helper.Success(c, "Pertanyaan berhasil diproses", dto.TanyaResponse{
		Pertanyaan: req.Pertanyaan,
		SQL:        aman,
		Hasil:      hasil,
		Jawaban:    jawaban,
		DurasiMs:   durasi,
	})
}

// =============================
// 🖼️ POST /api/a/ai/analisis
// =============================
// Multipart: field "gambar" (jpeg/png/webp) + "pertanyaan". Gambar diperkecil
// dulu sebelum dikirim supaya payload ke LLM tidak bengkak.
func (ctl *AIController) Analisis(c *fiber.Ctx) error {
	pertanyaan := c.FormValue("pertanyaan")
	if len(pertanyaan) < 5 {
		return helper.Error(c, fiber.StatusBadRequest, "Field pertanyaan wajib diisi (min 5 karakter)")
	}

	fileHeader, err := c.FormFile("gambar")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File gambar wajib diunggah")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File gambar tidak bisa dibaca")
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return helper.Error(c, fiber.StatusUnsupportedMediaType, "Format gambar tidak didukung (pakai jpeg, png, atau webp)")
	}

	// perkecil sisi terpanjang ke 1024px, kirim sebagai JPEG
	img = imaging.Fit(img, 1024, 1024, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		log.Println("[ERROR] encode gambar gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses gambar")
	}
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	mulai := time.Now()
	jawaban, rawResp, err := ctl.LLM.ChatWithImage(c.Context(),
		"Kamu surveyor kelayakan fasilitas pesantren. Analisis foto berikut dan jawab pertanyaannya dalam bahasa Indonesia.",
		pertanyaan, dataURL)
	if err != nil {
		log.Println("[ERROR] LLM analisis gambar gagal:", err)
		return helper.Error(c, fiber.StatusServiceUnavailable, "Layanan AI sedang tidak tersedia")
	}

	durasi := time.Since(mulai).Milliseconds()
	ctl.catatLog(c, "analisis", pertanyaan, nil, rawResp, durasi)

	return helper.Success(c, "Analisis gambar berhasil", dto.AnalisisResponse{
		Pertanyaan: pertanyaan,
		Jawaban:    jawaban,
		DurasiMs:   durasi,
	})
}

func (ctl *AIController) catatLog(c *fiber.Ctx, jenis, prompt string, sqlText *string, rawResp []byte, durasiMs int64) {
	entry := model.AIQueryLogModel{
		AIQueryLogID:     uuid.New(),
		AIQueryLogJenis:  jenis,
		AIQueryLogPrompt: prompt,
		AIQueryLogSQL:    sqlText,
		AIQueryLogDurasi: durasiMs,
	}
	if uid, ok := c.Locals("userID").(string); ok {
		if parsed, err := uuid.Parse(uid); err == nil {
			entry.AIQueryLogUserID = &parsed
		}
	}
	if len(rawResp) > 0 {
		entry.AIQueryLogRespon = rawResp
	}
	if err := ctl.DB.Create(&entry).Error; err != nil {
		log.Println("[WARNING] gagal simpan ai_query_logs:", err)
	}
}
