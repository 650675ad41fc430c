package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pesantrenku_backend/internals/features/peta/model"
)

func TestNewPesantrenFeatureUrutanKoordinat(t *testing.T) {
	f := NewPesantrenFeature(model.PesantrenMapModel{
		PesantrenID:       uuid.New(),
		Nama:              "Pesantren Nurul Huda",
		Latitude:          -6.9147,
		Longitude:         107.6098,
		SkorTerakhir:      88,
		KategoriKelayakan: "layak",
	})

	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, "Point", f.Geometry.Type)
	// GeoJSON: [longitude, latitude]
	assert.Equal(t, 107.6098, f.Geometry.Coordinates[0])
	assert.Equal(t, -6.9147, f.Geometry.Coordinates[1])
	assert.Equal(t, 88, f.Properties["skor_terakhir"])
}

func TestNewFeatureCollectionKosong(t *testing.T) {
	fc := NewFeatureCollection(nil)
	assert.Equal(t, "FeatureCollection", fc.Type)
	// harus slice kosong, bukan nil, supaya JSON-nya "features": []
	assert.NotNil(t, fc.Features)
	assert.Len(t, fc.Features, 0)
}
