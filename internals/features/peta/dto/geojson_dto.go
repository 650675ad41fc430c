// internals/features/peta/dto/geojson_dto.go
package dto

import (
	"pesantrenku_backend/internals/features/peta/model"
)

/* =========================================================
   GEOJSON (RFC 7946)
   Koordinat urutannya [longitude, latitude].
   ========================================================= */

type GeoJSONGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type GeoJSONFeature struct {
	Type       string                 `json:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type GeoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []GeoJSONFeature `json:"features"`
}

func NewFeatureCollection(features []GeoJSONFeature) GeoJSONFeatureCollection {
	if features == nil {
		features = []GeoJSONFeature{}
	}
	return GeoJSONFeatureCollection{Type: "FeatureCollection", Features: features}
}

func NewPesantrenFeature(m model.PesantrenMapModel) GeoJSONFeature {
	return GeoJSONFeature{
		Type: "Feature",
		Geometry: GeoJSONGeometry{
			Type:        "Point",
			Coordinates: [2]float64{m.Longitude, m.Latitude},
		},
		Properties: map[string]interface{}{
			"pesantren_id":       m.PesantrenID,
			"nama":               m.Nama,
			"provinsi":           m.Provinsi,
			"kabupaten":          m.Kabupaten,
			"kecamatan":          m.Kecamatan,
			"desa":               m.Desa,
			"skor_terakhir":      m.SkorTerakhir,
			"kategori_kelayakan": m.KategoriKelayakan,
		},
	}
}

func NewSantriFeature(m model.SantriMapModel) GeoJSONFeature {
	return GeoJSONFeature{
		Type: "Feature",
		Geometry: GeoJSONGeometry{
			Type:        "Point",
			Coordinates: [2]float64{m.Longitude, m.Latitude},
		},
		Properties: map[string]interface{}{
			"santri_id":           m.SantriID,
			"nama":                m.Nama,
			"nama_pesantren":      m.NamaPesantren,
			"provinsi":            m.Provinsi,
			"kabupaten":           m.Kabupaten,
			"kecamatan":           m.Kecamatan,
			"desa":                m.Desa,
			"skor_terakhir":       m.SkorTerakhir,
			"kategori_kemiskinan": m.KategoriKemiskinan,
		},
	}
}

/* =========================================================
   CHOROPLETH
   ========================================================= */

// Satu baris agregat per wilayah; dipakai frontend untuk pewarnaan peta.
type PesantrenChoroplethItem struct {
	Wilayah          string  `json:"wilayah"`
	Jumlah           int64   `json:"jumlah"`
	RataSkor         float64 `json:"rata_skor"`
	JumlahLayak      int64   `json:"jumlah_layak"`
	JumlahCukupLayak int64   `json:"jumlah_cukup_layak"`
	JumlahTidakLayak int64   `json:"jumlah_tidak_layak"`
}

type SantriChoroplethItem struct {
	Wilayah            string  `json:"wilayah"`
	Jumlah             int64   `json:"jumlah"`
	RataSkor           float64 `json:"rata_skor"`
	JumlahSangatMiskin int64   `json:"jumlah_sangat_miskin"`
	JumlahMiskin       int64   `json:"jumlah_miskin"`
	JumlahRentanMiskin int64   `json:"jumlah_rentan_miskin"`
	JumlahTidakMiskin  int64   `json:"jumlah_tidak_miskin"`
}
