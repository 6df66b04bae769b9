// Package export seçili satırları Excel dosyasına yazar. Export tamamen
// lokaldir; backend'e istek atılmaz.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/onerilhan/tasinmaz-panel/internal/models"
)

// Tasinmazlar seçili taşınmaz satırlarını "Selected Items" sayfasına yazar
func Tasinmazlar(w io.Writer, items []models.Tasinmaz) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Selected Items"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("sayfa oluşturulamadı: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"City", "District", "Neighborhood", "Island", "Parcel", "Quality", "Coordinates"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, item := range items {
		row := []string{
			item.CityName(),
			item.DistrictName(),
			item.NeighborhoodName(),
			item.Island,
			item.Parcel,
			item.Quality,
			item.CoordinateInformation,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// Logs seçili log satırlarını "Logs" sayfasına yazar; tarih dd/MM/yyyy HH:mm
// formatındadır
func Logs(w io.Writer, entries []models.LogEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Logs"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("sayfa oluşturulamadı: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"durum", "islemTip", "aciklama", "kullaniciTip", "tarihveSaat"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, entry := range entries {
		row := []string{
			entry.Durum,
			entry.IslemTip,
			entry.Aciklama,
			entry.KullaniciTip,
			entry.TarihveSaat.Format(models.LogTarihFormati),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("satır yazılamadı: %w", err)
	}
	return nil
}
