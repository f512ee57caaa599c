package cli

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-RepairBooking/internal/domain"
	"github.com/m04kA/SMC-RepairBooking/internal/ui/registry"
)

const exportSheet = "Заявки"

var exportHeaders = []interface{}{
	"ID", "Дата", "Время", "Клиент", "Телефон", "Email", "Услуга", "Описание", "Статус", "Создана",
}

// exportXLSX сохраняет загруженный список в Excel файл
// Первая строка - фильтр и счётчики, вторая - заголовки, далее по строке на заявку.
func exportXLSX(path string, view registry.View) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("error renaming sheet: %w", err)
	}

	c := view.Counts
	summary := fmt.Sprintf("Фильтр: %s. Всего: %d, ожидают: %d, подтверждены: %d, завершены: %d, отменены: %d",
		view.Filter.Label(), c.Total, c.Pending, c.Confirmed, c.Completed, c.Cancelled)
	if err := f.SetCellValue(exportSheet, "A1", summary); err != nil {
		return fmt.Errorf("error writing summary: %w", err)
	}

	headers := append([]interface{}(nil), exportHeaders...)
	if err := f.SetSheetRow(exportSheet, "A2", &headers); err != nil {
		return fmt.Errorf("error writing headers: %w", err)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	style, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		_ = f.SetCellStyle(exportSheet, "A2", lastCol+"2", style)
	}

	for i, b := range view.Bookings {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		row := []interface{}{
			b.ID,
			formatDate(b),
			b.BookingTime.String(),
			b.ClientName,
			b.ClientPhone,
			valueOrEmpty(b.ClientEmail),
			valueOrEmpty(b.ServiceType),
			valueOrEmpty(b.Notes),
			domain.PresentStatus(b.Status).Label,
			formatCreatedAt(b),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("error writing booking %d: %w", b.ID, err)
		}
	}

	_ = f.SetColWidth(exportSheet, "B", "E", 16)
	_ = f.SetColWidth(exportSheet, "F", "H", 28)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving %s: %w", path, err)
	}
	return nil
}

func formatCreatedAt(b domain.Booking) string {
	if b.CreatedAt.IsZero() {
		return ""
	}
	return b.CreatedAt.Format(domain.DisplayDateFormat + " 15:04")
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
