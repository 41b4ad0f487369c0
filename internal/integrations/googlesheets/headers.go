package googlesheets

import (
	"strings"
	"unicode"
)

// Колонки листов
const (
	colWeekday  = "weekday"
	colHours    = "hours"
	colDayOff   = "is_day_off"
	colDate     = "date"
	colCategory = "category"
	colID       = "id"
	colNamePL   = "name_pl"
	colNameRU   = "name_ru"
	colDuration = "duration_min"
	colPrice    = "price_pln"
	colActive   = "is_active"
	colOrder    = "order"
)

// headerSynonyms варианты подписей колонок (английские, польские, русские), уже нормализованные
var headerSynonyms = map[string][]string{
	colWeekday:  {"weekday", "day", "day_of_week", "dzien", "dzień", "dzien_tygodnia", "dzień_tygodnia", "день", "день_недели"},
	colHours:    {"hours", "working_hours", "godziny", "godziny_pracy", "часы", "часы_работы"},
	colDayOff:   {"is_day_off", "day_off", "dayoff", "off", "wolne", "dzien_wolny", "dzień_wolny", "выходной"},
	colDate:     {"date", "data", "дата"},
	colCategory: {"category", "kategoria", "категория"},
	colID:       {"id"},
	colNamePL:   {"name_pl", "name", "nazwa", "nazwa_pl"},
	colNameRU:   {"name_ru", "nazwa_ru", "название"},
	colDuration: {"duration_min", "duration", "czas", "czas_min", "длительность"},
	colPrice:    {"price_pln", "price", "cena", "цена"},
	colActive:   {"is_active", "active", "aktywna", "aktywny", "активна"},
	colOrder:    {"order", "sort", "kolejnosc", "kolejność", "порядок"},
}

// headerScanRows сколько первых строк просматривается в поисках заголовка
const headerScanRows = 10

// normalizeHeader приводит подпись к виду "lower_snake": "Dzień wolny" -> "dzień_wolny"
func normalizeHeader(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(s)), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_' || r == '.' || r == '(' || r == ')'
	})
	return strings.Join(fields, "_")
}

// columnIndex индекс колонок листа; отсутствующая колонка = -1
type columnIndex map[string]int

func (c columnIndex) has(col string) bool {
	idx, ok := c[col]
	return ok && idx >= 0
}

// cell возвращает значение колонки в строке или "" (строки в Sheets API обрезаются по последней непустой ячейке)
func (c columnIndex) cell(row []string, col string) string {
	idx, ok := c[col]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// indexHeader сопоставляет ячейки заголовка с известными колонками
func indexHeader(header []string, columns []string) columnIndex {
	index := make(columnIndex, len(columns))
	for _, col := range columns {
		index[col] = -1
	}

	for i, raw := range header {
		name := normalizeHeader(raw)
		if name == "" {
			continue
		}
		for _, col := range columns {
			if index[col] >= 0 {
				continue
			}
			for _, synonym := range headerSynonyms[col] {
				if name == synonym {
					index[col] = i
					break
				}
			}
		}
	}

	return index
}

// findHeader ищет строку заголовка, содержащую все обязательные колонки
// Возвращает индекс колонок и номер строки заголовка
func findHeader(rows [][]string, columns []string, required ...string) (columnIndex, int, bool) {
	limit := min(len(rows), headerScanRows)
	for i := 0; i < limit; i++ {
		index := indexHeader(rows[i], columns)
		found := true
		for _, col := range required {
			if !index.has(col) {
				found = false
				break
			}
		}
		if found {
			return index, i, true
		}
	}
	return nil, 0, false
}
