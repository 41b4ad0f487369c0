package googlesheets

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	weeklyColumns     = []string{colWeekday, colHours, colDayOff}
	exceptionColumns  = []string{colDate, colHours, colDayOff, colCategory}
	procedureColumns  = []string{colID, colNamePL, colNameRU, colCategory, colDuration, colPrice, colActive, colOrder}
	exceptionLayouts  = []string{domain.DateFormat, "2.1.2006"}
	nonDigitRe        = regexp.MustCompile(`\D`)
	priceWhitespaceRe = regexp.MustCompile(`\s+`)
)

// weekdayNames английские, польские и русские названия дней недели
var weekdayNames = map[string]string{
	"monday": domain.Monday, "mon": domain.Monday, "poniedziałek": domain.Monday, "poniedzialek": domain.Monday, "понедельник": domain.Monday,
	"tuesday": domain.Tuesday, "tue": domain.Tuesday, "wtorek": domain.Tuesday, "вторник": domain.Tuesday,
	"wednesday": domain.Wednesday, "wed": domain.Wednesday, "środa": domain.Wednesday, "sroda": domain.Wednesday, "среда": domain.Wednesday,
	"thursday": domain.Thursday, "thu": domain.Thursday, "czwartek": domain.Thursday, "четверг": domain.Thursday,
	"friday": domain.Friday, "fri": domain.Friday, "piątek": domain.Friday, "piatek": domain.Friday, "пятница": domain.Friday,
	"saturday": domain.Saturday, "sat": domain.Saturday, "sobota": domain.Saturday, "суббота": domain.Saturday,
	"sunday": domain.Sunday, "sun": domain.Sunday, "niedziela": domain.Sunday, "воскресенье": domain.Sunday,
}

// parseWeekly разбирает лист недельного расписания
// Строки с неизвестным днём недели пропускаются с предупреждением
func parseWeekly(rows [][]string, log Logger) (domain.WeeklySchedule, error) {
	header, headerRow, ok := findHeader(rows, weeklyColumns, colWeekday, colHours)
	if !ok {
		return nil, fmt.Errorf("%w: weekly sheet needs weekday and hours columns", ErrHeaderNotFound)
	}

	weekly := make(domain.WeeklySchedule, 7)
	for i, row := range rows[headerRow+1:] {
		rawDay := header.cell(row, colWeekday)
		if rawDay == "" {
			continue
		}

		day, ok := weekdayNames[strings.ToLower(rawDay)]
		if !ok {
			log.Warn("GoogleSheets: weekly row %d: unknown weekday %q", headerRow+i+2, rawDay)
			continue
		}

		weekly[day] = domain.WorkingHours{
			Hours:    header.cell(row, colHours),
			IsDayOff: parseBool(header.cell(row, colDayOff)),
		}
	}

	return weekly, nil
}

// parseExceptions разбирает лист исключений; даты принимаются как YYYY-MM-DD и DD.MM.YYYY
func parseExceptions(rows [][]string, log Logger) (domain.Exceptions, error) {
	header, headerRow, ok := findHeader(rows, exceptionColumns, colDate)
	if !ok {
		return nil, fmt.Errorf("%w: exceptions sheet needs a date column", ErrHeaderNotFound)
	}

	exceptions := make(domain.Exceptions)
	for i, row := range rows[headerRow+1:] {
		rawDate := header.cell(row, colDate)
		if rawDate == "" {
			continue
		}

		date, err := parseDate(rawDate)
		if err != nil {
			log.Warn("GoogleSheets: exceptions row %d: bad date %q", headerRow+i+2, rawDate)
			continue
		}

		exceptions[date] = domain.WorkingHours{
			Hours:    header.cell(row, colHours),
			IsDayOff: parseBool(header.cell(row, colDayOff)),
			Category: header.cell(row, colCategory),
		}
	}

	return exceptions, nil
}

// parseProcedures разбирает каталог процедур
// Без колонки id идентификатор строится как "<name>-<duration>"
func parseProcedures(rows [][]string, log Logger) ([]domain.Procedure, error) {
	header, headerRow, ok := findHeader(rows, procedureColumns, colNamePL)
	if !ok {
		return nil, fmt.Errorf("%w: procedures sheet needs a name column", ErrHeaderNotFound)
	}

	procedures := make([]domain.Procedure, 0, len(rows)-headerRow-1)
	for i, row := range rows[headerRow+1:] {
		name := header.cell(row, colNamePL)
		id := header.cell(row, colID)
		if name == "" && id == "" {
			continue
		}

		duration := parseNumber(header.cell(row, colDuration))
		if duration <= 0 {
			log.Warn("GoogleSheets: procedures row %d: no duration for %q, using %d min",
				headerRow+i+2, name, domain.DefaultDurationMinutes)
			duration = domain.DefaultDurationMinutes
		}

		if id == "" {
			id = fmt.Sprintf("%s-%d", name, duration)
		}

		active := true
		if header.has(colActive) {
			if raw := header.cell(row, colActive); raw != "" {
				active = parseBool(raw)
			}
		}

		var order *int
		if raw := header.cell(row, colOrder); raw != "" {
			value := parseNumber(raw)
			order = &value
		}

		procedures = append(procedures, domain.Procedure{
			ID:              id,
			NamePL:          name,
			NameRU:          header.cell(row, colNameRU),
			Category:        header.cell(row, colCategory),
			DurationMinutes: duration,
			Price:           NormalizePrice(header.cell(row, colPrice)),
			IsActive:        active,
			Order:           order,
		})
	}

	return procedures, nil
}

// NormalizePrice приводит цену к виду "150", "200-300" или "0"
// Диапазоны сохраняются (en-dash заменяется на дефис, пробелы удаляются), прочие символы отбрасываются
func NormalizePrice(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "0"
	}

	if strings.ContainsAny(trimmed, "-–") {
		return priceWhitespaceRe.ReplaceAllString(strings.ReplaceAll(trimmed, "–", "-"), "")
	}

	value := parseNumber(trimmed)
	if value <= 0 {
		return "0"
	}
	return strconv.Itoa(value)
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "tak", "true", "1", "x", "да":
		return true
	default:
		return false
	}
}

// parseNumber извлекает целое число из строки, отбрасывая все нецифровые символы ("60 min" -> 60)
func parseNumber(raw string) int {
	value, err := strconv.Atoi(nonDigitRe.ReplaceAllString(raw, ""))
	if err != nil {
		return 0
	}
	return value
}

func parseDate(raw string) (string, error) {
	for _, layout := range exceptionLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(domain.DateFormat), nil
		}
	}
	return "", fmt.Errorf("unsupported date format %q", raw)
}
