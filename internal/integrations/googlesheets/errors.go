package googlesheets

import "errors"

var (
	// ErrInternal возвращается, если клиент Sheets API не удалось создать
	ErrInternal = errors.New("googlesheets: internal error")

	// ErrRequestFailed возвращается при ошибке запроса к Sheets API
	ErrRequestFailed = errors.New("googlesheets: request failed")

	// ErrHeaderNotFound возвращается, если в листе нет строки заголовков с обязательными колонками
	ErrHeaderNotFound = errors.New("googlesheets: header row not found")

	// ErrMissingSheet возвращается, если у мастера не настроена таблица
	ErrMissingSheet = errors.New("googlesheets: master has no sheet id")
)
