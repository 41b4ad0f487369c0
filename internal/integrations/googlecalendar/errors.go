package googlecalendar

import "errors"

var (
	// ErrInternal возвращается, если клиент Calendar API не удалось создать
	ErrInternal = errors.New("googlecalendar: internal error")

	// ErrRequestFailed возвращается при ошибке запроса к Calendar API
	ErrRequestFailed = errors.New("googlecalendar: request failed")

	errMissingTime = errors.New("event has neither dateTime nor date")
)
