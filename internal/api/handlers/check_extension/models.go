package check_extension

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	checkExtension "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_extension"
)

const (
	msgCanExtend         = "Czas jest dostępny! Możesz zmienić procedurę bez zmiany godziny rozpoczęcia."
	msgCanShiftBack      = "Nowa procedura zmieści się, jeśli wizyta zacznie się wcześniej."
	msgDayClosed         = "Salon jest zamknięty w tym dniu."
	msgUnparseableHours  = "Nie można odczytać godzin pracy."
	msgConflict          = "Nie można wydłużyć wizyty na aktualny czas (konflikt z innym terminem). Wybierz nowy termin z kalendarza."
	msgOutsideWorkingDay = "Nie można wydłużyć wizyty na aktualny czas (nowa procedura wykracza poza godziny pracy). Wybierz nowy termin z kalendarza."
)

// CheckExtensionRequest тело запроса
type CheckExtensionRequest struct {
	CurrentStartISO    string `json:"currentStartISO"`
	CurrentEndISO      string `json:"currentEndISO"`
	NewProcedureID     string `json:"newProcedureId"`
	NewDurationMinutes int    `json:"newDurationMinutes,omitempty"`
	MasterID           string `json:"masterId,omitempty"`
}

// ToUseCaseRequest создает запрос use case; время в RFC 3339
func (r CheckExtensionRequest) ToUseCaseRequest(eventID string) (*checkExtension.Request, error) {
	start, err := time.Parse(time.RFC3339, r.CurrentStartISO)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, r.CurrentEndISO)
	if err != nil {
		return nil, err
	}

	return &checkExtension.Request{
		EventID:            eventID,
		CurrentStart:       start,
		CurrentEnd:         end,
		NewProcedureID:     r.NewProcedureID,
		NewDurationMinutes: r.NewDurationMinutes,
		MasterID:           r.MasterID,
	}, nil
}

// CheckExtensionResponse HTTP response model
type CheckExtensionResponse struct {
	Result             Result         `json:"result"`
	CurrentBooking     CurrentBooking `json:"currentBooking"`
	MasterID           string         `json:"masterId"`
	NewDurationMinutes int            `json:"newDurationMinutes"`
}

type Result struct {
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
	Message      string `json:"message"`
	NewEndISO    string `json:"newEndISO,omitempty"`
	Suggested    *Slot  `json:"suggested,omitempty"`
	Alternatives []Slot `json:"alternatives,omitempty"`
}

type CurrentBooking struct {
	StartISO string `json:"startISO"`
	EndISO   string `json:"endISO"`
}

type Slot struct {
	StartISO string `json:"startISO"`
	EndISO   string `json:"endISO"`
}

func fromSlot(s domain.Slot) Slot {
	return Slot{StartISO: handlers.FormatInstant(s.Start), EndISO: handlers.FormatInstant(s.End)}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req CheckExtensionRequest, resp *checkExtension.Response) *CheckExtensionResponse {
	r := resp.Result
	result := Result{
		Status:  string(r.Status),
		Reason:  string(r.Reason),
		Message: message(resp),
	}

	if !r.NewEnd.IsZero() {
		result.NewEndISO = handlers.FormatInstant(r.NewEnd)
	}
	if r.Suggested != nil {
		suggested := fromSlot(*r.Suggested)
		result.Suggested = &suggested
	}
	for _, s := range r.Alternatives {
		result.Alternatives = append(result.Alternatives, fromSlot(s))
	}

	return &CheckExtensionResponse{
		Result: result,
		CurrentBooking: CurrentBooking{
			StartISO: req.CurrentStartISO,
			EndISO:   req.CurrentEndISO,
		},
		MasterID:           resp.Master.ID,
		NewDurationMinutes: resp.NewDurationMinutes,
	}
}

// message текст для клиента салона
func message(resp *checkExtension.Response) string {
	switch resp.Result.Status {
	case availability.StatusCanExtend:
		return msgCanExtend
	case availability.StatusCanShiftBack:
		return msgCanShiftBack
	}

	switch resp.Result.Reason {
	case availability.ExtensionReasonDayClosed:
		if resp.DayReason == availability.ReasonUnparseableHours {
			return msgUnparseableHours
		}
		return msgDayClosed
	case availability.ExtensionReasonOutsideWorkingHours:
		return msgOutsideWorkingDay
	default:
		return msgConflict
	}
}
