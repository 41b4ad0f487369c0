package get_procedures

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getProcedures "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_procedures"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type stubUseCase struct {
	resp *getProcedures.Response
	err  error
	got  *getProcedures.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getProcedures.Request) (*getProcedures.Response, error) {
	s.got = req
	return s.resp, s.err
}

func TestHandler_Handle(t *testing.T) {
	uc := &stubUseCase{resp: &getProcedures.Response{
		Master: domain.Master{ID: "juli"},
		Procedures: []domain.Procedure{
			{ID: "mani", NamePL: "Manicure", Category: "nails", DurationMinutes: 60, Price: "120", IsActive: true, Order: ptr.Ptr(1)},
		},
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/procedures?masterId=juli", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "juli", uc.got.MasterID)
	assert.JSONEq(t, `{
		"masterId": "juli",
		"procedures": [{"id":"mani","name_pl":"Manicure","category":"nails","duration_min":60,"price_pln":"120","order":1}]
	}`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: fmt.Errorf("%w: timeout", getProcedures.ErrUpstreamUnavailable), code: http.StatusServiceUnavailable},
		{err: fmt.Errorf("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop())
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/procedures", nil))
		assert.Equal(t, tt.code, rec.Code)
	}
}
