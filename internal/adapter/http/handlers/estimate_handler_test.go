package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quickestimate/internal/adapter/http/handlers/mocks"
	"quickestimate/internal/domain/entities"
	"quickestimate/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (string, map[string]any) {
	t.Helper()
	var body struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body.Code, body.Details
}

func TestEstimateHandler_GeneratePDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IEstimateUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/generate-pdf", NewEstimateHandler(uc).GeneratePDF)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		w := postJSON(newRouter(uc), "/generate-pdf", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code, _ := decodeError(t, w); code != "INVALID_ESTIMATE_INPUT" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("non numeric price names the field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		w := postJSON(newRouter(uc), "/generate-pdf", `{"Items":[{"Description":"x","Quantity":1,"Unit Price":"fifty"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		code, details := decodeError(t, w)
		if code != "INVALID_ESTIMATE_FIELD" || details["field"] != "items[0].unit_price" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("out of range numbers are rejected before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		for _, body := range []string{
			`{"Items":[{"Quantity":1e2000000000,"Unit Price":1e2000000000}]}`,
			`{"Items":[{"Quantity":1,"Unit Price":1e20000000}]}`,
		} {
			w := postJSON(newRouter(uc), "/generate-pdf", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", body, w.Code)
			}
			code, details := decodeError(t, w)
			if code != "INVALID_ESTIMATE_FIELD" || details["reason"] != "out of range" {
				t.Fatalf("unexpected error body: %s", w.Body.String())
			}
		}
	})

	t.Run("opaque text body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		w := postJSON(newRouter(uc), "/generate-pdf", `"sorry, no estimate here"`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		uc.EXPECT().GeneratePDF(gomock.Any(), gomock.Any()).Return(entities.EstimateDocument{}, nil, usecase.ErrRenderFailed)

		w := postJSON(newRouter(uc), "/generate-pdf", `{"Client Name":"Acme"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") == "application/pdf" {
			t.Fatalf("no pdf bytes may be written on failure")
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		uc.EXPECT().GeneratePDF(gomock.Any(), gomock.AssignableToTypeOf(entities.EstimateRecord{})).DoAndReturn(
			func(_ context.Context, rec entities.EstimateRecord) (entities.EstimateDocument, []byte, error) {
				if rec.ClientName != "Acme" || len(rec.Items) != 1 {
					t.Fatalf("unexpected record: %+v", rec)
				}
				if !rec.Items[0].Total().Equal(decimal.NewFromInt(100)) {
					t.Fatalf("unexpected line total %s", rec.Items[0].Total())
				}
				return entities.EstimateDocument{EstimateID: "EST-20250101-000000-AAAAAAAA"}, []byte("%PDF-1.3"), nil
			},
		)

		w := postJSON(newRouter(uc), "/generate-pdf", `{"Client Name":"Acme","Items":[{"Description":"Paint wall","Quantity":2,"Unit Price":50}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "application/pdf" {
			t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
		}
		if w.Header().Get("Content-Disposition") != "attachment; filename=estimate.pdf" {
			t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
		}
		if w.Header().Get("X-Estimate-ID") != "EST-20250101-000000-AAAAAAAA" {
			t.Fatalf("missing estimate id header")
		}
		if w.Body.String() != "%PDF-1.3" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(errors.New("boom")); got.HTTPStatus != http.StatusInternalServerError || got.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
}
