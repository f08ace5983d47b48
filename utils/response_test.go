package utils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
}

func TestErrorHandlerApiError(t *testing.T) {
	app := newTestApp()
	app.Get("/booked", func(c *fiber.Ctx) error {
		return NewApiError(fiber.StatusBadRequest, "You can not delete the schedule because of the schedule is already booked!")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/booked", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}

	body, _ := io.ReadAll(resp.Body)
	var envelope map[string]interface{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if envelope["success"] != false {
		t.Error("expected success=false in error envelope")
	}
	if envelope["message"] == "" {
		t.Error("expected non-empty message in error envelope")
	}
}

func TestErrorHandlerUnclassified(t *testing.T) {
	app := newTestApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return io.ErrUnexpectedEOF
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusInternalServerError)
	}
}

func TestNotFoundHandler(t *testing.T) {
	app := newTestApp()
	app.Use(NotFoundHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/no/such/route", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}

	body, _ := io.ReadAll(resp.Body)
	var envelope map[string]interface{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if envelope["message"] != "API NOT FOUND!" {
		t.Errorf("message = %v, want API NOT FOUND!", envelope["message"])
	}
}

func TestSendResponseEnvelope(t *testing.T) {
	app := newTestApp()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return SendResponse(c, fiber.StatusOK, "Retrieved successfully!", &Meta{Page: 2, Limit: 5, Total: 11}, []string{"a"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	body, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Meta    *Meta  `json:"meta"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !envelope.Success {
		t.Error("expected success=true")
	}
	if envelope.Meta == nil || envelope.Meta.Page != 2 || envelope.Meta.Limit != 5 || envelope.Meta.Total != 11 {
		t.Errorf("unexpected meta: %+v", envelope.Meta)
	}
}
