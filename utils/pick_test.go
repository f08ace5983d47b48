package utils

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestPickQuery(t *testing.T) {
	app := fiber.New()

	var picked map[string]string
	app.Get("/admins", func(c *fiber.Ctx) error {
		picked = PickQuery(c, []string{"name", "email", "contactNumber"})
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/admins?name=john&role=ADMIN&contactNumber=&email=j%40x.com", nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	want := map[string]string{"name": "john", "email": "j@x.com"}
	if !reflect.DeepEqual(picked, want) {
		t.Errorf("picked = %v, want %v", picked, want)
	}
}
