package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestNewLogger_Level(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"warn":  logrus.WarnLevel,
		"bogus": logrus.InfoLevel,
		"":      logrus.InfoLevel,
	}
	for in, want := range cases {
		if got := NewLogger(in).GetLevel(); got != want {
			t.Errorf("NewLogger(%q) level = %v, want %v", in, got, want)
		}
	}
}

func TestLogger_WritesRequestLine(t *testing.T) {
	log := NewLogger("info")
	log.SetOutput(io.Discard)
	hook := test.NewLocal(log)

	app := fiber.New()
	app.Use(Logger(log))
	app.Get("/walls/closest", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTeapot)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/walls/closest", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	// Writer логгера читает поток в отдельной горутине
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		for _, e := range hook.AllEntries() {
			if strings.Contains(e.Message, "GET /walls/closest") && strings.Contains(e.Message, "418") {
				return
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("request line not logged, entries: %v", hook.AllEntries())
}
