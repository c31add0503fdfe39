package controller

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"thaipk_backend/internals/features/line/subscription/model"
	"thaipk_backend/internals/helpers/line"
)

const testSecret = "channel-secret"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.LineSubscriptionModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	// token left empty so replies are skipped in tests
	ctrl := NewWebhookController(db, line.New(""), testSecret)
	app.Post("/line/webhook", ctrl.HandleWebhook)
	return app, db
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, app *fiber.App, body []byte, signature string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/line/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Line-Signature", signature)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func messageEvent(text, userID string) []byte {
	return []byte(`{"events":[{"type":"message","replyToken":"rt","source":{"type":"user","userId":"` + userID + `"},"message":{"type":"text","text":"` + text + `"}}]}`)
}

func countSubs(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.LineSubscriptionModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWebhookMissingSignature(t *testing.T) {
	app, db := newTestApp(t)
	resp := postWebhook(t, app, messageEvent("รับแจ้งเตือน", "U1"), "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if countSubs(t, db) != 0 {
		t.Fatal("unsigned request mutated the database")
	}
}

func TestWebhookInvalidSignature(t *testing.T) {
	app, db := newTestApp(t)
	body := messageEvent("รับแจ้งเตือน", "U1")
	resp := postWebhook(t, app, body, sign("wrong-secret", body))
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if countSubs(t, db) != 0 {
		t.Fatal("forged request mutated the database")
	}
}

func TestWebhookSubscribeIsIdempotent(t *testing.T) {
	app, db := newTestApp(t)
	body := messageEvent("รับแจ้งเตือน", "U1")

	for i := 0; i < 2; i++ {
		resp := postWebhook(t, app, body, sign(testSecret, body))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("attempt %d status = %d", i, resp.StatusCode)
		}
	}
	if n := countSubs(t, db); n != 1 {
		t.Fatalf("subscriptions = %d, want 1", n)
	}

	var sub model.LineSubscriptionModel
	if err := db.First(&sub).Error; err != nil {
		t.Fatalf("load sub: %v", err)
	}
	if sub.LineSubscriptionUserID != "U1" {
		t.Fatalf("user id = %q", sub.LineSubscriptionUserID)
	}
}

func TestWebhookUnsubscribe(t *testing.T) {
	app, db := newTestApp(t)

	sub := messageEvent("รับแจ้งเตือน", "U9")
	postWebhook(t, app, sub, sign(testSecret, sub))
	if countSubs(t, db) != 1 {
		t.Fatal("subscribe failed")
	}

	unsub := messageEvent("ยกเลิกแจ้งเตือน", "U9")
	resp := postWebhook(t, app, unsub, sign(testSecret, unsub))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if countSubs(t, db) != 0 {
		t.Fatal("unsubscribe did not remove the row")
	}
}

func TestWebhookGroupSourceUsesGroupID(t *testing.T) {
	app, db := newTestApp(t)
	body := []byte(`{"events":[{"type":"message","replyToken":"rt","source":{"type":"group","groupId":"G42","userId":"U1"},"message":{"type":"text","text":"รับแจ้งเตือน"}}]}`)
	resp := postWebhook(t, app, body, sign(testSecret, body))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var subRow model.LineSubscriptionModel
	if err := db.First(&subRow).Error; err != nil {
		t.Fatalf("load sub: %v", err)
	}
	if subRow.LineSubscriptionUserID != "G42" {
		t.Fatalf("stored id = %q, want group id", subRow.LineSubscriptionUserID)
	}
}

func TestWebhookUnknownTextIsAcceptedWithoutMutation(t *testing.T) {
	app, db := newTestApp(t)
	body := messageEvent("สวัสดีครับ", "U2")
	resp := postWebhook(t, app, body, sign(testSecret, body))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if countSubs(t, db) != 0 {
		t.Fatal("plain chatter created a subscription")
	}
}
