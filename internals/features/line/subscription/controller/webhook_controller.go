package controller

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"thaipk_backend/internals/features/line/subscription/model"
	helper "thaipk_backend/internals/helpers"
	"thaipk_backend/internals/helpers/line"
)

const (
	keywordSubscribe   = "รับแจ้งเตือน"
	keywordUnsubscribe = "ยกเลิกแจ้งเตือน"

	replySubscribed   = "เปิดรับแจ้งเตือนเรียบร้อยแล้ว ✅ เมื่อมีลูกค้าติดต่อเข้ามา ระบบจะส่งข้อความมาที่แชทนี้"
	replyUnsubscribed = "ยกเลิกการแจ้งเตือนเรียบร้อยแล้ว หากต้องการรับแจ้งเตือนอีกครั้ง พิมพ์ \"รับแจ้งเตือน\""
	replyHelp         = "พิมพ์ \"รับแจ้งเตือน\" เพื่อรับแจ้งเตือนเมื่อมีลูกค้าติดต่อ หรือ \"ยกเลิกแจ้งเตือน\" เพื่อหยุดรับ"
	replyWelcome      = "สวัสดีครับ 🙏 พิมพ์ \"รับแจ้งเตือน\" เพื่อให้ระบบส่งข้อความแจ้งเตือนมาที่แชทนี้เมื่อมีลูกค้าติดต่อเข้ามา"
)

type webhookPayload struct {
	Events []webhookEvent `json:"events"`
}

type webhookEvent struct {
	Type       string `json:"type"`
	ReplyToken string `json:"replyToken"`
	Source     struct {
		Type    string `json:"type"`
		UserID  string `json:"userId"`
		GroupID string `json:"groupId"`
	} `json:"source"`
	Message struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"message"`
}

type WebhookController struct {
	DB            *gorm.DB
	Line          *line.Client
	ChannelSecret string
}

func NewWebhookController(db *gorm.DB, lineClient *line.Client, channelSecret string) *WebhookController {
	return &WebhookController{DB: db, Line: lineClient, ChannelSecret: channelSecret}
}

// ➕ POST: LINE platform webhook. The signature is checked before anything
// touches the database: missing material is 400, a mismatch is 403. Event
// handling itself always ends in 200 so the platform does not retry forever.
func (ctrl *WebhookController) HandleWebhook(c *fiber.Ctx) error {
	signature := c.Get("X-Line-Signature")
	if signature == "" || ctrl.ChannelSecret == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing signature")
	}

	body := c.Body()
	mac := hmac.New(sha256.New, []byte(ctrl.ChannelSecret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid signature")
	}

	var payload webhookPayload
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	for _, ev := range payload.Events {
		ctrl.handleEvent(c, ev)
	}

	return helper.JsonOK(c, "OK", fiber.Map{"events": len(payload.Events)})
}

func (ctrl *WebhookController) handleEvent(c *fiber.Ctx, ev webhookEvent) {
	chatID := ev.Source.UserID
	if ev.Source.Type == "group" {
		chatID = ev.Source.GroupID
	}
	if chatID == "" {
		return
	}

	switch ev.Type {
	case "follow":
		ctrl.reply(c, ev.ReplyToken, replyWelcome)

	case "message":
		if ev.Message.Type != "text" {
			return
		}
		text := strings.TrimSpace(ev.Message.Text)
		switch {
		case strings.Contains(text, keywordUnsubscribe):
			if err := ctrl.DB.WithContext(c.UserContext()).
				Where("line_subscription_user_id = ?", chatID).
				Delete(&model.LineSubscriptionModel{}).Error; err != nil {
				log.Println("[ERROR] unsubscribe:", err)
				return
			}
			ctrl.reply(c, ev.ReplyToken, replyUnsubscribed)

		case strings.Contains(text, keywordSubscribe):
			sub := model.LineSubscriptionModel{LineSubscriptionUserID: chatID}
			if err := ctrl.DB.WithContext(c.UserContext()).
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "line_subscription_user_id"}},
					DoNothing: true,
				}).Create(&sub).Error; err != nil {
				log.Println("[ERROR] subscribe:", err)
				return
			}
			ctrl.reply(c, ev.ReplyToken, replySubscribed)

		default:
			ctrl.reply(c, ev.ReplyToken, replyHelp)
		}
	}
}

func (ctrl *WebhookController) reply(c *fiber.Ctx, replyToken, text string) {
	if replyToken == "" || !ctrl.Line.Enabled() {
		return
	}
	if err := ctrl.Line.Reply(c.UserContext(), replyToken, text); err != nil {
		log.Println("[ERROR] line reply:", err)
	}
}
