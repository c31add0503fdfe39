package service

import (
	"context"
	"log"

	"gorm.io/gorm"

	"thaipk_backend/internals/configs"
	"thaipk_backend/internals/features/contact/dto"
	subscriptionModel "thaipk_backend/internals/features/line/subscription/model"
	"thaipk_backend/internals/helpers/line"
)

// ContactNotifier relays a contact form submission to every configured LINE
// recipient. Recipients are the union of LINE_USER_IDS and the subscription
// rows collected by the webhook; each push is best-effort so one dead chat
// never blocks the rest.
type ContactNotifier struct {
	DB     *gorm.DB
	Line   *line.Client
	Mailer *Mailer
}

func NewContactNotifier(db *gorm.DB, lineClient *line.Client) *ContactNotifier {
	return &ContactNotifier{DB: db, Line: lineClient, Mailer: NewMailerFromEnv()}
}

// Recipients merges env-configured chat IDs with stored subscriptions,
// deduplicated, env order first.
func (n *ContactNotifier) Recipients(ctx context.Context) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, id := range configs.LineRecipientIDs() {
		add(id)
	}

	var subs []subscriptionModel.LineSubscriptionModel
	if err := n.DB.WithContext(ctx).Find(&subs).Error; err != nil {
		log.Println("[ERROR] load line subscriptions:", err)
	} else {
		for _, s := range subs {
			add(s.LineSubscriptionUserID)
		}
	}
	return out
}

// Notify fans the submission out. Returns how many pushes succeeded; the
// caller treats zero recipients as success (nothing configured yet).
func (n *ContactNotifier) Notify(ctx context.Context, req dto.ContactRequest) int {
	delivered := 0

	if n.Line.Enabled() {
		msg := line.ContactFlexMessage(req.Name, req.Phone, req.Service, req.Message)
		for _, to := range n.Recipients(ctx) {
			if err := n.Line.Push(ctx, to, msg); err != nil {
				log.Printf("[ERROR] line push to %s: %v", to, err)
				continue
			}
			delivered++
		}
	} else {
		log.Println("[WARN] LINE channel token not set, contact relay skipped")
	}

	if n.Mailer.Enabled() {
		if err := n.Mailer.SendContactCopy(req); err != nil {
			log.Println("[ERROR] contact email copy:", err)
		}
	}

	return delivered
}
