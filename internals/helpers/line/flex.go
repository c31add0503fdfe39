package line

import "time"

// ContactFlexMessage builds the bubble shown to subscribers when someone
// submits the contact form. Labels stay in Thai, matching the site audience.
func ContactFlexMessage(name, phone, service, message string) map[string]any {
	// the flex API rejects empty text nodes
	orDash := func(v string) string {
		if v == "" {
			return "-"
		}
		return v
	}
	row := func(label, value string) map[string]any {
		value = orDash(value)
		return map[string]any{
			"type":    "box",
			"layout":  "baseline",
			"spacing": "sm",
			"margin":  "md",
			"contents": []any{
				map[string]any{"type": "text", "text": label, "color": "#AAAAAA", "size": "sm", "flex": 2},
				map[string]any{"type": "text", "text": value, "wrap": true, "color": "#666666", "size": "sm", "flex": 5},
			},
		}
	}

	return map[string]any{
		"type":    "flex",
		"altText": "มีการติดต่อจากหน้าเว็บไซต์",
		"contents": map[string]any{
			"type": "bubble",
			"header": map[string]any{
				"type":   "box",
				"layout": "vertical",
				"contents": []any{
					map[string]any{
						"type":   "text",
						"text":   "📧 ติดต่อจากเว็บไซต์",
						"weight": "bold",
						"size":   "xl",
						"color":  "#FFFFFF",
					},
				},
				"backgroundColor": "#FF6600",
				"paddingAll":      "12px",
			},
			"body": map[string]any{
				"type":    "box",
				"layout":  "vertical",
				"spacing": "md",
				"contents": []any{
					row("ชื่อ:", name),
					row("เบอร์:", phone),
					row("บริการ:", service),
					map[string]any{
						"type":    "box",
						"layout":  "vertical",
						"margin":  "md",
						"spacing": "sm",
						"contents": []any{
							map[string]any{"type": "text", "text": "ข้อความ:", "color": "#AAAAAA", "size": "sm"},
							map[string]any{"type": "text", "text": orDash(message), "wrap": true, "color": "#666666", "size": "sm"},
						},
					},
					map[string]any{"type": "separator", "margin": "md"},
					map[string]any{
						"type":   "text",
						"text":   "⏰ " + time.Now().Format("02/01/2006 15:04"),
						"size":   "xs",
						"color":  "#AAAAAA",
						"margin": "md",
					},
				},
			},
		},
	}
}
