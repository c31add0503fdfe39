package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret          string
	SupabaseURL        string
	SupabaseServiceKey string
	StorageBucket      string
	LineChannelSecret  string
	LineChannelToken   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SupabaseURL = GetEnv("SUPABASE_PROJECT_URL")
	SupabaseServiceKey = GetEnv("SUPABASE_SERVICE_ROLE_KEY")
	StorageBucket = GetEnv("SUPABASE_STORAGE_BUCKET", "images")
	LineChannelSecret = GetEnv("LINE_CHANNEL_SECRET")
	LineChannelToken = GetEnv("LINE_CHANNEL_ACCESS_TOKEN")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if SupabaseURL == "" || SupabaseServiceKey == "" {
		log.Println("❌ SUPABASE_PROJECT_URL / SUPABASE_SERVICE_ROLE_KEY is not set!")
	}
	if LineChannelSecret == "" || LineChannelToken == "" {
		log.Println("⚠️ LINE channel config not set, contact relay & webhook are disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// LineRecipientIDs reads the static recipient list (comma separated user IDs).
func LineRecipientIDs() []string {
	raw := GetEnv("LINE_USER_IDS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
