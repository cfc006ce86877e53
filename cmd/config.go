package main

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	LogLevel  string `env:"LOG_LEVEL,required=true"`
	Host      string `env:"HOST,default=0.0.0.0"`
	Port      int    `env:"PORT,default=8080" validate:"gte=1,lte=65535"`
	PublicURL string `env:"PUBLIC_URL,required=true" validate:"url"`

	TwilioAccountSID  string `env:"TWILIO_ACCOUNT_SID,required=true"`
	TwilioAuthToken   string `env:"TWILIO_AUTH_TOKEN,required=true"`
	WhatsAppFrom      string `env:"TWILIO_WHATSAPP_FROM,default=whatsapp:+14155238886"`
	ValidateSignature bool   `env:"VALIDATE_TWILIO_SIGNATURE,default=true"`

	GeminiAPIKey string `env:"GEMINI_API_KEY,required=true"`
	GeminiModel  string `env:"GEMINI_MODEL,default=gemini-2.5-flash"`

	DailyMessageLimit int           `env:"DAILY_MESSAGE_LIMIT,default=9" validate:"gte=1"`
	MaxMessageLength  int           `env:"MAX_MESSAGE_LENGTH,default=1500" validate:"gte=200"`
	InterChunkDelay   time.Duration `env:"INTER_CHUNK_DELAY,default=1s"`

	BulletinBaseURL   string        `env:"BULLETIN_BASE_URL,default=https://idsp.mohfw.gov.in"`
	BulletinCacheTTL  time.Duration `env:"BULLETIN_CACHE_TTL,default=6h"`
	BulletinRefresh   time.Duration `env:"BULLETIN_REFRESH_INTERVAL,default=6h"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=1m"`
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}
