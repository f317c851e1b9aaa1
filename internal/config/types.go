package config

type Config struct {
	DatabaseURL           string
	RedisURL              string
	MetaAccessToken       string
	WhatsAppPhoneNumberID string
	JWTSecret             string
	Environment           string
	Port                  string
	HumanModeTimeoutHours int
}
