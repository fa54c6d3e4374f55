package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrMissingStripeKey znači da STRIPE_SECRET_KEY nije podešen — bez njega se Stripe ne sme zvati.
var ErrMissingStripeKey = errors.New("STRIPE_SECRET_KEY nije konfigurisan")

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Nema .env fajla — nastavljamo sa sistemskim environment varijablama")
	} else {
		log.Println("✅ .env fajl uspešno učitan")
	}
}

// StripeSecretKey vraća tajni Stripe ključ ili grešku ako nije podešen.
func StripeSecretKey() (string, error) {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return "", ErrMissingStripeKey
	}
	return key, nil
}

// StripePublishableKey je javni ključ koji frontend koristi za Stripe Elements.
func StripePublishableKey() string {
	return os.Getenv("STRIPE_PUBLISHABLE_KEY")
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTP čita SMTP podešavanja; prazan Host dispatcher prijavljuje kao grešku konfiguracije.
func SMTP() SMTPConfig {
	port := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			port = n
		}
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}
	return SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		From:     from,
	}
}

// AdminEmail je adresa prodavca na koju stižu notifikacije o novim porudžbinama.
func AdminEmail() string {
	return os.Getenv("ADMIN_EMAIL")
}

func SessionSecret() string {
	return os.Getenv("SESSION_SECRET")
}

// RedisAddr vraća adresu i lozinku Redis-a; prazna adresa znači da Redis nije konfigurisan.
func RedisAddr() (string, string) {
	return os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PASSWORD")
}

func FrontendOrigin() string {
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	return origin
}

func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
