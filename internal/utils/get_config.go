package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// HTTP listen port
	AppPort string `yaml:"APP_PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Session signing key and review IP salt
	JWTSecret    string `yaml:"JWT_SECRET"`
	ReviewIPSalt string `yaml:"REVIEW_IP_SALT"`

	// Public site URL (sitemap, mail links)
	SiteURL string `yaml:"SITE_URL"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Instagram Graph API
	InstagramAccessToken string `yaml:"INSTAGRAM_ACCESS_TOKEN"`
	InstagramUserID      string `yaml:"INSTAGRAM_USER_ID"`
	InstagramFetchLimit  string `yaml:"INSTAGRAM_FETCH_LIMIT"`

	// Shared secret for the scheduler-triggered ingestion endpoint
	CronSecret string `yaml:"CRON_SECRET"`

	// Identity provider exchange-code flow
	AuthTokenURL     string `yaml:"AUTH_TOKEN_URL"`
	AuthClientID     string `yaml:"AUTH_CLIENT_ID"`
	AuthClientSecret string `yaml:"AUTH_CLIENT_SECRET"`
	AuthRedirectURI  string `yaml:"AUTH_REDIRECT_URI"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Set environment variables for keys that should be accessible via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("REVIEW_IP_SALT", config.ReviewIPSalt)
	os.Setenv("CRON_SECRET", config.CronSecret)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
	os.Setenv("INSTAGRAM_ACCESS_TOKEN", config.InstagramAccessToken)
	os.Setenv("INSTAGRAM_USER_ID", config.InstagramUserID)
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "REVIEW_IP_SALT":
		return config.ReviewIPSalt
	case "SITE_URL":
		return config.SiteURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "INSTAGRAM_ACCESS_TOKEN":
		return config.InstagramAccessToken
	case "INSTAGRAM_USER_ID":
		return config.InstagramUserID
	case "INSTAGRAM_FETCH_LIMIT":
		return config.InstagramFetchLimit
	case "CRON_SECRET":
		return config.CronSecret
	case "AUTH_TOKEN_URL":
		return config.AuthTokenURL
	case "AUTH_CLIENT_ID":
		return config.AuthClientID
	case "AUTH_CLIENT_SECRET":
		return config.AuthClientSecret
	case "AUTH_REDIRECT_URI":
		return config.AuthRedirectURI
	default:
		return ""
	}
}
