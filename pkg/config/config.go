package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      App      `yaml:"app"`
	Database Database `yaml:"database"`
	Mail     Mail     `yaml:"mail"`
	SMS      SMS      `yaml:"sms"`
	WhatsApp WhatsApp `yaml:"whatsapp"`
	Auth     Auth     `yaml:"auth"`
	Inquiry  Inquiry  `yaml:"inquiry"`
	Allows   Allows   `yaml:"allows"`
}

type App struct {
	Name string `yaml:"name"`
	Port string `yaml:"port"`
	Host string `yaml:"host"`
}

type Database struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	Name string `yaml:"name"`
}

// Mail is the SMTP transport configuration. All four fields are required
// before the email channel will dispatch anything.
type Mail struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
}

// SMS selects and configures the phone-leg transport. Provider is either
// "twilio" or "whatsapp" (the operator channel).
type SMS struct {
	Provider   string `yaml:"provider"`
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	From       string `yaml:"from"`
}

type WhatsApp struct {
	StoreDSN string `yaml:"store_dsn"`
}

type Auth struct {
	Secret   string `yaml:"secret"`
	AdminKey string `yaml:"admin_key"`
}

type Inquiry struct {
	To string `yaml:"to"`
}

type Allows struct {
	Methods []string `yaml:"methods"`
	Origins []string `yaml:"origins"`
	Headers []string `yaml:"headers"`
}

func InitConfig() *Config {
	var configs Config
	file_name, _ := filepath.Abs("./config.yaml")
	yaml_file, _ := os.ReadFile(file_name)
	yaml.Unmarshal(yaml_file, &configs)

	// Override with environment variables if they exist (for Docker)
	if dbHost := os.Getenv("DB_HOST"); dbHost != "" {
		configs.Database.Host = dbHost
	}
	if dbPort := os.Getenv("DB_PORT"); dbPort != "" {
		configs.Database.Port = dbPort
	}
	if dbUser := os.Getenv("DB_USER"); dbUser != "" {
		configs.Database.User = dbUser
	}
	if dbPassword := os.Getenv("DB_PASSWORD"); dbPassword != "" {
		configs.Database.Pass = dbPassword
	}
	if dbName := os.Getenv("DB_NAME"); dbName != "" {
		configs.Database.Name = dbName
	}

	// Override app configuration with environment variables
	if appHost := os.Getenv("APP_HOST"); appHost != "" {
		configs.App.Host = appHost
	}
	if appPort := os.Getenv("APP_PORT"); appPort != "" {
		configs.App.Port = appPort
	}
	if appName := os.Getenv("APP_NAME"); appName != "" {
		configs.App.Name = appName
	}

	// Mail transport
	if mailHost := os.Getenv("EMAIL_HOST"); mailHost != "" {
		configs.Mail.Host = mailHost
	}
	if mailPort := os.Getenv("EMAIL_PORT"); mailPort != "" {
		configs.Mail.Port = mailPort
	}
	if mailUser := os.Getenv("EMAIL_USER"); mailUser != "" {
		configs.Mail.User = mailUser
	}
	if mailPass := os.Getenv("EMAIL_PASS"); mailPass != "" {
		configs.Mail.Pass = mailPass
	}

	// SMS transport
	if smsProvider := os.Getenv("SMS_PROVIDER"); smsProvider != "" {
		configs.SMS.Provider = smsProvider
	}
	if accountSID := os.Getenv("TWILIO_ACCOUNT_SID"); accountSID != "" {
		configs.SMS.AccountSID = accountSID
	}
	if authToken := os.Getenv("TWILIO_AUTH_TOKEN"); authToken != "" {
		configs.SMS.AuthToken = authToken
	}
	if smsFrom := os.Getenv("TWILIO_PHONE_NUMBER"); smsFrom != "" {
		configs.SMS.From = smsFrom
	}
	if storeDSN := os.Getenv("WHATSAPP_STORE_DSN"); storeDSN != "" {
		configs.WhatsApp.StoreDSN = storeDSN
	}

	// Token signing and operator settings
	if secret := os.Getenv("SECRET"); secret != "" {
		configs.Auth.Secret = secret
	}
	if adminKey := os.Getenv("ADMIN_KEY"); adminKey != "" {
		configs.Auth.AdminKey = adminKey
	}
	if inquiryTo := os.Getenv("INQUIRY_TO"); inquiryTo != "" {
		configs.Inquiry.To = inquiryTo
	}

	if configs.App.Port == "" {
		configs.App.Port = "5000"
	}
	if configs.SMS.Provider == "" {
		configs.SMS.Provider = "twilio"
	}
	if configs.WhatsApp.StoreDSN == "" {
		configs.WhatsApp.StoreDSN = "file:whatsapp.db?_pragma=foreign_keys(1)"
	}

	return &configs
}
