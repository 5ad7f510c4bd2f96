package config

import (
	"github.com/spf13/viper"
)

// Config 서비스 전역 설정
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// OpenAI API 설정
	OpenAIAPIKey      string `mapstructure:"OPENAI_API_KEY"`
	OpenAIAPIEndpoint string `mapstructure:"OPENAI_API_ENDPOINT"`
	OpenAIModel       string `mapstructure:"OPENAI_MODEL"`

	// Firestore 설정
	FirestoreProjectID    string `mapstructure:"FIRESTORE_PROJECT_ID"`
	GoogleCredentialsFile string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`

	// 팀 헬스체크 웹훅 설정
	WebhookURL string `mapstructure:"WEBHOOK_URL"`
}

// LoadConfig 환경 변수 또는 설정 파일에서 설정을 로드
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// 설정 파일이 없어도 환경 변수에서 읽을 수 있으므로 허용
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}

// MissingVars 필수 설정 중 비어 있는 항목의 이름 목록을 반환
func (c *Config) MissingVars() []string {
	checks := []struct {
		name  string
		value string
	}{
		{"OPENAI_API_KEY", c.OpenAIAPIKey},
		{"FIRESTORE_PROJECT_ID", c.FirestoreProjectID},
		{"GOOGLE_APPLICATION_CREDENTIALS", c.GoogleCredentialsFile},
	}

	var missing []string
	for _, check := range checks {
		if check.value == "" {
			missing = append(missing, check.name)
		}
	}
	return missing
}
