package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	conf, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "development", conf.Environment)
	assert.Equal(t, "8080", conf.ServerPort)
	assert.Equal(t, "gpt-4o-mini", conf.OpenAIModel)
}

func TestMissingVars_AllMissing(t *testing.T) {
	conf := Config{}

	missing := conf.MissingVars()

	assert.Equal(t, []string{
		"OPENAI_API_KEY",
		"FIRESTORE_PROJECT_ID",
		"GOOGLE_APPLICATION_CREDENTIALS",
	}, missing)
}

func TestMissingVars_PartiallyMissing(t *testing.T) {
	conf := Config{
		OpenAIAPIKey:       "sk-test",
		FirestoreProjectID: "quicksnippet-test",
	}

	missing := conf.MissingVars()

	assert.Equal(t, []string{"GOOGLE_APPLICATION_CREDENTIALS"}, missing)
}

func TestMissingVars_NoneMissing(t *testing.T) {
	conf := Config{
		OpenAIAPIKey:          "sk-test",
		FirestoreProjectID:    "quicksnippet-test",
		GoogleCredentialsFile: "/etc/secrets/sa.json",
	}

	assert.Empty(t, conf.MissingVars())
}
