package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/runforua/donorboard/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Wave       WaveConfig       `validate:"required"`
	DynamoDB   DynamoDBConfig   `validate:"required"`
	Auth       AuthConfig       `validate:"required"`
	Cache      CacheConfig
	Campaigns  []CampaignConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// WaveConfig holds credentials for the Wave accounting GraphQL API.
type WaveConfig struct {
	APIURL string `mapstructure:"api_url" validate:"required,url"`
	// Token is the bearer credential for the GraphQL endpoint
	Token string `validate:"required"`
	// BusinessID is the opaque composite business identifier (base64 GID)
	BusinessID string `mapstructure:"business_id" validate:"required"`
}

// AuthConfig holds the shared viewer password gating the report surface.
type AuthConfig struct {
	ViewerPassword string `mapstructure:"viewer_password" validate:"required"`
}

type CacheConfig struct {
	Enabled bool
	// TTL bounds how stale a cached campaign report may be
	TTL time.Duration `default:"10m"`
}

// CampaignConfig names a fundraising campaign and the invoice-number slug
// its donations are filed under.
type CampaignConfig struct {
	Name string `validate:"required"`
	Slug string `validate:"required"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/donorboard")

	// Set up environment variables support
	v.SetEnvPrefix("DONORBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Cache.TTL == 0 {
		config.Cache.TTL = 10 * time.Minute
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// CampaignBySlug looks up a configured campaign, case-insensitively.
func (c Configuration) CampaignBySlug(slug string) (CampaignConfig, bool) {
	for _, campaign := range c.Campaigns {
		if strings.EqualFold(campaign.Slug, slug) {
			return campaign, true
		}
	}
	return CampaignConfig{}, false
}

// GetDefaultConfig returns a default configuration for local development
// and tests. Credentials are placeholders; network-facing code paths must
// be stubbed when this config is in use.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Wave: WaveConfig{
			APIURL:     "https://gql.waveapps.com/graphql/public",
			Token:      "test-token",
			BusinessID: "QnVzaW5lc3M6dGVzdC1idXNpbmVzcy1pZA==",
		},
		DynamoDB: DynamoDBConfig{
			InUse:             true,
			Region:            "us-east-2",
			TrackingTableName: "donation-tracking",
		},
		Auth:  AuthConfig{ViewerPassword: "test-password"},
		Cache: CacheConfig{Enabled: true, TTL: 10 * time.Minute},
		Campaigns: []CampaignConfig{
			{Name: "Run For Ukraine", Slug: "2FUA-RUN4UA"},
		},
	}
}
