// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application.
type Config struct {
	AzureDevOps AzureDevOpsConfig
}

// AzureDevOpsConfig holds Azure DevOps specific configuration.
type AzureDevOpsConfig struct {
	// PAT is the personal access token used as the password half of HTTP
	// Basic authentication against the work item API.
	PAT string
}

// MissingCredentialError indicates that the required access token was not
// found in the environment. It is raised before any network activity.
type MissingCredentialError struct {
	// Variable is the name of the missing environment variable.
	Variable string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s environment variable is not set. "+
		"Export your Azure DevOps Personal Access Token: export %s=<your_token>",
		e.Variable, e.Variable)
}

// LoadConfig initializes and loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	// Initialize Viper for environment variables
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	v.BindEnv("azuredevops.pat", "ADO_PAT")

	config := &Config{
		AzureDevOps: AzureDevOpsConfig{
			PAT: v.GetString("azuredevops.pat"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig ensures that all required configuration values are provided.
func validateConfig(config *Config) error {
	if config.AzureDevOps.PAT == "" {
		return &MissingCredentialError{Variable: "ADO_PAT"}
	}

	return nil
}
