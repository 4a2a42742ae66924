package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite tests the config package functionality
type ConfigTestSuite struct {
	suite.Suite
	tempDir string
	origDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	// viper keeps global state between tests
	viper.Reset()

	var err error
	suite.origDir, err = os.Getwd()
	require.NoError(suite.T(), err)

	tempDir, err := os.MkdirTemp("", "dirscan-config-test-*")
	require.NoError(suite.T(), err)
	suite.tempDir = tempDir

	err = os.Chdir(tempDir)
	require.NoError(suite.T(), err)
}

func (suite *ConfigTestSuite) TearDownTest() {
	if suite.origDir != "" {
		os.Chdir(suite.origDir)
	}
	if suite.tempDir != "" {
		os.RemoveAll(suite.tempDir)
	}
}

func (suite *ConfigTestSuite) TestLoadConfigWithDefaults() {
	// Load config without config file (should use defaults)
	cfg, err := LoadConfig("")

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), cfg)

	suite.Equal("modified", cfg.Scan.TimeType)
	suite.Equal("%Y-%m-%d %H:%M:%S", cfg.Scan.TimeFormat)
	suite.False(cfg.Scan.AsDateTime)
	suite.True(cfg.Scan.Recurse)
	suite.Equal(0, cfg.Scan.Workers)
}

func (suite *ConfigTestSuite) TestLoadConfigFromFile() {
	configYAML := `
scan:
  timeType: created
  timeFormat: "%Y%m%d"
  includeSize: true
  recurse: false
  extensions:
    - txt
    - md
  ignorePatterns:
    - "*.bak"
  workers: 4
`
	configPath := filepath.Join(suite.tempDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(configYAML), 0o644)
	require.NoError(suite.T(), err)

	cfg, err := LoadConfig(configPath)
	require.NoError(suite.T(), err)

	suite.Equal("created", cfg.Scan.TimeType)
	suite.Equal("%Y%m%d", cfg.Scan.TimeFormat)
	suite.True(cfg.Scan.IncludeSize)
	suite.False(cfg.Scan.Recurse)
	suite.Equal([]string{"txt", "md"}, cfg.Scan.Extensions)
	suite.Equal([]string{"*.bak"}, cfg.Scan.IgnorePatterns)
	suite.Equal(4, cfg.Scan.Workers)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidTimeType() {
	configYAML := `
scan:
  timeType: sometimes
`
	configPath := filepath.Join(suite.tempDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(configYAML), 0o644)
	require.NoError(suite.T(), err)

	_, err = LoadConfig(configPath)
	suite.Error(err)
	suite.Contains(err.Error(), "timeType")
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidWorkers() {
	configYAML := `
scan:
  workers: -2
`
	configPath := filepath.Join(suite.tempDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(configYAML), 0o644)
	require.NoError(suite.T(), err)

	_, err = LoadConfig(configPath)
	suite.Error(err)
	suite.Contains(err.Error(), "workers")
}
