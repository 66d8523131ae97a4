// Package settings holds the knobs that are not part of the parameter set:
// where the parameter file lives, how long to wait for the NAT gateway and
// similar. Every value can be overridden with an HCP_ prefixed environment
// variable.
package settings

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix = "HCP"

	KeyParamsFile         = "params_file"
	KeyNATGatewayTimeout  = "nat_gateway_timeout"
	KeyNATGatewayInterval = "nat_gateway_poll_interval"
	KeyRollbackOnFailure  = "rollback_on_failure"
	KeyGitOpsChannel      = "gitops_channel"
	KeyLogLevel           = "log_level"

	DefaultParamsFile         = "hcp.env"
	DefaultNATGatewayTimeout  = 5 * time.Minute
	DefaultNATGatewayInterval = 10 * time.Second
	DefaultGitOpsChannel      = "latest"
	DefaultLogLevel           = "info"
)

type Settings struct {
	ParamsFile         string
	NATGatewayTimeout  time.Duration
	NATGatewayInterval time.Duration
	RollbackOnFailure  bool
	GitOpsChannel      string
	LogLevel           string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyParamsFile, DefaultParamsFile)
	v.SetDefault(KeyNATGatewayTimeout, DefaultNATGatewayTimeout)
	v.SetDefault(KeyNATGatewayInterval, DefaultNATGatewayInterval)
	v.SetDefault(KeyRollbackOnFailure, false)
	v.SetDefault(KeyGitOpsChannel, DefaultGitOpsChannel)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	return v
}

// Load reads the settings from the environment.
func Load() (*Settings, error) {
	v := newViper()
	s := &Settings{
		ParamsFile:         v.GetString(KeyParamsFile),
		NATGatewayTimeout:  v.GetDuration(KeyNATGatewayTimeout),
		NATGatewayInterval: v.GetDuration(KeyNATGatewayInterval),
		RollbackOnFailure:  v.GetBool(KeyRollbackOnFailure),
		GitOpsChannel:      v.GetString(KeyGitOpsChannel),
		LogLevel:           v.GetString(KeyLogLevel),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if s.ParamsFile == "" {
		return fmt.Errorf("HCP_PARAMS_FILE must not be empty")
	}
	if s.NATGatewayInterval <= 0 {
		return fmt.Errorf("HCP_NAT_GATEWAY_POLL_INTERVAL must be positive, got %s", s.NATGatewayInterval)
	}
	if s.NATGatewayTimeout < s.NATGatewayInterval {
		return fmt.Errorf("HCP_NAT_GATEWAY_TIMEOUT (%s) must not be shorter than the poll interval (%s)", s.NATGatewayTimeout, s.NATGatewayInterval)
	}
	if s.GitOpsChannel == "" {
		return fmt.Errorf("HCP_GITOPS_CHANNEL must not be empty")
	}
	return nil
}
