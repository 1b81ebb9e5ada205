package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ApprovalConfig lists the HCPCS codes whose presence on an order forces
// manual approval at submission.
type ApprovalConfig struct {
	HCPCSCodes []string `mapstructure:"hcpcsCodes"`
}

func DefaultApprovalConfig() ApprovalConfig {
	return ApprovalConfig{
		HCPCSCodes: []string{"L0456", "L0120"},
	}
}

// ApprovalConfigHolder hands out the current approval rule set. The backing
// file is hot-reloaded so the code set can evolve without a restart.
type ApprovalConfigHolder struct {
	current atomic.Value // holds ApprovalConfig
}

func NewApprovalConfigHolder() (*ApprovalConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("approval")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/orthoflow/config") // Volume-mounted config
	v.AddConfigPath("/etc/orthoflow")            // System config
	v.AddConfigPath(".")                         // Current directory (dev mode)

	v.SetEnvPrefix("ORTHOFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultApprovalConfig()
		v.SetDefault("approval.hcpcsCodes", defaults.HCPCSCodes)
	}

	var cfg ApprovalConfig
	if err := v.UnmarshalKey("approval", &cfg); err != nil {
		return nil, err
	}
	if err := validateApprovalConfig(cfg); err != nil {
		return nil, err
	}

	holder := &ApprovalConfigHolder{}
	holder.current.Store(normalizeApprovalConfig(cfg))

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated ApprovalConfig
		if err := v.UnmarshalKey("approval", &updated); err != nil {
			log.Printf("[approval-config] reload failed: %v", err)
			return
		}
		if err := validateApprovalConfig(updated); err != nil {
			log.Printf("[approval-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(normalizeApprovalConfig(updated))
		log.Printf("[approval-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticApprovalConfigHolder returns a holder pinned to the given codes.
// Used by tests and callers that do not want file watching.
func NewStaticApprovalConfigHolder(codes ...string) *ApprovalConfigHolder {
	holder := &ApprovalConfigHolder{}
	holder.current.Store(normalizeApprovalConfig(ApprovalConfig{HCPCSCodes: codes}))
	return holder
}

func (h *ApprovalConfigHolder) Get() ApprovalConfig {
	return h.current.Load().(ApprovalConfig)
}

func validateApprovalConfig(cfg ApprovalConfig) error {
	for _, code := range cfg.HCPCSCodes {
		if strings.TrimSpace(code) == "" {
			return errors.New("approval.hcpcsCodes cannot contain empty codes")
		}
	}
	return nil
}

func normalizeApprovalConfig(cfg ApprovalConfig) ApprovalConfig {
	codes := make([]string, 0, len(cfg.HCPCSCodes))
	for _, code := range cfg.HCPCSCodes {
		codes = append(codes, strings.ToUpper(strings.TrimSpace(code)))
	}
	if len(codes) == 0 {
		// A config file without an approval key would otherwise turn
		// manual approval off entirely.
		return DefaultApprovalConfig()
	}
	return ApprovalConfig{HCPCSCodes: codes}
}
