package config

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ReportConfig controls the static text printed on generated documents.
type ReportConfig struct {
	OrganizationName string `mapstructure:"organizationName"`
	CurrencyLabel    string `mapstructure:"currencyLabel"`
	FooterLine       string `mapstructure:"footerLine"`
}

func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		OrganizationName: "Tipaniya Farm Services",
		CurrencyLabel:    "Rs",
		FooterLine:       "Thank you",
	}
}

// ReportConfigHolder serves the current report config and swaps it
// atomically when the file changes on disk.
type ReportConfigHolder struct {
	current atomic.Value // holds ReportConfig
}

func NewReportConfigHolder() (*ReportConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("report")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/hisaab")
	v.AddConfigPath(".")

	v.SetEnvPrefix("HISAAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultReportConfig()
	v.SetDefault("report.organizationName", defaults.OrganizationName)
	v.SetDefault("report.currencyLabel", defaults.CurrencyLabel)
	v.SetDefault("report.footerLine", defaults.FooterLine)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	holder := &ReportConfigHolder{}
	holder.store(v)

	v.OnConfigChange(func(_ fsnotify.Event) {
		holder.store(v)
	})
	v.WatchConfig()

	return holder, nil
}

func (h *ReportConfigHolder) store(v *viper.Viper) {
	var cfg ReportConfig
	if err := v.UnmarshalKey("report", &cfg); err != nil {
		log.Printf("report config: unmarshal failed, keeping previous: %v", err)
		return
	}
	if cfg.OrganizationName == "" {
		cfg.OrganizationName = DefaultReportConfig().OrganizationName
	}
	if cfg.CurrencyLabel == "" {
		cfg.CurrencyLabel = DefaultReportConfig().CurrencyLabel
	}
	if cfg.FooterLine == "" {
		cfg.FooterLine = DefaultReportConfig().FooterLine
	}
	h.current.Store(cfg)
}

// Current returns the active report configuration.
func (h *ReportConfigHolder) Current() ReportConfig {
	if cfg, ok := h.current.Load().(ReportConfig); ok {
		return cfg
	}
	return DefaultReportConfig()
}
