package i18n

import "github.com/dmitrymomot/cmskit/core/config"

// EnvConfig mirrors the language policy settings as environment variables.
type EnvConfig struct {
	DefaultLanguage  string   `env:"NAV_DEFAULT_LANGUAGE" envDefault:"en"`
	Languages        []string `env:"NAV_LANGUAGES" envSeparator:","`
	Enabled          bool     `env:"NAV_I18N_ENABLED" envDefault:"true"`
	HideUntranslated bool     `env:"NAV_HIDE_UNTRANSLATED" envDefault:"false"`
	CookieName       string   `env:"NAV_LANGUAGE_COOKIE" envDefault:"language"`
}

// FromEnv builds a Config from environment variables. Additional options are
// applied after the environment-derived ones and may override them.
func FromEnv(opts ...Option) (*Config, error) {
	var envCfg EnvConfig
	if err := config.Load(&envCfg); err != nil {
		return nil, err
	}

	base := []Option{
		WithDefaultLanguage(envCfg.DefaultLanguage),
		WithLanguages(envCfg.Languages...),
		WithI18nEnabled(envCfg.Enabled),
		WithHideUntranslated(envCfg.HideUntranslated),
		WithCookieName(envCfg.CookieName),
	}

	return New(append(base, opts...)...)
}
