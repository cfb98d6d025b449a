package service

import (
	"strconv"

	"pointtrail/internal/domain"
	"pointtrail/internal/repository"
)

// Options is the injected configuration provider for the tracker. Every getter
// reads the current stored value so admin changes take effect immediately;
// values are never cached across invocations. Missing or unparseable values
// fall back to the compiled defaults.
type Options struct {
	settings *repository.SettingRepository
}

func NewOptions(settings *repository.SettingRepository) *Options {
	return &Options{settings: settings}
}

func (o *Options) Enabled() bool       { return o.getBool(domain.SettingEnabled) }
func (o *Options) WidgetEnabled() bool { return o.getBool(domain.SettingWidgetEnabled) }
func (o *Options) WidgetLimit() int    { return o.getInt(domain.SettingWidgetLimit) }
func (o *Options) MaxLogsPerUser() int { return o.getInt(domain.SettingMaxLogsPerUser) }
func (o *Options) CleanupDays() int    { return o.getInt(domain.SettingCleanupDays) }

// TrackingEnabled reports whether the given category toggle is on. An empty
// toggle key means the activity is not gated.
func (o *Options) TrackingEnabled(toggleKey string) bool {
	if toggleKey == "" {
		return true
	}
	return o.getBool(toggleKey)
}

// PointValue returns the configured point value for a named point rule.
func (o *Options) PointValue(key string) int {
	return o.getInt(key)
}

func (o *Options) getInt(key string) int {
	n, err := strconv.Atoi(o.raw(key))
	if err != nil {
		n, _ = strconv.Atoi(domain.SettingDefaults[key])
	}
	return n
}

func (o *Options) getBool(key string) bool {
	b, err := strconv.ParseBool(o.raw(key))
	if err != nil {
		b, _ = strconv.ParseBool(domain.SettingDefaults[key])
	}
	return b
}

func (o *Options) raw(key string) string {
	val, err := o.settings.Get(key)
	if err != nil {
		return domain.SettingDefaults[key]
	}
	return val
}
