package module

import "atelier/internal/platform/config"

// Options holds configuration settings for the assistant module
type Options struct {
	MaxBatchIDs int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("CORE_ASSISTANT_")
	return Options{
		MaxBatchIDs: af.MayInt("MAX_BATCH_IDS", 500),
	}
}
