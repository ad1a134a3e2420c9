package config

import "github.com/spf13/viper"

const (
	defaultScriptLimit = 50
	defaultCollection  = "flattenedTasks"
)

// Script holds defaults for generated scripts.
type Script struct {
	DefaultLimit int
	Collection   string
}

// Filter holds boundary policy for caller filters.
type Filter struct {
	// Strict makes unknown filter properties fatal instead of a warning.
	Strict bool
}

func setScriptDefaults(v *viper.Viper) {
	v.SetDefault("script.default_limit", defaultScriptLimit)
	v.SetDefault("script.collection", defaultCollection)
	v.SetDefault("filter.strict", false)
}

func getScriptConfig(v *viper.Viper) *Script {
	return &Script{
		DefaultLimit: getIntOrDefault(v, "script.default_limit", defaultScriptLimit),
		Collection:   getStringOrDefault(v, "script.collection", defaultCollection),
	}
}

func getFilterConfig(v *viper.Viper) *Filter {
	return &Filter{
		Strict: v.GetBool("filter.strict"),
	}
}
