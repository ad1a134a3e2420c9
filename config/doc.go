// Package config loads taskbridge configuration with Viper from YAML, JSON or
// TOML, with TASKBRIDGE_* environment overrides.
//
// Example YAML:
//
//	app_name: taskbridge
//	logger:
//	  level: 4        # logrus level, 4 = info
//	  format: text    # text | json
//	  output: stderr  # stdout | stderr | file
//	  output_file: ./logs/taskbridge.log
//	script:
//	  default_limit: 50
//	  collection: flattenedTasks
//	filter:
//	  strict: false
//
// Load it:
//
//	cfg, err := config.LoadConfig("./taskbridge.yaml")
package config
