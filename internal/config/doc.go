// Package config loads the shortcut host configuration.
//
// Configuration is resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← HOTKEYS_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← config.toml / config.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A config file looks like:
//
//	hotkeys  = ["control", "k"]
//	quit     = ["control", "c"]
//	disabled = false
//
//	[action]
//	message = "palette opened"
//	script  = 'log("pressed " .. hotkey.keys)'
//
//	[log]
//	level = "debug"
//
//	[metrics]
//	addr = "127.0.0.1:9464"
//
// The same keys are accepted in YAML. Combination names are not checked
// here; the engine validates them when it initializes.
//
// # Sub-packages
//
//   - watcher: fsnotify-based live reload of the config file
package config
