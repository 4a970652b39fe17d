// Package config provides configuration management for the gdvm CLI.
//
// Configuration is layered: built-in defaults, then the config file, then
// GDVM_* environment variables. The default file location is
// ~/.config/gdvm/config.yaml, in YAML format:
//
//	release:
//	  owner: godotengine
//	  repo: godot
//	  channel: stable
//	github_token: ""          # optional, raises the API rate limit
//	data_dir: /custom/data    # optional
//	cache_dir: /custom/cache  # optional
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//
// [Config.ResolveDataDir] and [Config.ResolveCacheDir] apply the XDG
// fallbacks for unset directory overrides.
package config
