// Package paths provides centralized path handling for modorder.
//
// # Environment Variables
//
//   - MODORDER_DATA_DIR: Override XDG data directory (default: $XDG_DATA_HOME/modorder)
//   - MODORDER_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/modorder)
//   - MODORDER_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/modorder)
//
// # Layout
//
//   - Config: config.toml
//   - Data: orders/<name>.yaml, one file per saved load order
//   - State: modorder.log
//
// # Usage
//
//	p, err := paths.New()
//	if err != nil {
//	    return err
//	}
//	cfgFile := p.ConfigFilePath()
//	orderFile := p.OrderFilePath("Act 2 run")
package paths
