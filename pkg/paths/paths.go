package paths

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/modorder/pkg/errors"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for modorder
	EnvDataDir = "MODORDER_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for modorder
	EnvConfigDir = "MODORDER_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for modorder
	EnvStateDir = "MODORDER_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for modorder-specific files
	AppDirName = "modorder"

	// ConfigFileName is the user configuration file inside the config dir
	ConfigFileName = "config.toml"

	// OrdersDirName is the subdirectory of the data dir holding saved orders
	OrdersDirName = "orders"

	// OrderFileExt is the extension of saved order files
	OrderFileExt = ".yaml"

	// LogFileName is the name of the log file
	LogFileName = "modorder.log"
)

// Paths resolves every location modorder reads or writes.
type Paths interface {
	DataDir() string
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	OrdersDir() string
	OrderFilePath(name string) string
	LogFilePath() string
}

type paths struct {
	xdgData   string
	xdgConfig string
	xdgState  string
}

// New resolves the XDG directories, respecting environment overrides.
func New() (Paths, error) {
	p := &paths{}

	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = expandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	for _, dir := range []*string{&p.xdgData, &p.xdgConfig, &p.xdgState} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// DataDir returns the XDG data directory for modorder
func (p *paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the XDG config directory for modorder
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for modorder
func (p *paths) StateDir() string {
	return p.xdgState
}

// ConfigFilePath returns the user configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// OrdersDir returns the directory holding saved load orders
func (p *paths) OrdersDir() string {
	return filepath.Join(p.xdgData, OrdersDirName)
}

// OrderFilePath returns the file a saved order with the given name lives in
func (p *paths) OrderFilePath(name string) string {
	return filepath.Join(p.OrdersDir(), OrderFileName(name))
}

// LogFilePath returns the log file location
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// OrderFileName turns an order name into a safe file name. Letters, digits,
// '-', '_' and any '.' but a leading one are kept; every other byte is
// written as %XX, so distinct names never share a file.
func OrderFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "default"
	}
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteByte(c)
		case c == '.' && i > 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String() + OrderFileExt
}

// OrderNameFromFile reverses OrderFileName. Names that are not valid
// escapes are returned as they are.
func OrderNameFromFile(fileName string) string {
	base := strings.TrimSuffix(fileName, OrderFileExt)
	name, err := url.PathUnescape(base)
	if err != nil {
		return base
	}
	return name
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
