package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
)

// Autostart describes the login entry to install. Zero fields are filled
// from the running process.
type Autostart struct {
	GOOS   string
	Exe    string
	Home   string
	Getenv func(string) string
}

func (a Autostart) withDefaults() (Autostart, error) {
	if a.GOOS == "" {
		a.GOOS = runtime.GOOS
	}
	if a.Getenv == nil {
		a.Getenv = os.Getenv
	}
	if a.Exe == "" {
		exe, err := os.Executable()
		if err != nil {
			return a, fmt.Errorf("shell: locate executable: %w", err)
		}
		a.Exe = exe
	}
	if a.Home == "" {
		home, err := homedir.Dir()
		if err != nil {
			return a, fmt.Errorf("shell: locate home: %w", err)
		}
		a.Home = home
	}
	return a, nil
}

// Path is where the entry lives for a.GOOS.
func (a Autostart) Path() (string, error) {
	a, err := a.withDefaults()
	if err != nil {
		return "", err
	}
	switch a.GOOS {
	case "windows":
		appData := a.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("shell: APPDATA is not set")
		}
		return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs", "Startup", "AckgateStartup.cmd"), nil
	case "darwin":
		return filepath.Join(a.Home, "Library", "LaunchAgents", "dev.tableflip.ackgate.plist"), nil
	default:
		cfg := a.Getenv("XDG_CONFIG_HOME")
		if cfg == "" {
			cfg = filepath.Join(a.Home, ".config")
		}
		return filepath.Join(cfg, "autostart", "ackgate.desktop"), nil
	}
}

// Content is the entry body for a.GOOS.
func (a Autostart) Content() string {
	switch a.GOOS {
	case "windows":
		return fmt.Sprintf("@echo off\r\nstart \"\" \"%s\"\r\n", a.Exe)
	case "darwin":
		return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>dev.tableflip.ackgate</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`, a.Exe)
	default:
		return fmt.Sprintf("[Desktop Entry]\nType=Application\nName=ackgate\nComment=Daily commitment gate\nExec=%q\nTerminal=true\nX-GNOME-Autostart-enabled=true\n", a.Exe)
	}
}

// InstallAutostart writes the login entry unless one already exists. It
// returns the entry path and whether it was created.
func InstallAutostart(a Autostart) (string, bool, error) {
	a, err := a.withDefaults()
	if err != nil {
		return "", false, err
	}
	path, err := a.Path()
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, false, fmt.Errorf("shell: autostart: %w", err)
	}
	if err := os.WriteFile(path, []byte(a.Content()), 0o644); err != nil {
		return path, false, fmt.Errorf("shell: autostart: %w", err)
	}
	return path, true, nil
}
