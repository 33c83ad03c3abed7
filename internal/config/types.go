// Package config loads the YAML page configuration.
package config

import (
	"github.com/alexisbeaulieu97/pageshell/internal/app"
	"github.com/alexisbeaulieu97/pageshell/internal/logger"
	"github.com/alexisbeaulieu97/pageshell/internal/sections"
	"github.com/alexisbeaulieu97/pageshell/internal/style"
)

// Version is the only supported config schema version.
const Version = "1"

// DefaultAddr is the address the preview server listens on.
const DefaultAddr = ":3001"

// EnvAddr overrides Server.Addr.
const EnvAddr = "PAGESHELL_ADDR"

// Config is the root configuration document. ViewportWidth is the CSS pixel
// width the terminal renderer evaluates media queries against; zero derives
// it from the terminal width.
type Config struct {
	Version       string       `yaml:"version" validate:"required,eq=1"`
	Title         string       `yaml:"title"`
	Placeholder   string       `yaml:"placeholder"`
	Navbar        TextConfig   `yaml:"navbar"`
	Body          TextConfig   `yaml:"body"`
	ViewportWidth int          `yaml:"viewport_width" validate:"gte=0,lte=100000"`
	Server        ServerConfig `yaml:"server"`
}

// TextConfig overrides a section's text presentation. Empty fields keep the
// section's own defaults.
type TextConfig struct {
	TextColor string `yaml:"text_color" validate:"omitempty,css_color"`
	FontSize  string `yaml:"font_size" validate:"omitempty,css_length"`
}

// ServerConfig configures the HTTP preview server.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version:     Version,
		Title:       app.DefaultTitle,
		Placeholder: sections.DefaultPlaceholder,
		Server:      ServerConfig{Addr: DefaultAddr},
	}
}

// AppOptions converts the configuration into shell options.
func (c *Config) AppOptions(log *logger.Logger) app.Options {
	return app.Options{
		Title: c.Title,
		Navbar: sections.NavbarOptions{
			Placeholder: c.Placeholder,
			TextColor:   style.Maybe(c.Navbar.TextColor),
			FontSize:    style.Maybe(c.Navbar.FontSize),
		},
		PageBody: sections.PageBodyOptions{
			Placeholder: c.Placeholder,
			TextColor:   style.Maybe(c.Body.TextColor),
			FontSize:    style.Maybe(c.Body.FontSize),
		},
		Logger: log,
	}
}

// ApplyEnv overrides fields from the environment. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		return
	}
	if addr, ok := lookup(EnvAddr); ok && addr != "" {
		c.Server.Addr = addr
	}
}
