package actionfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/actdeck/pkg/actions"
	"github.com/arthur-debert/actdeck/pkg/console"
	"github.com/arthur-debert/actdeck/pkg/errors"
)

// DefaultShell runs commands that do not name a shell
var DefaultShell = []string{"sh", "-c"}

// Definition describes one shell action
type Definition struct {
	Name    string            `toml:"name" yaml:"name"`
	Command string            `toml:"command" yaml:"command"`
	Shell   []string          `toml:"shell,omitempty" yaml:"shell,omitempty"`
	Dir     string            `toml:"dir,omitempty" yaml:"dir,omitempty"`
	Confirm bool              `toml:"confirm" yaml:"confirm"`
	Env     map[string]string `toml:"env,omitempty" yaml:"env,omitempty"`
}

// File is the top-level document of an action file
type File struct {
	Actions []Definition `toml:"actions" yaml:"actions"`
}

// Load reads and validates an action file. The format is chosen by
// extension: .toml, .yaml or .yml.
func Load(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrActionFile, "failed to read action file %s", path).
			WithDetail("path", path)
	}

	defs, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "invalid action file %s", path).
			WithDetail("path", path)
	}
	return defs, nil
}

// Parse decodes action definitions in the format named by ext
func Parse(data []byte, ext string) ([]Definition, error) {
	var file File

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(err, errors.ErrActionFile, "failed to parse TOML")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(err, errors.ErrActionFile, "failed to parse YAML")
		}
	default:
		return nil, errors.Newf(errors.ErrActionFile, "unsupported action file extension %q", ext)
	}

	if err := validate(file.Actions); err != nil {
		return nil, err
	}
	return file.Actions, nil
}

func validate(defs []Definition) error {
	seen := make(map[string]bool)
	for i, def := range defs {
		if def.Name == "" {
			return errors.Newf(errors.ErrInvalidArgument, "action #%d has no name", i+1)
		}
		if strings.TrimSpace(def.Command) == "" {
			return errors.Newf(errors.ErrInvalidArgument, "action '%s' has no command", def.Name).
				WithDetail("action", def.Name)
		}
		if seen[def.Name] {
			return errors.Newf(errors.ErrDuplicateName, "action '%s' is defined twice", def.Name).
				WithDetail("action", def.Name)
		}
		seen[def.Name] = true
	}
	return nil
}

// Describe renders the command line the handler runs, e.g. sh -c "echo hi"
func (d Definition) Describe() string {
	shell := d.shell()
	return fmt.Sprintf("%s %q", strings.Join(shell, " "), d.Command)
}

func (d Definition) shell() []string {
	if len(d.Shell) == 0 {
		return DefaultShell
	}
	return d.Shell
}

// Handler returns an action handler running the command. Exit status 0
// reports true; any other outcome is an error.
func (d Definition) Handler(stdout, stderr io.Writer) actions.Handler {
	return func() (bool, error) {
		shell := d.shell()
		args := append(append([]string{}, shell[1:]...), d.Command)
		cmd := exec.Command(shell[0], args...)
		cmd.Dir = d.Dir
		cmd.Stdout = stdout

		var captured bytes.Buffer
		cmd.Stderr = io.MultiWriter(stderr, &captured)

		if len(d.Env) > 0 {
			cmd.Env = os.Environ()
			for k, v := range d.Env {
				cmd.Env = append(cmd.Env, k+"="+v)
			}
		}

		if err := cmd.Run(); err != nil {
			return false, fmt.Errorf("command %q failed: %w: %s", d.Command, err, strings.TrimSpace(captured.String()))
		}
		return true, nil
	}
}

// RegisterAll registers every definition with c, stopping at the first failure
func RegisterAll(c *console.Console, defs []Definition, stdout, stderr io.Writer) error {
	for _, def := range defs {
		if _, err := c.RegisterDescribed(def.Name, def.Describe(), def.Handler(stdout, stderr), def.Confirm); err != nil {
			return err
		}
	}
	return nil
}

// LoadAndRegister loads each file in order and registers its actions
func LoadAndRegister(c *console.Console, paths []string, stdout, stderr io.Writer) error {
	for _, path := range paths {
		defs, err := Load(path)
		if err != nil {
			return err
		}
		if err := RegisterAll(c, defs, stdout, stderr); err != nil {
			return errors.Wrapf(err, errors.GetErrorCode(err), "failed to register actions from %s", path).
				WithDetail("path", path)
		}
	}
	return nil
}
