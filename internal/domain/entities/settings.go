package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// VersionToken is replaced by the new version inside Settings.CommitMessage.
const VersionToken = "{{version}}"

// ErrConfigNotFound is returned when no configuration file exists in the default locations.
var ErrConfigNotFound = errors.New("config file not found in default locations")

// Settings is the configuration of a verbump run.
type Settings struct {
	Manifest                     string        `yaml:"manifest"                     validate:"required"`
	ChangelogFile                string        `yaml:"changelogFile"                validate:"required"`
	UpdateChangelog              bool          `yaml:"updateChangelog"`
	GenerateChangelogFromCommits bool          `yaml:"generateChangelogFromCommits"`
	UpdateVersionReferences      bool          `yaml:"updateVersionReferences"`
	TagPrefix                    string        `yaml:"tagPrefix"`
	CommitMessage                string        `yaml:"commitMessage"                validate:"required"`
	Push                         bool          `yaml:"push"`
	Files                        []string      `yaml:"files"                        validate:"dive,required"`
	Patterns                     []PatternSpec `yaml:"patterns,omitempty"           validate:"dive"`
}

// settingsEnvironment lists the settings that can be overridden from the environment.
type settingsEnvironment struct {
	Manifest          string `env:"VERBUMP_MANIFEST"`
	ChangelogFile     string `env:"VERBUMP_CHANGELOG_FILE"`
	TagPrefix         string `env:"VERBUMP_TAG_PREFIX"`
	Push              bool   `env:"VERBUMP_PUSH"`
	GenerateChangelog bool   `env:"VERBUMP_GENERATE_CHANGELOG"`
}

// hclSettings mirrors Settings for HCL files. Absent attributes keep the value
// the struct held before decoding.
type hclSettings struct {
	Manifest                     string        `hcl:"manifest,optional"`
	ChangelogFile                string        `hcl:"changelog_file,optional"`
	UpdateChangelog              bool          `hcl:"update_changelog,optional"`
	GenerateChangelogFromCommits bool          `hcl:"generate_changelog_from_commits,optional"`
	UpdateVersionReferences      bool          `hcl:"update_version_references,optional"`
	TagPrefix                    string        `hcl:"tag_prefix,optional"`
	CommitMessage                string        `hcl:"commit_message,optional"`
	Push                         bool          `hcl:"push,optional"`
	Files                        []string      `hcl:"files,optional"`
	Patterns                     []PatternSpec `hcl:"pattern,block"`
}

// DefaultFileSpecs are the specifiers written to new configuration files.
func DefaultFileSpecs() []string {
	return []string{"README.md", "package.json", "CHANGELOG.md", "*.md", "src/**/*.js", "bin/**/*.js"}
}

// DefaultSettings returns the configuration used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Manifest:                "package.json",
		ChangelogFile:           "CHANGELOG.md",
		UpdateChangelog:         true,
		UpdateVersionReferences: true,
		TagPrefix:               "v",
		CommitMessage:           "chore(release): bump version to " + VersionToken,
		Files:                   DefaultFileSpecs(),
	}
}

// FormatCommitMessage renders the release commit message for version.
func (s *Settings) FormatCommitMessage(version string) string {
	return strings.ReplaceAll(s.CommitMessage, VersionToken, version)
}

// Tag returns the git tag of version.
func (s *Settings) Tag(version string) string {
	return s.TagPrefix + version
}

// LoadSettings reads the configuration of the project in dir. An explicit path
// wins over the default locations; without any file the defaults are used.
// Environment overrides (including a .env file in dir) are applied last.
func LoadSettings(dir, explicitPath string) (*Settings, error) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	path := explicitPath
	if path == "" {
		found, err := FindConfigFile(dir)
		if err != nil && !errors.Is(err, ErrConfigNotFound) {
			return nil, err
		}
		path = found
	}

	if path == "" {
		logger.Debug("No config file found, using defaults")
		settings := DefaultSettings()
		if err := settings.applyEnvironment(); err != nil {
			return nil, err
		}
		return settings, settings.Validate()
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in the standard locations below dir.
func FindConfigFile(dir string) (string, error) {
	locations := []string{
		dir,
		filepath.Join(dir, ".config"),
		filepath.Join(dir, "configs"),
	}

	names := []string{
		".verbump.yaml",
		".verbump.yml",
		".verbump.json",
		".verbump.hcl",
		".verbump-jsrc.json",
	}

	for _, loc := range locations {
		for _, name := range names {
			p := filepath.Join(loc, name)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrConfigNotFound
}

// NewSettings reads the configuration file at path on top of the defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		err = settings.decodeHCL(path, data)
	} else {
		err = settings.decodeYAML(data)
	}
	if err != nil {
		return nil, err
	}

	if envErr := settings.applyEnvironment(); envErr != nil {
		return nil, envErr
	}
	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// decodeYAML overlays a YAML (or JSON) document; absent keys keep their defaults.
func (s *Settings) decodeYAML(data []byte) error {
	if unmarshalErr := yaml.Unmarshal(data, s); unmarshalErr != nil {
		return fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}
	return nil
}

// decodeHCL overlays an HCL document. Environment variables are available as env.NAME.
func (s *Settings) decodeHCL(path string, data []byte) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filepath.Base(path))
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": environmentObject()},
	}

	decoded := hclSettings{
		Manifest:                     s.Manifest,
		ChangelogFile:                s.ChangelogFile,
		UpdateChangelog:              s.UpdateChangelog,
		GenerateChangelogFromCommits: s.GenerateChangelogFromCommits,
		UpdateVersionReferences:      s.UpdateVersionReferences,
		TagPrefix:                    s.TagPrefix,
		CommitMessage:                s.CommitMessage,
		Push:                         s.Push,
		Files:                        s.Files,
	}
	if diags = gohcl.DecodeBody(file.Body, evalCtx, &decoded); diags.HasErrors() {
		return fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	s.Manifest = decoded.Manifest
	s.ChangelogFile = decoded.ChangelogFile
	s.UpdateChangelog = decoded.UpdateChangelog
	s.GenerateChangelogFromCommits = decoded.GenerateChangelogFromCommits
	s.UpdateVersionReferences = decoded.UpdateVersionReferences
	s.TagPrefix = decoded.TagPrefix
	s.CommitMessage = decoded.CommitMessage
	s.Push = decoded.Push
	s.Files = decoded.Files
	if len(decoded.Patterns) > 0 {
		s.Patterns = decoded.Patterns
	}
	return nil
}

func environmentObject() cty.Value {
	values := make(map[string]cty.Value)
	for _, pair := range os.Environ() {
		name, value, ok := strings.Cut(pair, "=")
		if ok && name != "" {
			values[name] = cty.StringVal(value)
		}
	}
	return cty.ObjectVal(values)
}

// applyEnvironment overrides settings from VERBUMP_* variables.
func (s *Settings) applyEnvironment() error {
	overrides := settingsEnvironment{
		Manifest:          s.Manifest,
		ChangelogFile:     s.ChangelogFile,
		TagPrefix:         s.TagPrefix,
		Push:              s.Push,
		GenerateChangelog: s.GenerateChangelogFromCommits,
	}
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("failed to parse environment variables: %w", err)
	}

	s.Manifest = overrides.Manifest
	s.ChangelogFile = overrides.ChangelogFile
	s.TagPrefix = overrides.TagPrefix
	s.Push = overrides.Push
	s.GenerateChangelogFromCommits = overrides.GenerateChangelog
	return nil
}

// Validate checks the settings against their struct tags.
func (s *Settings) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.TrimPrefix(e.Namespace(), "Settings.")
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		default:
			messages = append(messages, fmt.Sprintf("%s failed validation: %s", field, e.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
