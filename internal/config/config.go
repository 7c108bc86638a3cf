package config

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	gserrors "gitsplit.dev/gitsplit/internal/errors"
	"gitsplit.dev/gitsplit/internal/git"
)

const (
	// DefaultFileName is the configuration file read from the current directory
	DefaultFileName = ".gitsplit.yml"

	// DefaultWorkers is the width of the push worker pool
	DefaultWorkers = 5

	// DefaultSplitTool is the subtree split executable
	DefaultSplitTool = "splitsh-lite"

	// SplitToolEnv overrides the split tool when the file does not set one
	SplitToolEnv = "GITSPLIT_SPLIT_TOOL"
)

// StringList is a list of strings that also accepts a single scalar in YAML
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*l = list
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

// File is the schema of the configuration document
type File struct {
	CacheDir   string      `yaml:"cache_dir,omitempty"`
	ProjectDir string      `yaml:"project_dir,omitempty"`
	Origins    StringList  `yaml:"origins,omitempty"`
	Splits     []SplitFile `yaml:"splits"`
	Workers    int         `yaml:"workers,omitempty"`
	SplitTool  string      `yaml:"split_tool,omitempty"`
}

// SplitFile is one entry of the splits list
type SplitFile struct {
	Prefix StringList `yaml:"prefix"`
	Target StringList `yaml:"target"`
}

// Load reads, interpolates and resolves the configuration file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, gserrors.NewConfigError(path, gserrors.ErrConfigNotFound)
	}
	if err != nil {
		return nil, gserrors.NewConfigError(path, err)
	}

	file, err := Parse(data, os.LookupEnv)
	if err != nil {
		return nil, gserrors.NewConfigError(path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, gserrors.NewConfigError(path, err)
	}

	cfg, err := Resolve(file, filepath.Dir(absPath))
	if err != nil {
		return nil, gserrors.NewConfigError(path, err)
	}
	cfg.Path = absPath
	return cfg, nil
}

// Parse decodes a configuration document, interpolating environment variables
// in values with lookup. Unknown keys are rejected.
func Parse(data []byte, lookup func(string) (string, bool)) (*File, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if root.Kind == 0 {
		return nil, errors.New("configuration is empty")
	}
	interpolateNode(&root, lookup)

	expanded, err := yaml.Marshal(&root)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode configuration: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(expanded))
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return &file, nil
}

// Resolve validates file and turns it into a Config. Relative directories are
// taken relative to baseDir.
func Resolve(file *File, baseDir string) (*Config, error) {
	if len(file.Splits) == 0 {
		return nil, errors.New("splits: at least one split is required")
	}

	cfg := &Config{
		Workers:   file.Workers,
		SplitTool: file.SplitTool,
	}

	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers: must be positive, got %d", cfg.Workers)
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.SplitTool == "" {
		cfg.SplitTool = os.Getenv(SplitToolEnv)
	}
	if cfg.SplitTool == "" {
		cfg.SplitTool = DefaultSplitTool
	}

	origins := file.Origins
	if len(origins) == 0 {
		origins = StringList{DefaultOriginPattern}
	}
	for _, expr := range origins {
		pattern, err := NewOriginPattern(expr)
		if err != nil {
			return nil, fmt.Errorf("origins: %w", err)
		}
		cfg.Origins = append(cfg.Origins, pattern)
	}

	for i, split := range file.Splits {
		rule, err := newSplitRule(split)
		if err != nil {
			return nil, fmt.Errorf("splits[%d]: %w", i, err)
		}
		cfg.Splits = append(cfg.Splits, rule)
	}

	projectDir := file.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}
	root, err := git.FindRepoRoot(absolute(baseDir, projectDir))
	if err != nil {
		return nil, fmt.Errorf("project_dir: %w", err)
	}
	cfg.ProjectDir = root

	if file.CacheDir != "" {
		cfg.CacheDir = absolute(baseDir, file.CacheDir)
	} else {
		cfg.CacheDir = DefaultCacheDir(cfg.ProjectDir)
	}

	return cfg, nil
}

// DefaultCacheDir returns the mirror location used when cache_dir is unset.
// It is keyed by the project so that consecutive runs reuse the same mirror,
// and lives in the user's cache directory so other users cannot claim it.
func DefaultCacheDir(projectDir string) string {
	// nolint:gosec // Used as a stable name, not for security
	sum := sha1.Sum([]byte(projectDir))
	key := hex.EncodeToString(sum[:])[:12]

	base, err := os.UserCacheDir()
	if err != nil {
		// no home directory: fall back to a per-user name in the temp dir
		return filepath.Join(os.TempDir(), fmt.Sprintf("gitsplit-%d-%s", os.Getuid(), key))
	}
	return filepath.Join(base, "gitsplit", key)
}

func newSplitRule(split SplitFile) (SplitRule, error) {
	if len(split.Prefix) == 0 {
		return SplitRule{}, errors.New("prefix is required")
	}
	if len(split.Target) == 0 {
		return SplitRule{}, errors.New("target is required")
	}

	rule := SplitRule{}
	for _, prefix := range split.Prefix {
		if prefix == "" {
			return SplitRule{}, errors.New("prefix must not be empty")
		}
		rule.Prefixes = append(rule.Prefixes, prefix)
	}
	for _, url := range split.Target {
		if url == "" {
			return SplitRule{}, errors.New("target must not be empty")
		}
		rule.Targets = append(rule.Targets, NewTargetSpec(url))
	}
	return rule, nil
}

func absolute(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
