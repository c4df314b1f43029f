package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/httpfmt/internal/constants"
	"github.com/oshokin/httpfmt/internal/utils"
)

var (
	// ErrConfigExists indicates that WriteDefaultConfig would overwrite an existing file.
	ErrConfigExists = errors.New("config file already exists")
	// ErrUnknownKey indicates that SetValue was given a key the config does not have.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrMalformedConfig indicates that the config file is not a YAML mapping.
	ErrMalformedConfig = errors.New("config file is not a YAML mapping")
)

// WriteDefaultConfig writes the default configuration to path.
// An existing file is only replaced when overwrite is set.
func WriteDefaultConfig(path string, overwrite bool) error {
	if path == "" {
		path = DefaultConfigFilename
	}

	if !overwrite {
		exists, err := utils.IsFileExist(path)
		if err != nil {
			return fmt.Errorf("failed to check config file: %w", err)
		}

		if exists {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	content, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(path, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetValue replaces the scalar value of key in the config file at path, keeping key order and comments.
// A missing file is created from the defaults first.
func SetValue(path, key, value string) error {
	if path == "" {
		path = DefaultConfigFilename
	}

	if !isScalarKey(key) {
		return fmt.Errorf("%w: '%s'", ErrUnknownKey, key)
	}

	originalContent, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if originalContent, err = yaml.Marshal(Default()); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err = setValueInNode(&node, key, value); err != nil {
		return err
	}

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(path, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isScalarKey reports whether key names a non-list field of Config.
func isScalarKey(key string) bool {
	switch key {
	case "log_level", "record_level", "sanitize", "cookie_date_layout", "cookie_time_zone",
		"xml_indent", "html_indent", "prettify_cache_size", "max_body_size", "output_path",
		"mongo_uri", "mongo_database", "mongo_collection":
		return true
	default:
		return false
	}
}

// setValueInNode updates key in the YAML node tree or appends it when absent.
func setValueInNode(node *yaml.Node, key, value string) error {
	// The root node is a document node, content[0] is the actual map.
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return ErrMalformedConfig
	}

	mapNode := node.Content[0]

	// Key-value pairs are stored as alternating nodes.
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value != key {
			continue
		}

		valueNode.Kind = yaml.ScalarNode
		valueNode.Tag = ""
		valueNode.Value = value
		valueNode.Content = nil

		return nil
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value},
	)

	return nil
}
