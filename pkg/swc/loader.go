package swc

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate = validator.New()

// Load reads and parses a workspace from a YAML file.
func Load(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load workspace: %w", err)
	}
	ws, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load workspace %s: %w", path, err)
	}
	return ws, nil
}

// Parse decodes a workspace from YAML, validates its structure and
// rejects dangling references.
func Parse(data []byte) (*Workspace, error) {
	var ws Workspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parse workspace: %w", err)
	}
	if err := validate.Struct(&ws); err != nil {
		return nil, fmt.Errorf("invalid workspace: %w", err)
	}
	if err := ws.normalize(); err != nil {
		return nil, fmt.Errorf("invalid workspace: %w", err)
	}
	if err := ws.checkReferences(); err != nil {
		return nil, fmt.Errorf("invalid workspace: %w", err)
	}
	return &ws, nil
}

// NewWorkspace builds a workspace from in-memory collections, running
// the same normalization and reference checks as Parse.
func NewWorkspace(types []*DataType, interfaces []*PortInterface, constants []*Constant, components []*Component) (*Workspace, error) {
	ws := &Workspace{
		Types:      types,
		Interfaces: interfaces,
		Constants:  constants,
		Components: components,
	}
	if err := ws.normalize(); err != nil {
		return nil, fmt.Errorf("invalid workspace: %w", err)
	}
	if err := ws.checkReferences(); err != nil {
		return nil, fmt.Errorf("invalid workspace: %w", err)
	}
	return ws, nil
}
