// Package config loads genicon settings from YAML files.
//
// Example genicon.yaml:
//
//	baseDir: ./modules/remote-desktop
//	quiet: false
//
// Unknown keys are rejected so typos surface instead of being ignored.
package config
