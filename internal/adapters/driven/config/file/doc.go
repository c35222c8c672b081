// Package file keeps testgen's settings in ~/.testgen/config.toml and its
// editable prompt templates in ~/.testgen/prompts/.
package file
