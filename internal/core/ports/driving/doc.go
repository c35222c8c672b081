// Package driving declares what the CLI, the TUI and the MCP server call:
// the WorkbenchService pipeline and the SettingsService.
package driving
