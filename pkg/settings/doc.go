// Package settings loads appversion settings.
//
// Settings are merged from, in increasing order of precedence: built-in
// defaults, a settings file, APPVERSION_* environment variables, and
// explicitly set command line flags.
//
// The settings file is the first of:
//
//   - the path given with [WithConfigFile];
//   - .appversion.yaml in the working directory;
//   - appversion/config.yaml in the XDG config home.
//
// Example:
//
//	namespace: app_version
//	environment: dev
//	file: "%root%/config/version.yml"
//	commit:
//	  resolver: git
//	version:
//	  license: MIT
//	  copyright: ACME
package settings
