// Package versiontui asks for version descriptor values, either through an
// interactive terminal UI or through plain line prompts.
package versiontui
