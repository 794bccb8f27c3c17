package verrors

import (
	"errors"
	"fmt"
)

var (
	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)

	// ErrRead indicates an error occurred while reading.
	ErrRead = errors.New("read")

	// ErrReadFile indicates an error occurred while reading a file.
	ErrReadFile = fmt.Errorf("file: %w", ErrRead)

	// ErrInvalidFormat indicates an unexpected or invalid format was encountered.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrFileNotFound indicates a file wasn't found in the specified path.
	ErrFileNotFound = errors.New("file not found")

	// ErrResolvedOutsideRepo indicates a path resolved outside the repository root.
	ErrResolvedOutsideRepo = errors.New("file resolved to outside repository root")

	// ErrResolvePath indicates a path could not be resolved.
	ErrResolvePath = errors.New("resolve path")

	// ErrNoFile indicates a version file operation was attempted before a
	// target file was set.
	ErrNoFile = errors.New("no version file set")

	// ErrMissingFile indicates the required version file setting is missing.
	ErrMissingFile = errors.New("missing required setting: file")

	// ErrInvalidSettings indicates the settings could not be loaded.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrUnknownField indicates a version field name that does not exist.
	ErrUnknownField = errors.New("unknown version field")

	// ErrInvalidVersion indicates a version string that is not semantic.
	ErrInvalidVersion = errors.New("invalid semantic version")

	// ErrYAMLMarshal indicates an error occurred while marshaling YAML.
	ErrYAMLMarshal = errors.New("marshal YAML")

	// ErrJSONMarshal indicates an error occurred while marshaling JSON.
	ErrJSONMarshal = errors.New("marshal JSON")

	// ErrParseArgs indicates an error occurred while parsing arguments.
	ErrParseArgs = errors.New("parse arguments")
)
