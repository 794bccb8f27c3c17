// Package pathutil maps version file paths to and from their symbolic,
// project-relative form.
//
// Two markers are recognized. [RootMarker] stands for the application
// directory and [ParentMarker] for the project root directory. A path stored
// with a marker stays valid when the project is deployed to a different
// location.
package pathutil
