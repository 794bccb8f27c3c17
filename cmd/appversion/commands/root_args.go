package commands

import (
	"time"

	"github.com/MacroPower/appversion/pkg/appversion"
	"github.com/MacroPower/appversion/pkg/settings"
	"github.com/MacroPower/appversion/pkg/versionfile"
)

type RootArgs struct {
	logLevel         *string
	logFormat        *string
	cpuProfile       *string
	memProfile       *string
	heapProfile      *string
	blockProfile     *string
	mutexProfile     *string
	configFile       *string
	file             *string
	env              *string
	rootDir          *string
	appDir           *string
	namespace        *string
	resolver         *string
	noColor          *bool
	commitTimeout    *time.Duration
	memProfileRate   *int
	blockProfileRate *int
	mutexProfileRate *int

	settings   *settings.Settings
	store      *versionfile.Store
	descriptor *appversion.Descriptor
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:         new(string),
		logFormat:        new(string),
		cpuProfile:       new(string),
		memProfile:       new(string),
		heapProfile:      new(string),
		blockProfile:     new(string),
		mutexProfile:     new(string),
		configFile:       new(string),
		file:             new(string),
		env:              new(string),
		rootDir:          new(string),
		appDir:           new(string),
		namespace:        new(string),
		resolver:         new(string),
		noColor:          new(bool),
		commitTimeout:    new(time.Duration),
		memProfileRate:   new(int),
		blockProfileRate: new(int),
		mutexProfileRate: new(int),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetCPUProfile() string {
	return *a.cpuProfile
}

func (a *RootArgs) GetMemProfile() string {
	return *a.memProfile
}

func (a *RootArgs) GetHeapProfile() string {
	return *a.heapProfile
}

func (a *RootArgs) GetBlockProfile() string {
	return *a.blockProfile
}

func (a *RootArgs) GetMutexProfile() string {
	return *a.mutexProfile
}

func (a *RootArgs) GetMemProfileRate() int {
	return *a.memProfileRate
}

func (a *RootArgs) GetBlockProfileRate() int {
	return *a.blockProfileRate
}

func (a *RootArgs) GetMutexProfileRate() int {
	return *a.mutexProfileRate
}

func (a *RootArgs) GetConfigFile() string {
	return *a.configFile
}

func (a *RootArgs) GetFile() string {
	return *a.file
}

func (a *RootArgs) GetEnv() string {
	return *a.env
}

func (a *RootArgs) GetRootDir() string {
	return *a.rootDir
}

func (a *RootArgs) GetAppDir() string {
	return *a.appDir
}

func (a *RootArgs) GetNamespace() string {
	return *a.namespace
}

func (a *RootArgs) GetResolver() string {
	return *a.resolver
}

func (a *RootArgs) GetNoColor() bool {
	return *a.noColor
}

func (a *RootArgs) GetCommitTimeout() time.Duration {
	return *a.commitTimeout
}
