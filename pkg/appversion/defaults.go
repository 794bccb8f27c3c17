package appversion

// Defaults are initial descriptor values, typically taken from settings.
// Zero values are not applied, except for the version numbers which are
// always applied.
type Defaults struct {
	PreRelease      string
	Build           string
	DeployTimestamp string
	License         string
	Copyright       string
	Credits         []string
	Major           int
	Minor           int
	Patch           int
	ApplyAssets     bool
}

// DefaultDefaults returns the defaults of a new descriptor: version 0.1.0
// and nothing else.
func DefaultDefaults() Defaults {
	return Defaults{Minor: 1}
}

func (def Defaults) apply(d *Descriptor) {
	d.SetMajor(def.Major).SetMinor(def.Minor).SetPatch(def.Patch)

	if def.PreRelease != "" {
		d.SetPreRelease(def.PreRelease)
	}

	if def.Build != "" {
		d.SetBuild(def.Build)
	}

	if def.DeployTimestamp != "" {
		d.SetDeployTimestamp(def.DeployTimestamp)
	}

	if def.License != "" {
		d.SetLicense(def.License)
	}

	if def.Copyright != "" {
		d.SetCopyright(def.Copyright)
	}

	if len(def.Credits) > 0 {
		d.SetCredits(def.Credits)
	}

	if def.ApplyAssets {
		d.SetApplyAssets(true)
	}
}
