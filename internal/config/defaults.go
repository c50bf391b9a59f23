package config

const (
	defaultProjectDir    = "."
	defaultDistDir       = "dist"
	defaultLogDir        = "~/.local/share/stratship/logs"
	defaultReleaseNotes  = "RELEASE.md"
	defaultArtifactName  = "StratagemHotkeys"
	defaultArtifactExt   = ".exe"
	defaultGitBinary     = "git"
	defaultGitRemote     = "origin"
	defaultPublishBinary = "gh"
	defaultStratagemFile = "stratagems.json"
	defaultIconDir       = "StratagemIcons"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectDir:   defaultProjectDir,
			DistDir:      defaultDistDir,
			LogDir:       defaultLogDir,
			ReleaseNotes: defaultReleaseNotes,
		},
		Artifact: Artifact{
			Name:      defaultArtifactName,
			Extension: defaultArtifactExt,
		},
		Commands: Commands{
			Version: []string{"uv", "version", "--short"},
			Build:   []string{"uv", "run", "python", "build_exe.py"},
		},
		Git: Git{
			Binary: defaultGitBinary,
			Remote: defaultGitRemote,
		},
		Publish: Publish{
			Enabled: true,
			Binary:  defaultPublishBinary,
		},
		Checks: Checks{
			VerifyAssets:  true,
			StratagemFile: defaultStratagemFile,
			IconDir:       defaultIconDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
