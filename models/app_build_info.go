// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Masaki Kondo

package models

// AppBuildInfo holds the version, date and commit stamped into the wordbook
// client binary by -ldflags. The ABOUT screen and the startup banner render
// it; empty fields display as N/A there.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the release version of the client.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the commit hash the client was built from.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
