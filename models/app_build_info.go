// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const buildInfoUnknown = "N/A"

// AppBuildInfo carries build metadata injected with -ldflags into the server
// binary. Empty values read as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// HasVersion reports whether a release version was stamped at link time.
func (a AppBuildInfo) HasVersion() bool {
	return a.buildVersion != ""
}

func (a AppBuildInfo) BuildVersion() string {
	return orUnknown(a.buildVersion)
}

func (a AppBuildInfo) BuildDate() string {
	return orUnknown(a.buildDate)
}

func (a AppBuildInfo) BuildCommit() string {
	return orUnknown(a.buildCommit)
}

func orUnknown(s string) string {
	if s == "" {
		return buildInfoUnknown
	}
	return s
}
