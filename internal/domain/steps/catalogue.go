package steps

import (
	m "upshift.dev/pkg/upshift/internal/model"
)

// Catalogue returns every known step in ascending version order.
func Catalogue() []Step {
	return []Step{
		angular16(),
		angular17(),
		angular18(),
		angular19(),
	}
}

// Newest returns the highest version the catalogue migrates to.
func Newest() m.Version {
	all := Catalogue()
	return all[len(all)-1].To
}

// frameworkBumps bumps the framework and tooling scopes to version.
func frameworkBumps(version string, extra ...DependencyBump) []DependencyBump {
	return append([]DependencyBump{
		{Name: "@angular/*", Version: version},
		{Name: "@angular-devkit/*", Version: version},
	}, extra...)
}

var componentDecorators = []string{"Component", "Directive", "Pipe"}

var moduleDecorators = []string{"NgModule"}

// targetOptions resolves every builder options block of angular.json.
var targetOptions = []string{"projects", "*", "architect", "*", "options"}

// targetConfigurations resolves every named configuration of angular.json.
var targetConfigurations = []string{"projects", "*", "architect", "*", "configurations", "*"}

func polyfillPaths() []string {
	return append(append([]string(nil), targetOptions...), "polyfills")
}
