// Package schemas holds the JSON Schema documents for structured inputs.
package schemas

import "embed"

// Schema file names.
const (
	Resume      = "resume.schema.json"
	Preferences = "preferences.schema.json"
	Jobs        = "jobs.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Read returns the content of the named schema file.
func Read(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Names lists every embedded schema file.
func Names() []string {
	return []string{Resume, Preferences, Jobs}
}
