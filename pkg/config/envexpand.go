package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go templates
// with {{.VAR_NAME}} syntax. Plain $ characters are left alone, so regex
// signatures in sandbox config and passwords survive untouched.
//
// Missing variables expand to empty string; validation catches required
// fields that end up empty. Malformed templates pass the data through
// unchanged so the YAML parser produces the clearer error.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split only on the first = to handle values containing =.
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}

	return buf.Bytes()
}
