package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes {{.VAR_NAME}} references in agent-tracker.yaml with
// environment values. Shell-style $VAR is left alone so tokens and DSNs that
// contain a literal $ survive untouched. Missing variables expand to "".
//
// Content that is not a valid template is returned unchanged and left for the
// YAML parser to report.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("agent-tracker").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
