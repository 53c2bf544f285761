package sandbox

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// forbiddenSignatures are matched against the rendered invocation before
// anything spawns. They catch arguments smuggling in subprocess spawning,
// filesystem escape, raw network primitives, or privilege escalation that
// the tool's own schema did not forbid.
var forbiddenSignatures = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"subprocess_spawn", regexp.MustCompile(`(?i)\b(?:os\.system|subprocess|popen|execve?|fork\s*\(|spawn)\b`)},
	{"shell_injection", regexp.MustCompile("\\$\\(|`[^`]+`|&&\\s*(?:rm|curl|wget|sh|bash)\\b|;\\s*(?:rm|curl|wget|sh|bash)\\b")},
	{"filesystem_escape", regexp.MustCompile(`\.\./|\.\.\\|/etc/(?:passwd|shadow|sudoers)|~root`)},
	{"network_primitive", regexp.MustCompile(`(?i)\b(?:socket\s*\(|/dev/tcp/|nc\s+-l|netcat|curl\s+.*\|\s*(?:ba)?sh)\b`)},
	{"privilege_escalation", regexp.MustCompile(`(?i)\b(?:sudo|setuid|setcap|chmod\s+[0-7]*[4-7][0-7]{2}\s+|doas)\b`)},
}

// screen matches the rendered argv and arguments against the forbidden
// signature list.
func screen(call models.FunctionCall, spec *ent.ToolSpec) error {
	rendered := renderInvocation(call, spec)
	for _, sig := range forbiddenSignatures {
		if sig.pattern.MatchString(rendered) {
			return &Violation{
				Kind:   ViolationForbidden,
				Detail: fmt.Sprintf("invocation matches forbidden signature %q", sig.name),
			}
		}
	}
	return nil
}

// renderInvocation produces the string the screen inspects: the argv
// template plus the marshaled arguments, exactly what the subprocess or
// handler will see.
func renderInvocation(call models.FunctionCall, spec *ent.ToolSpec) string {
	var b strings.Builder
	b.WriteString(strings.Join(spec.Command, " "))
	b.WriteString(" ")
	if args, err := json.Marshal(call.Arguments); err == nil {
		b.Write(args)
	}
	return b.String()
}
