package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"

	"github.com/codeready-toolchain/maestro/ent"
	"github.com/codeready-toolchain/maestro/pkg/models"
)

// outputLimit caps captured stdout/stderr per stream.
const outputLimit = 1 << 20 // 1 MiB

// runSubprocess executes a command tool: argv from the spec, marshaled
// arguments on stdin, deadline at min(caller limit, wall budget).
func (s *Sandbox) runSubprocess(ctx context.Context, call models.FunctionCall, spec *ent.ToolSpec, limits Limits) (*Result, error) {
	args, err := json.Marshal(call.Arguments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal arguments: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, time.Duration(limits.WallMS)*time.Millisecond)
	defer cancel()

	cmd := exec.CommandContext(runCtx, spec.Command[0], spec.Command[1:]...)
	cmd.Stdin = bytes.NewReader(args)
	var stdout, stderr boundedBuffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if runCtx.Err() == context.DeadlineExceeded {
		return nil, &Violation{
			Kind:   ViolationTimeout,
			Detail: fmt.Sprintf("tool %s exceeded wall limit %d ms", spec.Name, limits.WallMS),
		}
	}

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Usage:  rusageOf(cmd),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.Status = "error"
			return result, nil // non-zero exit is tool failure, not sandbox failure
		}
		return nil, fmt.Errorf("failed to run tool %s: %w", spec.Name, runErr)
	}

	result.Status = "ok"
	result.ResultValue = parseResultValue(result.Stdout)
	return result, nil
}

// runHandler executes an in-process tool under the same wall clock. No
// rusage attribution is possible for goroutines.
func (s *Sandbox) runHandler(ctx context.Context, call models.FunctionCall, spec *ent.ToolSpec, limits Limits) (*Result, error) {
	handler, ok := s.handlers[spec.Handler]
	if !ok {
		return nil, fmt.Errorf("tool %s names unregistered handler %q", spec.Name, spec.Handler)
	}

	runCtx, cancel := context.WithTimeout(ctx, time.Duration(limits.WallMS)*time.Millisecond)
	defer cancel()

	type outcome struct {
		value any
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		value, err := handler(runCtx, call.Arguments)
		done <- outcome{value, err}
	}()

	select {
	case <-runCtx.Done():
		return nil, &Violation{
			Kind:   ViolationTimeout,
			Detail: fmt.Sprintf("handler %s exceeded wall limit %d ms", spec.Handler, limits.WallMS),
		}
	case out := <-done:
		if out.err != nil {
			return &Result{Status: "error", Stderr: out.err.Error()}, nil
		}
		return &Result{Status: "ok", ResultValue: out.value}, nil
	}
}

// rusageOf extracts max RSS and CPU time from the finished process.
func rusageOf(cmd *exec.Cmd) Usage {
	var usage Usage
	if cmd.ProcessState == nil {
		return usage
	}
	cpu := cmd.ProcessState.UserTime() + cmd.ProcessState.SystemTime()
	usage.CPUMS = cpu.Milliseconds()
	if ru, ok := cmd.ProcessState.SysUsage().(*syscall.Rusage); ok {
		usage.MaxRSSKB = ru.Maxrss // KiB on Linux
	}
	return usage
}

// parseResultValue decodes JSON stdout when the tool emitted it, otherwise
// returns the raw text.
func parseResultValue(stdout string) any {
	trimmed := bytes.TrimSpace([]byte(stdout))
	if len(trimmed) == 0 {
		return nil
	}
	var value any
	if err := json.Unmarshal(trimmed, &value); err == nil {
		return value
	}
	return stdout
}

// boundedBuffer keeps at most outputLimit bytes and silently discards the
// rest, so a runaway tool cannot exhaust memory through its output.
type boundedBuffer struct {
	buf bytes.Buffer
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	remaining := outputLimit - b.buf.Len()
	if remaining <= 0 {
		return len(p), nil
	}
	if len(p) > remaining {
		b.buf.Write(p[:remaining])
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *boundedBuffer) String() string {
	return b.buf.String()
}
