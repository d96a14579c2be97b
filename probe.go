package boundarybench

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// probeTimeout bounds every toolchain subprocess. A slow or wedged probe
// degrades to "unknown" rather than stalling the run.
const probeTimeout = 5 * time.Second

// probeUnknown is reported for any probe that fails. Probes are
// informational context for the report header; they never affect control
// flow or benchmark validity.
const probeUnknown = "unknown"

// probeCommand runs a command and returns the first non-empty line of its
// stdout, or probeUnknown if the command is missing, fails, times out, or
// prints nothing.
func probeCommand(name string, args ...string) string {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return probeUnknown
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return probeUnknown
	}
	return line
}

// GoToolchainVersion reports the installed go tool's version line.
func GoToolchainVersion() string {
	return probeCommand("go", "version")
}

// CCompilerVersion reports the system C compiler's version line, the
// toolchain behind the foreign-wrapped provider.
func CCompilerVersion() string {
	return probeCommand("cc", "--version")
}

// PlatformString describes the host: GOOS/GOARCH, with the kernel string
// appended when uname is available.
func PlatformString() string {
	plat := runtime.GOOS + "/" + runtime.GOARCH
	if uname := probeCommand("uname", "-sr"); uname != probeUnknown {
		plat += " (" + uname + ")"
	}
	return plat
}
