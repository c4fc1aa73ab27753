package game

import (
	"fmt"
	"io"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flowfield/telemetry"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logPerfStats dumps a human readable frame breakdown.
func (g *Game) logPerfStats() {
	stats := g.perf.Stats()
	Logf("=== Perf @ Frame %d | FPS: %d ===", g.frame, rl.GetFPS())
	Logf("Avg frame: %s (min %s, max %s)",
		stats.AvgFrame.Round(time.Microsecond),
		stats.MinFrame.Round(time.Microsecond),
		stats.MaxFrame.Round(time.Microsecond))

	for _, phase := range []string{
		telemetry.PhaseRebuild, telemetry.PhaseRedraw, telemetry.PhaseUpload, telemetry.PhaseUI,
	} {
		Logf("  %-8s %10s  %5.1f%%", phase,
			stats.PhaseAvg[phase].Round(time.Microsecond), stats.PhasePct[phase])
	}
}
