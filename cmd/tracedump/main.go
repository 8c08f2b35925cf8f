// Command tracedump prints tick traces written with -trace.
package main

import (
	"flag"
	"fmt"
	"os"

	"seagullz.com/seagullz/internal/telemetry"
)

func main() {
	var (
		file    = flag.String("file", "", "single trace file (.jsonl.zst)")
		dir     = flag.String("dir", "", "directory of trace files")
		summary = flag.Bool("summary", false, "print only the summary")
		every   = flag.Uint64("every", 1, "print every N ticks")
		session = flag.String("session", "", "only frames from this session")
	)
	flag.Parse()

	var files []string
	switch {
	case *file != "":
		files = []string{*file}
	case *dir != "":
		var err error
		files, err = telemetry.ListTraceFiles(*dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "list traces:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "missing -file or -dir")
		os.Exit(2)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "no trace files found in", *dir)
		os.Exit(1)
	}

	var frames []telemetry.Frame
	for _, path := range files {
		fs, err := telemetry.ReadFrames(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read trace:", err)
			os.Exit(1)
		}
		for _, f := range fs {
			if *session == "" || f.Session == *session {
				frames = append(frames, f)
			}
		}
	}

	if !*summary {
		n := *every
		if n == 0 {
			n = 1
		}
		for _, f := range frames {
			if f.Tick%n != 0 {
				continue
			}
			fmt.Printf("%s tick=%d stamina=%.2f sprinting=%t speed=%.1f health=%.0f pos=(%.1f,%.1f,%.1f) yaw=%.1f pitch=%.1f\n",
				f.Session, f.Tick, f.Stamina, f.Sprinting, f.Speed, f.Health, f.X, f.Y, f.Z, f.Yaw, f.Pitch)
		}
	}

	s := telemetry.Summarize(frames)
	fmt.Printf("frames=%d sessions=%d stamina=[%.2f,%.2f] sprint_ticks=%d forced_stops=%d final_stamina=%.2f final_health=%.0f\n",
		s.Frames, s.Sessions, s.MinStamina, s.MaxStamina, s.SprintTicks, s.ForcedStops, s.FinalStamina, s.FinalHealth)
}
