// Command iohook-demo is the external harness for the iohook library,
// mirroring cmd/breeze-agent's rootCmd/runCmd cobra shape: `run` attaches a
// dispatcher and logs every event, `record` captures a session to a YAML
// macro (optionally relayed live over a WebSocket), `replay` feeds a
// recorded macro back through PostEvent, and `type` injects literal text.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf16"

	"github.com/spf13/cobra"

	"github.com/zhaoq-v/iohook"
	"github.com/zhaoq-v/iohook/internal/config"
	"github.com/zhaoq-v/iohook/internal/eventstream"
	"github.com/zhaoq-v/iohook/internal/logging"
)

var (
	version = "0.1.0"
	cfgFile string
)

var log = logging.L("main")

var rootCmd = &cobra.Command{
	Use:   "iohook-demo",
	Short: "iohook demonstration harness",
	Long:  "iohook-demo exercises the iohook keyboard/mouse hooking library from the command line.",
}

var (
	streamURL  string
	outputFile string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Attach a dispatcher and log every captured event",
	Run: func(cmd *cobra.Command, args []string) {
		runDemo()
	},
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Capture a macro to a YAML file",
	Run: func(cmd *cobra.Command, args []string) {
		recordMacro()
	},
}

var replayCmd = &cobra.Command{
	Use:   "replay [macro-file]",
	Short: "Replay a recorded macro via PostEvent",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		replayMacro(args[0])
	},
}

var typeCmd = &cobra.Command{
	Use:   "type [text]",
	Short: "Inject literal text via PostText",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		typeText(args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("iohook-demo v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/iohook-demo/iohook-demo.yaml)")
	recordCmd.Flags().StringVar(&streamURL, "stream", "", "WebSocket URL to relay captured events to as they happen")
	recordCmd.Flags().StringVar(&outputFile, "out", "", "macro output file (default from config record_output_file)")

	rootCmd.AddCommand(runCmd, recordCmd, replayCmd, typeCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadDemoConfig() *config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogFormat, cfg.LogLevel, os.Stdout)
	log = logging.L("main")
	iohook.SetPostTextDelayX11(int64(cfg.X11PostTextDelayMS) * int64(time.Millisecond))
	return cfg
}

func waitForInterrupt() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
}

func eventName(t iohook.EventType) string {
	switch t {
	case iohook.KeyPressed:
		return "KEY_PRESSED"
	case iohook.KeyReleased:
		return "KEY_RELEASED"
	case iohook.KeyTyped:
		return "KEY_TYPED"
	case iohook.MousePressed:
		return "MOUSE_PRESSED"
	case iohook.MouseReleased:
		return "MOUSE_RELEASED"
	case iohook.MouseClicked:
		return "MOUSE_CLICKED"
	case iohook.MouseMoved:
		return "MOUSE_MOVED"
	case iohook.MouseDragged:
		return "MOUSE_DRAGGED"
	case iohook.MouseWheel:
		return "MOUSE_WHEEL"
	default:
		return "EVENT"
	}
}

func runDemo() {
	loadDemoConfig()

	iohook.SetDispatchProc(func(ev *iohook.VirtualEvent) bool {
		log.Info(eventName(ev.Type),
			"mask", ev.Mask,
			"keyCode", ev.KeyCode,
			"keyChar", ev.KeyChar,
			"button", ev.Button,
			"x", ev.X,
			"y", ev.Y,
		)
		return false
	})

	go func() {
		waitForInterrupt()
		log.Info("stopping")
		iohook.Stop()
	}()

	log.Info("starting capture, press Ctrl+C to stop")
	if err := iohook.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}

func recordMacro() {
	cfg := loadDemoConfig()

	out := outputFile
	if out == "" {
		out = cfg.RecordOutputFile
	}

	streamTo := streamURL
	if streamTo == "" {
		streamTo = cfg.StreamURL
	}

	var stream *eventstream.Client
	if streamTo != "" {
		s, err := eventstream.Dial(streamTo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "stream dial: %v\n", err)
			os.Exit(1)
		}
		defer s.Close()
		stream = s
	}

	var recorded []macroEvent
	var lastTime int64

	iohook.SetDispatchProc(func(ev *iohook.VirtualEvent) bool {
		var delta int64
		if lastTime != 0 {
			delta = (ev.Time - lastTime) / int64(time.Millisecond)
		}
		lastTime = ev.Time
		recorded = append(recorded, toMacroEvent(ev, delta))
		if stream != nil {
			stream.Send(ev)
		}
		return false
	})

	go func() {
		waitForInterrupt()
		log.Info("stopping, saving macro", "file", out, "events", len(recorded))
		iohook.Stop()
	}()

	log.Info("recording, press Ctrl+C to stop and save")
	if err := iohook.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}

	if err := saveMacro(out, recorded); err != nil {
		fmt.Fprintf(os.Stderr, "saving macro: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("saved %d events to %s\n", len(recorded), out)
}

func replayMacro(path string) {
	loadDemoConfig()

	events, err := loadMacro(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading macro: %v\n", err)
		os.Exit(1)
	}

	for _, m := range events {
		if m.DeltaMS > 0 {
			time.Sleep(time.Duration(m.DeltaMS) * time.Millisecond)
		}
		if err := iohook.PostEvent(m.toVirtualEvent()); err != nil {
			fmt.Fprintf(os.Stderr, "post event: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("replayed %d events\n", len(events))
}

func typeText(text string) {
	loadDemoConfig()

	units := utf16.Encode([]rune(text))
	if err := iohook.PostText(units); err != nil {
		fmt.Fprintf(os.Stderr, "post text: %v\n", err)
		os.Exit(1)
	}
}
