// Command sysmon-agent runs the monitoring agent's sampling loop and its
// Model Context Protocol tool server side by side.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	agent "github.com/coreprobe/sysmon"
	"github.com/coreprobe/sysmon/health"
	"github.com/coreprobe/sysmon/toolapi"
	"github.com/spf13/pflag"
)

const appName = "sysmon-agent"

// version is set at build time via -ldflags.
var version = "dev"

type cmdOptions struct {
	version bool
	help    bool
}

// parse handles the "health" subcommand before any pflag parsing (it has no
// flags of its own), then defines the remaining flags. It returns true when
// the caller should exit without starting the agent.
func (opts *cmdOptions) parse() bool {
	subcommand := ""
	if len(os.Args) > 1 {
		subcommand = os.Args[1]
	}

	switch subcommand {
	case "health":
		if err := health.Check(); err != nil {
			log.Fatal(err)
		}
		fmt.Print("ok")
		return true
	}

	pflag.BoolVarP(&opts.version, "version", "v", false, "Show version information")
	pflag.BoolVarP(&opts.help, "help", "h", false, "Show this help message")

	pflag.Usage = func() {
		builder := strings.Builder{}
		builder.WriteString("Usage: ")
		builder.WriteString(os.Args[0])
		builder.WriteString(" [command] [flags]\n")
		builder.WriteString("\nCommands:\n")
		builder.WriteString("  health    Check if the agent's sampling loop is alive\n")
		builder.WriteString("\nFlags:\n")
		fmt.Print(builder.String())
		pflag.PrintDefaults()
	}

	pflag.Parse()

	switch {
	case opts.version:
		fmt.Println(appName, version)
		return true
	case opts.help || subcommand == "help":
		pflag.Usage()
		return true
	}

	return false
}

func main() {
	var opts cmdOptions
	if opts.parse() {
		return
	}

	cfg := agent.LoadConfig()

	a, err := agent.NewAgent(cfg)
	if err != nil {
		log.Fatal("failed to create agent: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The tool server reads bandwidth rates on demand, independently of the
	// sampling loop's own NetworkMonitor, so an ad hoc tool call never
	// perturbs the loop's rate baseline.
	deps := &toolapi.Deps{
		Gpu:      a.Gpu,
		History:  a.History,
		Detector: a.Detector,
		Net:      agent.NewNetworkMonitor(),
	}
	server := toolapi.NewServer(version, deps)

	errCh := make(chan error, 2)
	go func() {
		errCh <- a.Run(ctx)
	}()
	go func() {
		errCh <- server.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("agent exited", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}
}
