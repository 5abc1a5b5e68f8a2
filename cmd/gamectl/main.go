// Command gamectl is the operator CLI for the gamedash gateway. It talks to
// the games backend directly, using the same services as the HTTP gateway.
//
// Usage:
//
//	gamectl list      Print a page of games
//	gamectl sync      Run a sync in the foreground
//	gamectl export    Write the filtered games list to an xlsx file
package main

import (
	"fmt"
	"os"
)

const usage = `gamectl - gamedash operator CLI

Usage:
  gamectl <command> [flags]

Commands:
  list      Print a page of games (filters, sort, paging)
  sync      Trigger a backend sync and follow it to completion
  export    Write the filtered and sorted games list to an xlsx file

Environment:
  BACKEND_BASE_URL   Games backend base URL (default: http://localhost:8000)
  LOG_LEVEL          Log level (default: info)

Run 'gamectl <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	var err error
	switch cmd {
	case "list":
		err = runList()
	case "sync":
		err = runSync()
	case "export":
		err = runExport()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "gamectl: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "gamectl %s: %v\n", cmd, err)
		os.Exit(1)
	}
}
