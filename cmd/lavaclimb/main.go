// lavaclimb is an endless vertical-escape platformer for the terminal:
// climb procedurally generated platforms while the lava rises beneath you.
//
// Usage:
//
//	lavaclimb play           - Play in the current terminal
//	lavaclimb serve          - Start SSH server for remote play
//	lavaclimb scores         - Show the best recorded climbs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.lavaclimb/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lavaclimb",
	Short: "Lava Climb - Outrun the rising lava in your terminal",
	Long: `Lava Climb is an endless climbing game played in the terminal.
Platforms generate forever above you; the lava rises forever below.
Climb as high as you can before it catches you.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the best recorded climbs

Examples:
  lavaclimb play
  lavaclimb play --difficulty hard
  lavaclimb serve --ssh :2222
  lavaclimb scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lavaclimb/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
