// cmd/vx/main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"vx/internal/logging"
	"vx/internal/repo"
	"vx/internal/vcserr"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vx",
	Short: "vx is a minimal local version control tool",
	Long: `vx tracks a chosen set of files, snapshots their combined content
under a content-derived identifier, and restores any prior snapshot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	var configCmd = &cobra.Command{
		Use:   "config [name]",
		Short: "Get or set the author name",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 1, "config"); err != nil {
				return report(err)
			}

			r, err := openRepo()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				if err := r.SetAuthor(args[0]); err != nil {
					return err
				}
				fmt.Printf("Author name set to %s.\n", args[0])
				return nil
			}

			name, err := r.Author()
			if err != nil {
				return err
			}
			if name == "" {
				fmt.Println("Author name is not set.")
			} else {
				fmt.Printf("Author: %s.\n", name)
			}
			return nil
		},
	}

	var addCmd = &cobra.Command{
		Use:   "add [path]",
		Short: "Track a file, or list the tracked files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 1, "add"); err != nil {
				return report(err)
			}

			r, err := openRepo()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				paths, err := r.TrackedList()
				if err != nil {
					return err
				}
				if len(paths) == 0 {
					fmt.Println("No files are tracked.")
					return nil
				}
				fmt.Println("Tracked files:")
				for _, p := range paths {
					fmt.Println(p)
				}
				return nil
			}

			if err := r.Track(args[0]); err != nil {
				return report(err)
			}
			fmt.Printf("Now tracking '%s'.\n", args[0])
			return nil
		},
	}

	var logCmd = &cobra.Command{
		Use:   "log",
		Short: "Show the commit log, newest first",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 0, "log"); err != nil {
				return report(err)
			}

			r, err := openRepo()
			if err != nil {
				return err
			}

			text, err := r.Log()
			if err != nil {
				return err
			}
			if text == "" {
				fmt.Println("No commits yet.")
				return nil
			}
			printColoredLog(text)
			return nil
		},
	}

	var commitCmd = &cobra.Command{
		Use:   "commit <message>",
		Short: "Snapshot the tracked files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 1, "commit"); err != nil {
				return report(err)
			}

			r, err := openRepo()
			if err != nil {
				return err
			}

			message := ""
			if len(args) == 1 {
				message = args[0]
			}
			id, err := r.Commit(message)
			if err != nil {
				return report(err)
			}
			fmt.Printf("Committed %s.\n", id)
			return nil
		},
	}

	var checkoutCmd = &cobra.Command{
		Use:   "checkout <identifier>",
		Short: "Restore a snapshot into the working directory",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkArgs(args, 1, "checkout"); err != nil {
				return report(err)
			}

			r, err := openRepo()
			if err != nil {
				return err
			}

			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			if err := r.Checkout(id); err != nil {
				return report(err)
			}
			fmt.Printf("Restored commit %s.\n", id)
			return nil
		},
	}

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(checkoutCmd)
}

func openRepo() (*repo.Repository, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	logger, err := logging.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	r, err := repo.Open(cwd, logger.Logger)
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	return r, nil
}

// checkArgs rejects more positional arguments than the command accepts.
// Extra arguments are a recoverable user error, never a crash.
func checkArgs(args []string, max int, command string) error {
	if len(args) > max {
		return vcserr.InvalidArguments(fmt.Sprintf("Too many arguments for '%s'.", command))
	}
	return nil
}

// report prints err's single result line when it carries an error kind
// and escalates anything else.
func report(err error) error {
	if vcserr.KindOf(err) != "" {
		fmt.Println(err.Error())
		return nil
	}
	return err
}

func printColoredLog(text string) {
	identifier := color.New(color.FgYellow)

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if strings.HasPrefix(line, "commit ") {
			identifier.Println(line)
		} else {
			fmt.Println(line)
		}
	}
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
