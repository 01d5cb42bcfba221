package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	api "Chirp/api"
)

func main() {
	root := &cobra.Command{
		Use:           "chirp",
		Short:         "Tweets, timelines and follows over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return api.Run()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return api.Run()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(cmd *cobra.Command, args []string) error {
				return api.Migrate()
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Reset the database and load demo users, tweets and follows",
			RunE: func(cmd *cobra.Command, args []string) error {
				return api.Seed()
			},
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
