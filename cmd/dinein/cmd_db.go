package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/dinein/app/repositories"
	"github.com/shashiranjanraj/dinein/database/seeders"
	"github.com/shashiranjanraj/dinein/pkg/database"
)

// dinein migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the MongoDB indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close(context.Background()) //nolint:errcheck

		fmt.Fprintln(cmd.OutOrStdout(), "Creating indexes…")
		return db.EnsureIndexes(cmd.Context())
	},
}

// dinein seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert the menu (SEED_FILE or the built-in menu)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close(context.Background()) //nolint:errcheck

		fmt.Fprintln(cmd.OutOrStdout(), "Running seeders…")
		target := seeders.Target{Menu: repositories.NewMenuRepository(db.Collection(database.MenuItems))}
		return seeders.RunAll(cmd.Context(), target, cmd.OutOrStdout())
	},
}
