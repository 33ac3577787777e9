package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danreyes/reckon/internal/errors"
	"github.com/danreyes/reckon/internal/model"
	"github.com/danreyes/reckon/internal/storage"
	"github.com/danreyes/reckon/internal/validate"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add <id> <name>",
	Short: "Create a project",
	Long: `Create a project that transactions can be recorded against.

The id is a short identifier used on the command line; the name is the
display name shown in listings.

Example:
  reckon project add casa "Casa Nueva"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sid := args[0]
		displayName := strings.Join(args[1:], " ")

		project := model.NewProject(sid, displayName)
		if err := validate.Struct(project); err != nil {
			return err
		}

		exists, err := ctx.ProjectRepo.Exists(sid)
		if err != nil {
			return err
		}
		if exists {
			return errors.NewUserErrorWithField("project", sid,
				"project already exists",
				"Pick a different id or archive the existing project")
		}

		if err := ctx.ProjectRepo.Create(project); err != nil {
			return err
		}

		if ctx.IsJSON() {
			return ctx.Formatter.JSON(project)
		}
		ctx.CLIFormatter().Success(fmt.Sprintf("Created project %s (%s)", displayName, sid))
		return nil
	},
}

var flagProjectAll bool

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := ctx.ProjectRepo.List()
		if err != nil {
			return err
		}
		if !flagProjectAll {
			active := projects[:0]
			for _, p := range projects {
				if !p.Archived {
					active = append(active, p)
				}
			}
			projects = active
		}

		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]interface{}{"projects": projects})
		}

		cli := ctx.CLIFormatter()
		if len(projects) == 0 {
			cli.Muted("No projects")
			return nil
		}
		for _, p := range projects {
			txs, err := ctx.TransactionRepo.ListByProject(p.SID)
			if err != nil {
				return err
			}
			totals := storage.Aggregate(txs)
			line := fmt.Sprintf("%s  %s  (%d transactions, net %s)",
				p.SID, cli.ProjectName(p.DisplayName), totals.Count, centsString(totals.Net))
			if p.Archived {
				line += "  [archived]"
			}
			ctx.Formatter.Println(line)
		}
		return nil
	},
}

var projectArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive a project",
	Long: `Archive a project so it no longer appears in listings. Its
transactions are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := ctx.ProjectRepo.Get(args[0])
		if err != nil {
			if storage.IsErrKeyNotFound(err) {
				return errors.NewUserErrorWithField("project", args[0],
					"project does not exist",
					"Use 'reckon project list' to see projects")
			}
			return err
		}

		project.Archived = true
		if err := ctx.ProjectRepo.Update(project); err != nil {
			return err
		}
		ctx.CLIFormatter().Success("Archived project " + project.SID)
		return nil
	},
}

func init() {
	projectListCmd.Flags().BoolVarP(&flagProjectAll, "all", "a", false,
		"Include archived projects")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectArchiveCmd)
	rootCmd.AddCommand(projectCmd)
}
