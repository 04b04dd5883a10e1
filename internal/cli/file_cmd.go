package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/teamboard/teamboard/internal/cli/formatter"
	"github.com/teamboard/teamboard/internal/domain"
)

func newFileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Manage project file attachments",
	}

	cmd.AddCommand(
		newFileListCmd(app),
		newFileUploadCmd(app),
		newFileRemoveCmd(app),
	)

	return cmd
}

func newFileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}

			files, err := app.API.ListFiles(cmd.Context(), projectID)
			if err != nil {
				return err
			}

			if len(files) == 0 {
				fmt.Println("No files.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatFileList(files))
			return nil
		},
	}
}

func newFileUploadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "upload PROJECT PATH",
		Short: "Register a local file against a project",
		Long: "Register a local file's metadata against a project. The bytes are\n" +
			"stored under a storage key derived from the project and a fresh id;\n" +
			"only name, size and type travel to the server.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}

			info, err := os.Stat(args[1])
			if err != nil {
				return fmt.Errorf("stat %s: %w", args[1], err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory", args[1])
			}

			name := filepath.Base(args[1])
			form := domain.FileForm{
				Filename: name,
				FilePath: fmt.Sprintf("%d/%s%s", projectID, uuid.NewString(), filepath.Ext(name)),
				FileSize: info.Size(),
				FileType: mime.TypeByExtension(filepath.Ext(name)),
			}
			if err := form.Validate(); err != nil {
				return err
			}

			rec, err := app.API.RegisterFile(cmd.Context(), projectID, form)
			if err != nil {
				return err
			}

			fmt.Printf("Registered %s (%s) [#%d]\n", rec.Filename, rec.HumanSize(), rec.ID)
			return nil
		},
	}
}

func newFileRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove FILE",
		Short: "Delete a file record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID, err := parseID(args[0], "file")
			if err != nil {
				return err
			}

			if !yes {
				ok, err := confirm(app, fmt.Sprintf("Delete file #%d?", fileID))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.API.DeleteFile(cmd.Context(), fileID); err != nil {
				return err
			}

			fmt.Printf("Deleted file #%d\n", fileID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
