package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teamboard/teamboard/internal/cli/formatter"
	"github.com/teamboard/teamboard/internal/domain"
)

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage project members",
	}

	cmd.AddCommand(
		newMemberListCmd(app),
		newMemberAddCmd(app),
		newMemberRoleCmd(app),
		newMemberRemoveCmd(app),
	)

	return cmd
}

func newMemberListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}

			members, err := app.API.ListMembers(cmd.Context(), projectID)
			if err != nil {
				return err
			}

			if len(members) == 0 {
				fmt.Println("No members.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatMemberList(members))
			return nil
		},
	}
}

func newMemberAddCmd(app *App) *cobra.Command {
	var name, email, role string

	cmd := &cobra.Command{
		Use:   "add PROJECT",
		Short: "Add a member to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}

			form := domain.MemberForm{
				Name:  name,
				Email: email,
				Role:  domain.MemberRole(role),
			}
			if err := form.Validate(); err != nil {
				return err
			}

			member, err := app.API.AddMember(context.Background(), projectID, form)
			if err != nil {
				return err
			}

			fmt.Printf("Added %s as %s\n", member.DisplayName(), member.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&email, "email", "", "Member email")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleMember), "Role (owner, admin, member)")

	return cmd
}

func newMemberRoleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "role PROJECT MEMBER ROLE",
		Short: "Change a member's role",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}
			memberID, err := parseID(args[1], "member")
			if err != nil {
				return err
			}

			role := domain.MemberRole(args[2])
			if !domain.ValidMemberRoles[role] {
				return fmt.Errorf("invalid role %q (want owner, admin or member)", args[2])
			}

			member, err := app.API.UpdateMemberRole(cmd.Context(), projectID, memberID, role)
			if err != nil {
				return err
			}

			fmt.Printf("%s is now %s\n", member.DisplayName(), member.Role)
			return nil
		},
	}
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove PROJECT MEMBER",
		Short: "Remove a member from a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}
			memberID, err := parseID(args[1], "member")
			if err != nil {
				return err
			}

			if !yes {
				ok, err := confirm(app, fmt.Sprintf("Remove member #%d from project #%d?", memberID, projectID))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.API.RemoveMember(cmd.Context(), projectID, memberID); err != nil {
				return err
			}

			fmt.Printf("Removed member #%d\n", memberID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
