// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tabletalk/tenancy-service/internal/types"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage tenant members",
}

var listUsersCmd = &cobra.Command{
	Use:   "list [tenant-id]",
	Short: "List members of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var users []*types.TenantUser
		err := client.get(context.Background(), fmt.Sprintf("/api/v0/tenants/%s/members", args[0]), &users)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tEMAIL\tROLE\tSTATUS")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.UserID, u.Email, u.Role, u.Status)
		}
		w.Flush()
		return nil
	},
}

var inviteUserCmd = &cobra.Command{
	Use:   "invite [tenant-id] [email] [role]",
	Short: "Invite a user to a tenant",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var membership types.Membership
		err := client.post(context.Background(), fmt.Sprintf("/api/v0/tenants/%s/invitations", args[0]), map[string]string{
			"email": args[1],
			"role":  args[2],
		}, &membership)
		if err != nil {
			return fmt.Errorf("failed to invite user: %w", err)
		}

		fmt.Printf("User invited: %s\n", args[1])
		fmt.Printf("Status: %s\n", membership.Status)
		if membership.InvitationToken != "" {
			fmt.Printf("Token: %s\n", membership.InvitationToken)
			fmt.Printf("Expires: %s\n", membership.InvitationExpiresAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var updateUserCmd = &cobra.Command{
	Use:   "update [tenant-id] [user-id] [role]",
	Short: "Update a member's role",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var user types.TenantUser
		err := client.patch(context.Background(), fmt.Sprintf("/api/v0/tenants/%s/members/%s", args[0], args[1]), map[string]string{
			"role": args[2],
		}, &user)
		if err != nil {
			return fmt.Errorf("failed to update member: %w", err)
		}

		fmt.Printf("Member updated: %s\n", args[1])
		fmt.Printf("New Role: %s\n", args[2])
		return nil
	},
}

var revokeUserCmd = &cobra.Command{
	Use:   "revoke [tenant-id] [membership-id]",
	Short: "Revoke a membership",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		err := client.delete(context.Background(), fmt.Sprintf("/api/v0/tenants/%s/members/%s", args[0], args[1]))
		if err != nil {
			return fmt.Errorf("failed to revoke membership: %w", err)
		}

		fmt.Printf("Membership revoked: %s\n", args[1])
		return nil
	},
}

func init() {
	tenantCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(listUsersCmd)
	usersCmd.AddCommand(inviteUserCmd)
	usersCmd.AddCommand(updateUserCmd)
	usersCmd.AddCommand(revokeUserCmd)
}
