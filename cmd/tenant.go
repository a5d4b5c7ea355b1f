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

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage agencies and clients",
}

var createTenantCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new agency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var tenant types.Tenant
		err := client.post(context.Background(), "/api/v0/tenants", map[string]string{"name": args[0]}, &tenant)
		if err != nil {
			return fmt.Errorf("failed to create agency: %w", err)
		}

		fmt.Printf("Agency created: %s (ID: %s)\n", tenant.Name, tenant.ID)
		return nil
	},
}

var createClientCmd = &cobra.Command{
	Use:   "create-client [agency-id] [name]",
	Short: "Create a client under an agency",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var tenant types.Tenant
		err := client.post(context.Background(), fmt.Sprintf("/api/v0/tenants/%s/clients", args[0]), map[string]string{"name": args[1]}, &tenant)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		fmt.Printf("Client created: %s (ID: %s)\n", tenant.Name, tenant.ID)
		return nil
	},
}

var deleteTenantCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		if err := client.delete(context.Background(), "/api/v0/tenants/"+args[0]); err != nil {
			return fmt.Errorf("failed to delete tenant: %w", err)
		}

		fmt.Printf("Tenant deleted: %s\n", args[0])
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants for the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var tenants []*types.Tenant
		if err := client.get(context.Background(), "/api/v0/tenants", &tenants); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tKIND\tNAME\tENABLED\tCREATED_AT")
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", t.ID, t.Kind, t.Name, t.Enabled, t.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		w.Flush()
		return nil
	},
}

var listClientsCmd = &cobra.Command{
	Use:   "clients [agency-id]",
	Short: "List clients of an agency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		var tenants []*types.Tenant
		if err := client.get(context.Background(), fmt.Sprintf("/api/v0/tenants/%s/clients", args[0]), &tenants); err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tENABLED\tCREATED_AT")
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", t.ID, t.Name, t.Enabled, t.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		w.Flush()
		return nil
	},
}

var activateTenantCmd = &cobra.Command{
	Use:   "activate [id]",
	Short: "Enable a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		enabled := true
		err := client.patch(context.Background(), "/api/v0/tenants/"+args[0], map[string]*bool{"enabled": &enabled}, nil)
		if err != nil {
			return fmt.Errorf("failed to enable tenant: %w", err)
		}

		fmt.Printf("Tenant enabled: %s\n", args[0])
		return nil
	},
}

var deactivateTenantCmd = &cobra.Command{
	Use:   "deactivate [id]",
	Short: "Disable a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		enabled := false
		err := client.patch(context.Background(), "/api/v0/tenants/"+args[0], map[string]*bool{"enabled": &enabled}, nil)
		if err != nil {
			return fmt.Errorf("failed to disable tenant: %w", err)
		}

		fmt.Printf("Tenant disabled: %s\n", args[0])
		return nil
	},
}

var updateTenantCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Rename a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient(httpEndpoint)

		err := client.patch(context.Background(), "/api/v0/tenants/"+args[0], map[string]string{"name": args[1]}, nil)
		if err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		fmt.Printf("Tenant updated: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(createClientCmd)
	tenantCmd.AddCommand(deleteTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(listClientsCmd)
	tenantCmd.AddCommand(activateTenantCmd)
	tenantCmd.AddCommand(deactivateTenantCmd)
	tenantCmd.AddCommand(updateTenantCmd)
}
