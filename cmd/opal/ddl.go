/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opalbase/opal/pkg/catalog"
	"github.com/opalbase/opal/pkg/schema"
)

// Builds a small demo catalog and prints the DDL script that re-creates it.
func newDDLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ddl",
		Short: "Print the DDL script of a demo catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.MkdirTemp("", "opal-ddl")
			if err != nil {
				return err
			}
			defer os.RemoveAll(dir)

			cat, cleanup, err := catalog.New(filepath.Join(dir, "meta.db"))
			if err != nil {
				return err
			}
			defer cleanup()

			admin, err := cat.GetUser(catalog.AdminUserName)
			if err != nil {
				return err
			}
			app, err := cat.CreateSchema("APP", admin)
			if err != nil {
				return err
			}

			customers := app.CreateTable(cat.NextID(), "CUSTOMERS", []schema.Column{
				{Name: "ID", DataType: "BIGINT"},
				{Name: "NAME", DataType: "VARCHAR", Nullable: true},
			}, true, false)
			if err := cat.AddSchemaObject(customers); err != nil {
				return err
			}

			pk := schema.NewConstraint(app, cat.NextID(), app.UniqueConstraintName(customers),
				schema.ConstraintType_PrimaryKey, customers.Name(), []string{"ID"}, "")
			if err := cat.AddSchemaObject(pk); err != nil {
				return err
			}

			byName := schema.NewIndex(app, cat.NextID(), app.UniqueIndexName(customers, "IDX_"),
				customers.Name(), []string{"NAME"}, false)
			if err := cat.AddSchemaObject(byName); err != nil {
				return err
			}
			customers.AddIndex(byName)

			seq := schema.NewSequence(app, cat.NextID(), "CUSTOMER_ID_SEQ", 1, 1)
			if err := cat.AddSchemaObject(seq); err != nil {
				return err
			}

			pi := schema.NewConstant(app, cat.NextID(), "PI", "3.14159265358979")
			if err := cat.AddSchemaObject(pi); err != nil {
				return err
			}

			for _, s := range cat.Schemas() {
				if sql := s.CreateSQL(); sql != "" {
					fmt.Println(sql + ";")
				}
				for k := schema.Kind_null + 1; k < schema.Kind_count; k++ {
					for _, obj := range s.All(k) {
						if sql := obj.CreateSQL(); sql != "" {
							fmt.Println(sql + ";")
						}
					}
				}
			}
			return nil
		},
	}
}
