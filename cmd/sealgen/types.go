package main

import "github.com/spf13/cobra"

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported seal types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []typeReport
			for _, d := range a.catalog.List() {
				out = append(out, newTypeReport(d))
			}
			return a.print(out)
		},
	}
}

func (a *app) sizesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes [type]",
		Short: "List the standard sizes of a seal type",
		Long: `List the standard size designations of a seal type in natural order.
The first entry, Custom, stands for dimensions given with --dim.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.definition(args)
			if err != nil {
				return err
			}
			sizes, err := a.catalog.ListStandardSizes(d.ID)
			if err != nil {
				return err
			}
			return a.print(sizes)
		},
	}
}
