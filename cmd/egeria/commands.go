package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/demetere/egeria-go/pkg"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// elementsFunc fetches the elements a command prints
type elementsFunc func(cmd *cobra.Command, client *egeria.Egeria, args []string) ([]egeria.Element, error)

// elementsCmd builds a command that connects, fetches and prints elements
func elementsCmd(opts *options, use, short string, args cobra.PositionalArgs, columns []egeria.Column, fetch elementsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			elements, err := fetch(cmd, client, args)
			if err != nil {
				return err
			}
			return opts.printElements(cmd, elements, columns)
		},
	}
}

// searchFlags registers the paging and matching flags on a find command
func searchFlags(cmd *cobra.Command, search *egeria.SearchOptions) {
	cmd.Flags().BoolVar(&search.StartsWith, "starts-with", false, "Match the search string at the start of values only")
	cmd.Flags().BoolVar(&search.IgnoreCase, "ignore-case", false, "Match case-insensitively")
	cmd.Flags().IntVar(&search.StartFrom, "start-from", 0, "Index of the first result")
	cmd.Flags().IntVar(&search.PageSize, "page-size", egeria.DefaultPageSize, "Maximum number of results")
}

// searchArg returns the optional search string, matching everything by default
func searchArg(args []string) string {
	if len(args) == 0 {
		return "*"
	}
	return args[0]
}

func single(el *egeria.Element, err error) ([]egeria.Element, error) {
	if err != nil {
		return nil, err
	}
	return []egeria.Element{*el}, nil
}

func newTokenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Log in and print a bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			_, err = fmt.Fprintln(cmd.OutOrStdout(), client.Client().BearerToken())
			return err
		},
	}
}

func newServicesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List the services the client can reach",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.AppendHeader(table.Row{"Name", "Tier", "Display Name", "Description"})
			for _, s := range egeria.Services() {
				t.AppendRow(table.Row{s.Name, s.Tier.String(), s.DisplayName, s.Description})
			}
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			if format == egeria.FormatMDTable || format == egeria.FormatMD {
				return opts.print(cmd, format, t.RenderMarkdown())
			}
			return opts.print(cmd, format, t.Render())
		},
	}
}

func newCollectionsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "Work with collections",
	}

	var search egeria.SearchOptions
	find := elementsCmd(opts, "find [search]", "Find collections", cobra.MaximumNArgs(1), egeria.CollectionColumns,
		func(cmd *cobra.Command, client *egeria.Egeria, args []string) ([]egeria.Element, error) {
			return client.Collections().FindCollections(cmd.Context(), searchArg(args), search)
		})
	searchFlags(find, &search)

	show := elementsCmd(opts, "show <guid>", "Show a collection", cobra.ExactArgs(1), egeria.CollectionColumns,
		func(cmd *cobra.Command, client *egeria.Egeria, args []string) ([]egeria.Element, error) {
			return single(client.Collections().GetCollectionByGUID(cmd.Context(), args[0]))
		})

	var members egeria.SearchOptions
	membersCmd := elementsCmd(opts, "members <guid>", "List the members of a collection", cobra.ExactArgs(1), nil,
		func(cmd *cobra.Command, client *egeria.Egeria, args []string) ([]egeria.Element, error) {
			return client.Collections().GetCollectionMembers(cmd.Context(), args[0], members)
		})
	searchFlags(membersCmd, &members)

	graph := &cobra.Command{
		Use:   "graph <guid>",
		Short: "Print the mermaid graph of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			graph, err := client.Collections().GetCollectionGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd, egeria.FormatMermaid, graph)
		},
	}

	cmd.AddCommand(find, show, membersCmd, graph)
	return cmd
}

func newGlossaryCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glossary",
		Short: "Work with glossaries and their terms",
	}

	var search egeria.SearchOptions
	list := elementsCmd(opts, "list [search]", "Find glossaries", cobra.MaximumNArgs(1), egeria.GlossaryColumns,
		func(cmd *cobra.Command, client *egeria.Egeria, args []string) ([]egeria.Element, error) {
			return client.Glossary().FindGlossaries(cmd.Context(), searchArg(args), search)
		})
	searchFlags(list, &search)

	var termSearch egeria.SearchOptions
	var glossaryGUID string
	terms := elementsCmd(opts, "terms [search]", "Find terms, optionally within one glossary", cobra.MaximumNArgs(1), egeria.TermColumns,
		func(cmd *cobra.Command, client *egeria.Egeria, args []string) ([]egeria.Element, error) {
			if glossaryGUID != "" {
				return client.Glossary().GetTermsForGlossary(cmd.Context(), glossaryGUID, termSearch)
			}
			return client.Glossary().FindTerms(cmd.Context(), searchArg(args), termSearch)
		})
	searchFlags(terms, &termSearch)
	terms.Flags().StringVar(&glossaryGUID, "glossary", "", "GUID of the glossary to list")

	term := elementsCmd(opts, "term <guid>", "Show a glossary term", cobra.ExactArgs(1), egeria.TermColumns,
		func(cmd *cobra.Command, client *egeria.Egeria, args []string) ([]egeria.Element, error) {
			return single(client.Glossary().GetTermByGUID(cmd.Context(), args[0]))
		})

	cmd.AddCommand(list, terms, term)
	return cmd
}

func newElementsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elements",
		Short: "Explore any metadata element",
	}

	var search egeria.SearchOptions
	var typeName string
	find := elementsCmd(opts, "find [search]", "Find metadata elements", cobra.MaximumNArgs(1), nil,
		func(cmd *cobra.Command, client *egeria.Egeria, args []string) ([]egeria.Element, error) {
			if typeName != "" && len(args) == 0 {
				return client.Explorer().GetMetadataElementsByType(cmd.Context(), typeName, search)
			}
			search.MetadataElementTypeName = typeName
			return client.Explorer().FindMetadataElements(cmd.Context(), searchArg(args), search)
		})
	searchFlags(find, &search)
	find.Flags().StringVar(&typeName, "type", "", "Restrict results to an open metadata type")

	show := elementsCmd(opts, "show <guid>...", "Show metadata elements", cobra.MinimumNArgs(1), nil,
		func(cmd *cobra.Command, client *egeria.Egeria, args []string) ([]egeria.Element, error) {
			return client.Explorer().GetMetadataElementsByGUIDs(cmd.Context(), args)
		})

	cmd.AddCommand(find, show)
	return cmd
}

func newProfileCmd(opts *options) *cobra.Command {
	return elementsCmd(opts, "profile", "Show the profile of the calling user", cobra.NoArgs, egeria.ActorProfileColumns,
		func(cmd *cobra.Command, client *egeria.Egeria, _ []string) ([]egeria.Element, error) {
			return single(client.Profile().GetMyProfile(cmd.Context()))
		})
}

func newProjectsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Work with projects",
	}

	var search egeria.SearchOptions
	find := elementsCmd(opts, "find [search]", "Find projects", cobra.MaximumNArgs(1), egeria.ProjectColumns,
		func(cmd *cobra.Command, client *egeria.Egeria, args []string) ([]egeria.Element, error) {
			return client.Projects().FindProjects(cmd.Context(), searchArg(args), search)
		})
	searchFlags(find, &search)

	cmd.AddCommand(find)
	return cmd
}

func newGovernanceCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "governance",
		Short: "Work with governance definitions",
	}

	var search egeria.SearchOptions
	find := elementsCmd(opts, "find [search]", "Find governance definitions", cobra.MaximumNArgs(1), egeria.GovernanceDefinitionColumns,
		func(cmd *cobra.Command, client *egeria.Egeria, args []string) ([]egeria.Element, error) {
			return client.Governance().FindGovernanceDefinitions(cmd.Context(), searchArg(args), search)
		})
	searchFlags(find, &search)

	cmd.AddCommand(find)
	return cmd
}

func newPlatformCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Inspect the OMAG server platform",
	}

	origin := &cobra.Command{
		Use:   "origin",
		Short: "Print the platform origin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			origin, err := client.Platform().GetPlatformOrigin(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), origin)
			return err
		},
	}

	var activeOnly bool
	servers := &cobra.Command{
		Use:   "servers",
		Short: "List the servers known to the platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			var names []string
			if activeOnly {
				names, err = client.Platform().GetActiveServers(cmd.Context())
			} else {
				names, err = client.Platform().GetKnownServers(cmd.Context())
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
			return err
		},
	}
	servers.Flags().BoolVar(&activeOnly, "active", false, "Only list running servers")

	cmd.AddCommand(origin, servers)
	return cmd
}

func newRuntimeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runtime",
		Short: "Inspect deployed platforms and servers",
	}

	var search egeria.SearchOptions
	var implementationType string
	servers := elementsCmd(opts, "servers", "List deployed servers", cobra.NoArgs, egeria.ServerColumns,
		func(cmd *cobra.Command, client *egeria.Egeria, _ []string) ([]egeria.Element, error) {
			return client.Runtime().GetServersByDeployedImplementationType(cmd.Context(), implementationType, search)
		})
	searchFlags(servers, &search)
	servers.Flags().StringVar(&implementationType, "type", "*", "Deployed implementation type, for example \"View Server\"")

	cmd.AddCommand(servers)
	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect stored server configuration",
	}

	show := &cobra.Command{
		Use:   "show <server>",
		Short: "Print the stored configuration document of a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}

			client, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			doc, err := client.ServerConfig().GetStoredConfiguration(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var data []byte
			if format == egeria.FormatYAML {
				data, err = yaml.Marshal(doc)
			} else {
				data, err = json.MarshalIndent(doc, "", "  ")
			}
			if err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			return opts.print(cmd, format, string(data))
		},
	}

	cmd.AddCommand(show)
	return cmd
}

func newSchemaCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [body]",
		Short: "List request bodies or print the JSON schema of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(egeria.BodyNames(), "\n"))
				return err
			}
			schema, err := egeria.BodySchema(args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd, egeria.FormatJSON, string(schema))
		},
	}
}
