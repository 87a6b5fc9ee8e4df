package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
	roadmapmod "github.com/yungbote/roadmap-backend/internal/modules/roadmap"
)

var catalogPath string

var catalogCmd = &cobra.Command{
	Use:   "catalog [topic]",
	Short: "List catalog topics, or the resources and projects for one topic",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogPath, "file", "", "catalog YAML to validate and show instead of the embedded one")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	catalog, err := roadmapmod.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if len(args) == 0 {
		fmt.Fprintln(w, "TOPIC\tRESOURCES\tPROJECTS")
		for _, t := range catalog.Topics() {
			fmt.Fprintf(w, "%s\t%d\t%d\n", t, len(catalog.Resources(t)), len(catalog.Projects(t)))
		}
		return w.Flush()
	}

	topic := types.Topic(strings.ToLower(args[0]))
	fmt.Fprintln(w, "KIND\tTYPE\tTITLE\tURL")
	for _, r := range catalog.Resources(topic) {
		fmt.Fprintf(w, "resource\t%s\t%s\t%s\n", r.Type, r.Title, r.URL)
	}
	for _, p := range catalog.Projects(topic) {
		fmt.Fprintf(w, "project\t-\t%s\t%s\n", p.Title, p.GithubTemplate)
	}
	return w.Flush()
}
