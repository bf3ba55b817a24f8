package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/quatton/scitech/pkg/scapi"
	"github.com/quatton/scitech/pkg/scapi/routes"
	"github.com/spf13/cobra"
)

// defaultOpenAPIOutput is the document pkg/client is generated from.
const defaultOpenAPIOutput = "pkg/client/openapi.json"

var (
	openapiOutput string
	openapiNative bool
)

var openapiCmd = &cobra.Command{
	Use:     "openapi",
	Aliases: []string{"spec"},
	Short:   "Write the OpenAPI document used to generate pkg/client",
	Long: `Builds the dashboard API without any backend and writes its OpenAPI document.

By default the document is downgraded to OpenAPI 3.0, which oapi-codegen
understands, and written to ` + defaultOpenAPIOutput + `. Use -o - for stdout.
A .yaml or .yml output path switches the encoding to YAML.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := encodeOpenAPI(newDocAPI(), openapiOutput, openapiNative)
		if err != nil {
			return fmt.Errorf("encoding openapi document: %w", err)
		}

		if openapiOutput == "-" {
			_, err := cmd.OutOrStdout().Write(append(doc, '\n'))
			return err
		}
		if dir := filepath.Dir(openapiOutput); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(openapiOutput, doc, 0o644); err != nil {
			return err
		}
		cmd.PrintErrf("wrote %s\n", openapiOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openapiCmd)
	openapiCmd.Flags().StringVarP(&openapiOutput, "output", "o", defaultOpenAPIOutput, "Output path, or - for stdout")
	openapiCmd.Flags().BoolVar(&openapiNative, "native", false, "Keep OpenAPI 3.1 instead of downgrading to 3.0")
}

// newDocAPI registers every operation with no services behind them.
func newDocAPI() *huma.OpenAPI {
	api := scapi.NewApi()
	routes.RegisterAPI(api.Api, nil)
	return api.Api.OpenAPI()
}

func encodeOpenAPI(doc *huma.OpenAPI, output string, native bool) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(output)) {
	case ".yaml", ".yml":
		if native {
			return doc.YAML()
		}
		return doc.DowngradeYAML()
	}
	if native {
		return json.MarshalIndent(doc, "", "  ")
	}
	return doc.Downgrade()
}
