package cli

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gitsniff/internal/config/file"
	"gitsniff/internal/connectors/github"
	"gitsniff/internal/core/domain"
	"gitsniff/internal/core/ports/driven"
	"gitsniff/internal/core/services"
	"gitsniff/internal/extract"
	"gitsniff/internal/logger"
	"gitsniff/internal/report"
	"gitsniff/internal/storage/sqlite"
	"gitsniff/internal/transport"
)

// tokenEnvVar is consulted when no --token flag is given.
const tokenEnvVar = "GITSNIFF_TOKEN"

var scanFlags struct {
	url   string
	owner string
	repo  string
	token string

	addresses  bool
	emails     bool
	telephones bool
	tokens     bool
	urls       bool

	jsonOut  bool
	jsonFile string
	yamlOut  bool
	yamlFile string

	noHistory bool
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan one repository and print the findings",
	Long: `Scan resolves the repository identity, walks every file under its
root and accumulates the matches of each enabled category. The full
collections are printed only after the whole tree has been scanned;
if any listing or download fails nothing is printed.

The repository is identified either by --url or by --owner and
--repo together. A non-empty --url wins and the other two are
ignored. When no category flag is given the collect.categories list
from the configuration file applies.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	f := scanCmd.Flags()
	f.StringVarP(&scanFlags.url, "url", "l", "", "repository URL, takes precedence over --owner/--repo")
	f.StringVarP(&scanFlags.owner, "owner", "u", "", "repository owner")
	f.StringVarP(&scanFlags.repo, "repo", "r", "", "repository name")
	f.StringVar(&scanFlags.token, "token", "", "GitHub API token (default $"+tokenEnvVar+", then config)")

	f.BoolVar(&scanFlags.addresses, "addresses", false, "collect postal addresses")
	f.BoolVar(&scanFlags.emails, "emails", false, "collect email addresses")
	f.BoolVar(&scanFlags.telephones, "telephones", false, "collect telephone numbers")
	f.BoolVar(&scanFlags.tokens, "tokens", false, "collect credential-like assignments")
	f.BoolVar(&scanFlags.urls, "urls", false, "collect URLs")

	f.BoolVar(&scanFlags.jsonOut, "json", false, "print findings as indented JSON")
	f.StringVar(&scanFlags.jsonFile, "json-file", "", "write findings as indented JSON to a file")
	f.BoolVar(&scanFlags.yamlOut, "yaml", false, "print findings as YAML")
	f.StringVar(&scanFlags.yamlFile, "yaml-file", "", "write findings as YAML to a file")
	scanCmd.MarkFlagsMutuallyExclusive("json", "json-file", "yaml", "yaml-file")

	f.BoolVar(&scanFlags.noHistory, "no-history", false, "do not record this run in history")
}

func runScan(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfgStore := openConfigStore()

	id := domain.RepoIdentity{
		URL:   strings.TrimSpace(scanFlags.url),
		Owner: strings.TrimSpace(scanFlags.owner),
		Name:  strings.TrimSpace(scanFlags.repo),
	}
	extractCfg := scanExtractConfig(cfgStore)
	if !extractCfg.Any() {
		logger.Warn("no category enabled, the report will be empty")
	}

	httpTransport := transport.New(transportOptions(cfgStore)...)
	client := github.NewClient(ctx, resolveToken(cfgStore))
	resolver := github.NewResolver(httpTransport)
	walker := github.NewWalker(client, httpTransport)

	var runs driven.RunStore
	if !scanFlags.noHistory {
		store, err := sqlite.NewStore("")
		if err != nil {
			logger.Warn("history disabled: %v", err)
		} else {
			defer store.Close()
			runs = store
		}
	}

	svc := services.NewScanService(resolver, walker, runs)
	rep, err := svc.Scan(ctx, id, extractCfg)
	if err != nil {
		return scanExit(err)
	}

	return emitReport(cmd, rep, cfgStore)
}

// openConfigStore loads the configuration file, best effort. A broken
// or unreadable file only costs the defaults it would have supplied.
func openConfigStore() driven.ConfigStore {
	store, err := file.NewConfigStore("")
	if err != nil {
		logger.Warn("loading configuration: %v", err)
		return nil
	}
	return store
}

// scanExtractConfig builds the category switches. Explicit flags win;
// with no category flag set, the collect.categories list applies.
func scanExtractConfig(cfgStore driven.ConfigStore) extract.Config {
	cfg := extract.Config{
		Addresses:  scanFlags.addresses,
		Emails:     scanFlags.emails,
		Telephones: scanFlags.telephones,
		Tokens:     scanFlags.tokens,
		URLs:       scanFlags.urls,
	}
	if cfg.Any() || cfgStore == nil {
		return cfg
	}
	return configFromNames(cfgStore.GetStringSlice(file.KeyCategories))
}

// configFromNames enables the categories named in the list. Unknown
// names are warned about and ignored.
func configFromNames(names []string) extract.Config {
	var cfg extract.Config
	for _, name := range names {
		switch domain.Category(name) {
		case domain.CategoryAddresses:
			cfg.Addresses = true
		case domain.CategoryEmails:
			cfg.Emails = true
		case domain.CategoryTelephones:
			cfg.Telephones = true
		case domain.CategoryTokens:
			cfg.Tokens = true
		case domain.CategoryURLs:
			cfg.URLs = true
		default:
			logger.Warn("unknown category %q in configuration", name)
		}
	}
	return cfg
}

// resolveToken picks the API token: flag, then environment, then the
// configuration file. Empty means unauthenticated access.
func resolveToken(cfgStore driven.ConfigStore) string {
	if scanFlags.token != "" {
		return scanFlags.token
	}
	if token := os.Getenv(tokenEnvVar); token != "" {
		return token
	}
	if cfgStore != nil {
		return cfgStore.GetString(file.KeyToken)
	}
	return ""
}

// transportOptions derives the raw-transport options from config.
func transportOptions(cfgStore driven.ConfigStore) []transport.Option {
	opts := []transport.Option{
		transport.WithHeader("User-Agent", "gitsniff/"+version),
	}
	if cfgStore != nil {
		if secs := cfgStore.GetInt(file.KeyTimeout); secs > 0 {
			opts = append(opts, transport.WithTimeout(time.Duration(secs)*time.Second))
		}
	}
	return opts
}

// emitReport renders the report in the requested format. With no
// output flag, the output.format config key decides; absent that the
// compact single-line JSON form is printed.
func emitReport(cmd *cobra.Command, rep *report.Report, cfgStore driven.ConfigStore) error {
	switch {
	case scanFlags.jsonFile != "":
		data, err := rep.EncodeJSON()
		if err != nil {
			return &exitError{code: ExitUnknown, message: "encoding report: " + err.Error(), err: err}
		}
		writeFileOrStdout(cmd, scanFlags.jsonFile, data)
		return nil

	case scanFlags.yamlFile != "":
		data, err := rep.EncodeYAML()
		if err != nil {
			return &exitError{code: ExitUnknown, message: "encoding report: " + err.Error(), err: err}
		}
		writeFileOrStdout(cmd, scanFlags.yamlFile, data)
		return nil

	case scanFlags.jsonOut:
		return printEncoded(cmd, rep.EncodeJSON)

	case scanFlags.yamlOut:
		return printEncoded(cmd, rep.EncodeYAML)
	}

	if cfgStore != nil {
		switch cfgStore.GetString(file.KeyOutput) {
		case "json":
			return printEncoded(cmd, rep.EncodeJSON)
		case "yaml":
			return printEncoded(cmd, rep.EncodeYAML)
		}
	}

	cmd.Println(rep.String())
	return nil
}

func printEncoded(cmd *cobra.Command, encode func() ([]byte, error)) error {
	data, err := encode()
	if err != nil {
		return &exitError{code: ExitUnknown, message: "encoding report: " + err.Error(), err: err}
	}
	cmd.Println(strings.TrimRight(string(data), "\n"))
	return nil
}

// writeFileOrStdout writes the rendered report to path. If the write
// fails the findings are printed to stdout instead of being lost.
func writeFileOrStdout(cmd *cobra.Command, path string, data []byte) {
	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Error("writing %s failed (%v), printing to stdout instead", path, err)
		cmd.Println(strings.TrimRight(string(data), "\n"))
		return
	}
	logger.Info("findings written to %s", path)
}
