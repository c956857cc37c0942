package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssplay"
)

// exportTargets lists the artifacts accepted by `cssplay export`, in the
// order `all` writes them.
var exportTargets = []string{"css", "html", "bundle", "design"}

var exportCmd = &cobra.Command{
	Use:   "export [css|html|bundle|design|all]...",
	Short: "Write export artifacts to a directory",
	Long: `Write one or more export artifacts:
  css     styles.css
  html    index.html (showcase markup with the stylesheet placeholder)
  bundle  playground-export.html (markup with the stylesheet inlined)
  design  playground-design.json (re-importable design)
  all     everything above (default)`,
	ValidArgs: append(append([]string{}, exportTargets...), "all"),
	Args:      cobra.OnlyValidArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		dir := getStringWithFallback("export.output-dir", "dist")
		written, err := runExport(cssplay.DirSink{Dir: dir}, sess, args)
		if err != nil {
			return err
		}
		if !sess.settings.Quiet {
			for _, name := range written {
				fmt.Printf("Exported %s\n", filepath.Join(dir, name))
			}
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("output-dir", "dist", "Directory to write artifacts to")
}

// runExport writes the requested artifacts to sink and returns their
// filenames in write order.
func runExport(sink cssplay.Sink, sess *session, targets []string) ([]string, error) {
	if len(targets) == 0 {
		targets = []string{"all"}
	}

	var selected []string
	seen := make(map[string]bool)
	for _, t := range targets {
		names := []string{t}
		if t == "all" {
			names = exportTargets
		}
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				selected = append(selected, n)
			}
		}
	}

	var written []string
	recorder := cssplay.SinkFunc(func(a cssplay.Artifact) error {
		if err := sink.Write(a); err != nil {
			return err
		}
		written = append(written, a.Filename)
		return nil
	})

	for _, target := range selected {
		var err error
		switch target {
		case "css":
			err = cssplay.ExportStylesheet(recorder, sess.vars)
		case "html":
			err = cssplay.ExportMarkup(recorder)
		case "bundle":
			err = cssplay.ExportBundle(recorder, sess.vars)
		case "design":
			err = cssplay.ExportDesign(recorder, sess.vars, sess.theme.ID)
		default:
			err = fmt.Errorf("unknown export target %q", target)
		}
		if err != nil {
			return written, err
		}
		sess.log.Debug("artifact exported", "target", target)
	}
	return written, nil
}
