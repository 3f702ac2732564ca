package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// docMeta is the position of a command's page in the docs navigation
type docMeta struct {
	root     bool
	title    string
	navOrder int
}

// map from the base Markdown file name to its page meta
var docMetaMap = map[string]docMeta{
	"bioncd":            {true, "bioncd", 0},
	"bioncd_pair":       {false, "pair", 0},
	"bioncd_matrix":     {false, "matrix", 1},
	"bioncd_size":       {false, "size", 2},
	"bioncd_algorithms": {false, "algorithms", 3},
}

// docsCmd writes Markdown documentation for every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for the commands",
	Args:   cobra.MaximumNArgs(1),
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir := "docs"
		if len(args) > 0 {
			dir = args[0]
		}
		if err := makeDocs(dir); err != nil {
			stderr.Fatalln(err)
		}
	},
}

// makeDocs parses the commands and outputs Markdown documentation files
func makeDocs(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	RootCmd.DisableAutoGenTag = true
	return doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler)
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, ok := docMetaMap[base]
	if !ok {
		return ""
	}

	if m.root {
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	}
	return fmt.Sprintf(childDoc, m.title, "bioncd", m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "bioncd" {
		return "/"
	}
	return base
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
