package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cardstmt/internal"
	"cardstmt/internal/config"
	"cardstmt/internal/connectors"
	gmailconnector "cardstmt/internal/connectors/gmail"
	imapconnector "cardstmt/internal/connectors/imap"
	"cardstmt/internal/extractor"
	"cardstmt/internal/issuer"
	"cardstmt/internal/pipeline"
	"cardstmt/internal/render"
	"cardstmt/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "parse":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		dir := fs.String("dir", "", "directory of statement files (defaults to INBOX_DIR when no files given)")
		format := fs.String("format", "summary", "summary|table|both")
		jsonOut := fs.String("json", "", "write records to a JSON file")
		xlsxOut := fs.String("xlsx", "", "write records to an XLSX file")
		dbOut := fs.String("db", "", "write records to a SQLite file")
		_ = fs.Parse(os.Args[2:])

		paths, err := collectInputs(fs.Args(), *dir, cfg.InboxDir)
		must(err)
		if len(paths) == 0 {
			must(fmt.Errorf("no statement files found"))
		}

		docs := make([]internal.Document, 0, len(paths))
		for _, path := range paths {
			pages, err := extractor.Pages(path)
			if err != nil {
				docs = append(docs, internal.Document{Name: filepath.Base(path)})
				fmt.Fprintf(os.Stderr, "warning: %s: %v\n", filepath.Base(path), err)
				continue
			}
			docs = append(docs, internal.Document{Name: filepath.Base(path), Pages: pages})
		}

		reg := issuer.NewRegistry()
		records := pipeline.ProcessBatch(reg, docs)

		switch strings.ToLower(strings.TrimSpace(*format)) {
		case "summary":
			render.Summary(os.Stdout, records)
		case "table":
			render.Table(os.Stdout, records)
		case "both":
			render.Summary(os.Stdout, records)
			fmt.Println()
			render.Table(os.Stdout, records)
		default:
			must(fmt.Errorf("unsupported format: %s", *format))
		}

		if *jsonOut != "" {
			must(render.WriteJSONFile(records, *jsonOut))
			fmt.Printf("wrote %s\n", *jsonOut)
		}
		if *xlsxOut != "" {
			must(pipeline.ExportRecordsToXLSX(records, *xlsxOut))
			fmt.Printf("wrote %s\n", *xlsxOut)
		}
		if *dbOut != "" {
			db, err := storage.Create(*dbOut)
			must(err)
			must(db.InsertRecords(records))
			counts, err := db.CountByStatus()
			must(err)
			must(db.Close())
			fmt.Printf("wrote %s success=%d partial=%d failed=%d\n", *dbOut, counts["success"], counts["partial"], counts["failed"])
		}

		total, success, partial, failed := render.Totals(records)
		fmt.Printf("parsed %d statements: %d success, %d partial, %d failed\n", total, success, partial, failed)
		if failed > 0 {
			os.Exit(1)
		}
	case "mail:fetch":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		provider := fs.String("provider", cfg.MailProvider, "gmail|imap")
		label := fs.String("label", cfg.MailLabel, "mailbox/label")
		max := fs.Int("max", cfg.MailFetchMax, "max messages")
		_ = fs.Parse(os.Args[2:])
		conn, err := makeConnector(cfg, *provider)
		must(err)
		fetch := connectors.NewFetchService(cfg.InboxDir, conn)
		result, err := fetch.FetchAndStore(*label, *max)
		must(err)
		fmt.Printf("mail fetch done provider=%s fetched=%d saved=%d dir=%s\n", *provider, result.Fetched, len(result.Saved), cfg.InboxDir)
	default:
		usage()
		os.Exit(1)
	}
}

func collectInputs(args []string, dir, inboxDir string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	root := dir
	if root == "" {
		root = inboxDir
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".html", ".htm", ".txt":
			paths = append(paths, filepath.Join(root, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func makeConnector(cfg config.Config, provider string) (connectors.MailConnector, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "gmail":
		return gmailconnector.NewConnector(cfg)
	case "imap":
		return imapconnector.NewConnector(cfg)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func usage() {
	fmt.Println("usage: cardstmt <command>")
	fmt.Println("commands:")
	fmt.Println("  parse [files...] [--dir=./inbox] [--format=summary|table|both] [--json=out.json] [--xlsx=out.xlsx] [--db=out.db]")
	fmt.Println("  mail:fetch --provider=gmail|imap --label=INBOX --max=20")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
