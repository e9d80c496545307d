// Command inspect prints the users and conversations held in the bot's store.
// It opens the database read-only and can run next to the bot.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"voice-relay/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

func main() {
	_ = godotenv.Load()
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if cfg.BadgerFilepath == "" {
		cfg.BadgerFilepath = database.DefaultPath
	}

	dbPath := flag.String("db", cfg.BadgerFilepath, "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan, empty for every key")
	externalID := flag.String("user", "", "Only list the conversations of this Telegram user id")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	scan := *prefix
	if *externalID != "" {
		user, err := repositories.NewUserRepository(db).GetUserByExternalID(*externalID)
		if err != nil {
			log.Fatalf("User %s: %v", *externalID, err)
		}
		scan = repositories.ConversationPrefix(user.ID)
	}

	entries, err := repositories.ScanEntries(db, scan)
	if err != nil {
		log.Fatal(err)
	}

	title := fmt.Sprintf("%d entries under %q", len(entries), scan)
	if cfg.Colours {
		title = color.New(color.BgBlack, color.FgGreen).Render(title)
	}
	fmt.Println(title)
	render(os.Stdout, entries)
}

func render(w io.Writer, entries []repositories.Entry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Kind", "Owner", "Created", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, entry := range entries {
		created := "--"
		if !entry.At.IsZero() {
			created = entry.At.Local().Format("2006-01-02 15:04:05")
		}
		table.Append([]string{entry.Key, entry.Kind, entry.Owner, created, entry.Detail})
	}
	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		return nil, fmt.Errorf("%w: stop the bot or open the store once in write mode", err)
	}
	return db, err
}
